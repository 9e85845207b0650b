package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/tools"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// JSON-RPC 2.0 error codes used by the stdio transport.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInternalError  = -32603

	stdioProtocolVersion = "2024-11-05"
	maxLineBytes         = 4 << 20
)

// StdioServer serves MCP over newline-delimited JSON-RPC 2.0 on a reader and
// writer pair, stdin/stdout in production. Logs must go to stderr so the
// output stream stays pure JSON-RPC; cmd/server wires slog accordingly.
type StdioServer struct {
	registry *tools.Registry
	in       io.Reader

	mu  sync.Mutex
	out io.Writer
}

// NewStdioServer creates a stdio MCP server for the given registry and streams.
func NewStdioServer(registry *tools.Registry, in io.Reader, out io.Writer) *StdioServer {
	return &StdioServer{registry: registry, in: in, out: out}
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  mcpParams       `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// Run reads requests line by line until the input closes or ctx is done.
// A malformed line answers with a parse error instead of ending the session.
func (s *StdioServer) Run(ctx context.Context) error {
	slog.Info("stdio MCP server starting")

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Error("failed to parse JSON-RPC request", "error", err)
			s.write(rpcResponse{JSONRPC: "2.0", Error: &rpcError{
				Code:    codeParseError,
				Message: fmt.Sprintf("parse error: %v", err),
			}})
			continue
		}

		slog.Info("processing request", "method", req.Method)
		s.write(s.dispatch(ctx, req))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stdio transport read failed: %w", err)
	}
	slog.Info("stdio MCP server stopped")
	return nil
}

func (s *StdioServer) dispatch(ctx context.Context, req rpcRequest) rpcResponse {
	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}

	switch req.Method {
	case "initialize":
		resp.Result = s.handleInitialize()
	case "tools/list":
		resp.Result = s.handleToolsList()
	case "tools/call":
		result, err := s.handleToolsCall(ctx, req.Params)
		if err != nil {
			slog.Error("tool call failed", "tool", req.Params.Name, "error", err)
			resp.Error = &rpcError{Code: codeInternalError, Message: err.Error()}
			break
		}
		resp.Result = result
	default:
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("unknown method: %s", req.Method)}
	}
	return resp
}

func (s *StdioServer) handleInitialize() map[string]interface{} {
	return map[string]interface{}{
		"protocolVersion": stdioProtocolVersion,
		"capabilities": map[string]interface{}{
			"tools":     map[string]interface{}{"listChanged": false},
			"resources": map[string]interface{}{"subscribe": false, "listChanged": false},
		},
		"serverInfo": map[string]interface{}{
			"name":    serviceName,
			"version": types.RulesVersion,
		},
	}
}

func (s *StdioServer) handleToolsList() map[string]interface{} {
	type toolInfo struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		InputSchema map[string]interface{} `json:"inputSchema"`
	}

	allTools := s.registry.All()
	toolList := make([]toolInfo, 0, len(allTools))
	for _, t := range allTools {
		toolList = append(toolList, toolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		})
	}
	return map[string]interface{}{"tools": toolList}
}

func (s *StdioServer) handleToolsCall(ctx context.Context, params mcpParams) (*mcpResponse, error) {
	tool := s.registry.Get(params.Name)
	if tool == nil {
		return nil, fmt.Errorf("unknown tool: %s", params.Name)
	}

	result, err := tool.Run(ctx, params.Arguments)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result for %s: %w", params.Name, err)
	}
	return &mcpResponse{
		Content: []mcpContent{{Type: "text", Text: string(payload)}},
	}, nil
}

func (s *StdioServer) write(resp rpcResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to encode JSON-RPC response", "error", err)
		return
	}
	if _, err := fmt.Fprintf(s.out, "%s\n", data); err != nil {
		slog.Error("failed to write JSON-RPC response", "error", err)
	}
}
