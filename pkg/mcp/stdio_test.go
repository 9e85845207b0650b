package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/config"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/tools"
)

func stdioSession(t *testing.T, input string) []rpcResponse {
	t.Helper()

	registry := tools.NewRegistry()
	base := tools.BaseTool{
		Cfg: &config.Config{},
		FS: terraform.MapFS{Files: map[string]string{
			"main.tf": `
resource "aws_s3_bucket" "this" {
  count  = 2
  bucket = "example"
}
`,
		}},
	}
	registry.Register(&tools.ListRulesTool{BaseTool: base})
	registry.Register(&tools.ValidateForEachTool{BaseTool: base})

	var out bytes.Buffer
	server := NewStdioServer(registry, strings.NewReader(input), &out)
	if err := server.Run(context.Background()); err != nil {
		t.Fatalf("stdio server failed: %v", err)
	}

	var responses []rpcResponse
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var resp rpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response line is not valid JSON: %v\n%s", err, line)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestStdioServer_Initialize(t *testing.T) {
	responses := stdioSession(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`+"\n")

	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Fatalf("unexpected error: %+v", responses[0].Error)
	}
	result := responses[0].Result.(map[string]interface{})
	if result["protocolVersion"] != stdioProtocolVersion {
		t.Errorf("expected protocol version %s, got %v", stdioProtocolVersion, result["protocolVersion"])
	}
}

func TestStdioServer_ToolsListAndCall(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"validate_for_each","arguments":{"path":"."}}}` + "\n"
	responses := stdioSession(t, input)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	list := responses[0].Result.(map[string]interface{})
	toolEntries := list["tools"].([]interface{})
	if len(toolEntries) != 2 {
		t.Errorf("expected 2 tools listed, got %d", len(toolEntries))
	}

	call := responses[1].Result.(map[string]interface{})
	content := call["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, `"overallPassed":false`) {
		t.Errorf("expected a failing report payload, got %s", text)
	}
	if !strings.Contains(text, "aws_s3_bucket.this") {
		t.Errorf("report must name the counted resource, got %s", text)
	}
}

func TestStdioServer_ParseErrorKeepsSessionAlive(t *testing.T) {
	input := "this is not json\n" +
		`{"jsonrpc":"2.0","id":7,"method":"tools/list","params":{}}` + "\n"
	responses := stdioSession(t, input)

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0].Error == nil || responses[0].Error.Code != codeParseError {
		t.Errorf("expected parse error %d, got %+v", codeParseError, responses[0].Error)
	}
	if responses[1].Error != nil {
		t.Errorf("session must survive a malformed line, got %+v", responses[1].Error)
	}
}

func TestStdioServer_UnknownMethod(t *testing.T) {
	responses := stdioSession(t, `{"jsonrpc":"2.0","id":3,"method":"resources/read","params":{}}`+"\n")

	if responses[0].Error == nil || responses[0].Error.Code != codeMethodNotFound {
		t.Errorf("expected method-not-found error %d, got %+v", codeMethodNotFound, responses[0].Error)
	}
}

func TestStdioServer_UnknownTool(t *testing.T) {
	responses := stdioSession(t, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool"}}`+"\n")

	if responses[0].Error == nil || responses[0].Error.Code != codeInternalError {
		t.Errorf("expected internal error %d, got %+v", codeInternalError, responses[0].Error)
	}
}
