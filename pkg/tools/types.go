package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/config"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// Tool is the interface all MCP tools must implement.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]interface{}
	Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error)
}

// BaseTool provides common fields for all tools.
type BaseTool struct {
	Cfg *config.Config
	FS  terraform.FS
}

// modulePathSchema is the input schema shared by every validation tool.
func modulePathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path to the Terraform module directory to validate",
			},
		},
		"required": []string{"path"},
	}
}

// ModulePath extracts and validates the "path" argument. When WORKSPACE_ROOT
// is configured, paths resolving outside it are rejected before any file is
// touched.
func (b *BaseTool) ModulePath(args map[string]interface{}) (string, error) {
	raw, _ := args["path"].(string)
	if strings.TrimSpace(raw) == "" {
		return "", types.NewEngineError(types.ErrCodeModuleNotFound, "argument \"path\" is required")
	}
	cleaned := filepath.ToSlash(filepath.Clean(raw))
	if b.Cfg != nil && b.Cfg.WorkspaceRoot != "" {
		root := filepath.ToSlash(filepath.Clean(b.Cfg.WorkspaceRoot))
		if cleaned != root && !strings.HasPrefix(cleaned, root+"/") {
			return "", types.NewEngineError(types.ErrCodePathOutsideWorkspace,
				fmt.Sprintf("module path %q escapes workspace root %q", raw, b.Cfg.WorkspaceRoot))
		}
	}
	return cleaned, nil
}
