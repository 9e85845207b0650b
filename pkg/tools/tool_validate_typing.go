package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// ValidateTypingTool checks variable types, for_each usage, locals
// simplicity and provider version pinning.
type ValidateTypingTool struct {
	BaseTool
}

func (t *ValidateTypingTool) Name() string { return "validate_typing" }

func (t *ValidateTypingTool) Description() string {
	return "Validate variable type forms, for_each over count, locals simplicity and provider version pinning"
}

func (t *ValidateTypingTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *ValidateTypingTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{Category: types.CategoryTyping})
}
