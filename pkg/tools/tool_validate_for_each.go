package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// ValidateForEachTool runs only the for_each-over-count rule.
type ValidateForEachTool struct {
	BaseTool
}

func (t *ValidateForEachTool) Name() string { return "validate_for_each" }

func (t *ValidateForEachTool) Description() string {
	return "Validate that multi-instance resources use for_each instead of count"
}

func (t *ValidateForEachTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *ValidateForEachTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{RuleID: "A2"})
}
