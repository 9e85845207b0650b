package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// ValidateNamingTool checks resource name labels against the
// {client}-{project}-{environment}-{type}-{key} convention.
type ValidateNamingTool struct {
	BaseTool
}

func (t *ValidateNamingTool) Name() string { return "validate_naming" }

func (t *ValidateNamingTool) Description() string {
	return "Validate that resource name labels follow {client}-{project}-{environment}-{type}-{key} with known type abbreviations, and that taggable resources build tags with merge()"
}

func (t *ValidateNamingTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *ValidateNamingTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{Category: types.CategoryNaming})
}
