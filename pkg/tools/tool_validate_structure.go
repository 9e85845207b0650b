package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// ValidateStructureTool checks that a module carries the 16 required entries.
type ValidateStructureTool struct {
	BaseTool
}

func (t *ValidateStructureTool) Name() string { return "validate_structure" }

func (t *ValidateStructureTool) Description() string {
	return "Validate that the module tree contains the 16 required entries: nine root files, the sample/ directory and its six files"
}

func (t *ValidateStructureTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *ValidateStructureTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{Category: types.CategoryStructure})
}
