package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// ValidateVariablesTool checks the required input variables and their
// validation blocks.
type ValidateVariablesTool struct {
	BaseTool
}

func (t *ValidateVariablesTool) Name() string { return "validate_variables" }

func (t *ValidateVariablesTool) Description() string {
	return "Validate that the variables client, project and environment are declared with descriptions and validation blocks"
}

func (t *ValidateVariablesTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *ValidateVariablesTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{Category: types.CategoryVariables})
}
