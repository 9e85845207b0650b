package tools

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// FullReportTool evaluates the whole catalog against a module.
type FullReportTool struct {
	BaseTool
}

func (t *FullReportTool) Name() string { return "full_report" }

func (t *FullReportTool) Description() string {
	return "Run every rule in the catalog against a module and return the complete compliance report"
}

func (t *FullReportTool) InputSchema() map[string]interface{} {
	return modulePathSchema()
}

func (t *FullReportTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	return t.runValidation(ctx, t.Name(), args, analysis.Selection{})
}
