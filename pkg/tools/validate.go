package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// runValidation resolves the module path, evaluates the selected rules
// against a fresh snapshot, and wraps the report in the response envelope.
// Shared by every validate_* tool; only the rule selection differs.
func (b *BaseTool) runValidation(ctx context.Context, toolName string, args map[string]interface{}, sel analysis.Selection) (*types.StandardResponse, error) {
	path, err := b.ModulePath(args)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "running validation", "tool", toolName, "path", path,
		"category", sel.Category, "rule", sel.RuleID)

	report, err := analysis.EvaluateModule(ctx, b.FS, path, sel)
	if err != nil {
		return nil, err
	}
	return types.NewStandardResponse(toolName, report), nil
}
