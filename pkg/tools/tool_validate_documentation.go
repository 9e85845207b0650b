package tools

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// documentationFocus maps the optional focus argument to a single rule.
var documentationFocus = map[string]string{
	"readme":        "D1",
	"changelog":     "D2",
	"sample-readme": "D5",
}

// ValidateDocumentationTool runs the documentation rules, optionally narrowed
// to the README or CHANGELOG check.
type ValidateDocumentationTool struct {
	BaseTool
}

func (t *ValidateDocumentationTool) Name() string { return "validate_documentation" }

func (t *ValidateDocumentationTool) Description() string {
	return "Validate README section order, CHANGELOG format, terraform-docs configuration and variable/output descriptions"
}

func (t *ValidateDocumentationTool) InputSchema() map[string]interface{} {
	schema := modulePathSchema()
	props := schema["properties"].(map[string]interface{})
	props["focus"] = map[string]interface{}{
		"type":        "string",
		"description": "Narrow the check to one document: readme, changelog or sample-readme",
		"enum":        []string{"readme", "changelog", "sample-readme"},
	}
	return schema
}

func (t *ValidateDocumentationTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	sel := analysis.Selection{Category: types.CategoryDocumentation}
	if focus, _ := args["focus"].(string); focus != "" {
		ruleID, ok := documentationFocus[focus]
		if !ok {
			return nil, types.NewEngineError(types.ErrCodeUnknownRuleID,
				fmt.Sprintf("unknown documentation focus %q", focus))
		}
		sel = analysis.Selection{RuleID: ruleID}
	}
	return t.runValidation(ctx, t.Name(), args, sel)
}
