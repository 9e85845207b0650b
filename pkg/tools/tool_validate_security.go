package tools

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// securityFocus maps the optional focus argument to a single security rule.
var securityFocus = map[string]string{
	"encryption":      "S1",
	"public-access":   "S2",
	"transport":       "S3",
	"least-privilege": "S5",
	"network":         "S6",
}

// ValidateSecurityTool runs the security rules, optionally narrowed to one
// focus area.
type ValidateSecurityTool struct {
	BaseTool
}

func (t *ValidateSecurityTool) Name() string { return "validate_security" }

func (t *ValidateSecurityTool) Description() string {
	return "Validate fail-closed security rules: encryption at rest, public access blocking and forced secure transport"
}

func (t *ValidateSecurityTool) InputSchema() map[string]interface{} {
	schema := modulePathSchema()
	props := schema["properties"].(map[string]interface{})
	props["focus"] = map[string]interface{}{
		"type":        "string",
		"description": "Narrow the check to one area: encryption, public-access, transport, least-privilege or network",
		"enum":        []string{"encryption", "public-access", "transport", "least-privilege", "network"},
	}
	return schema
}

func (t *ValidateSecurityTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	sel := analysis.Selection{Category: types.CategorySecurity}
	if focus, _ := args["focus"].(string); focus != "" {
		ruleID, ok := securityFocus[focus]
		if !ok {
			return nil, types.NewEngineError(types.ErrCodeUnknownRuleID,
				fmt.Sprintf("unknown security focus %q", focus))
		}
		sel = analysis.Selection{RuleID: ruleID}
	}
	return t.runValidation(ctx, t.Name(), args, sel)
}
