package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateVariableValidations checks that the declared critical variables
// carry validation blocks and that environment restricts its values with
// contains(). A variable that is not declared at all is the required-variables
// rule's offense, not this one's.
func EvaluateVariableValidations(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	declared := 0
	for _, name := range requiredVariables {
		v, ok := snap.Variables[name]
		if !ok {
			continue
		}
		declared++
		if len(v.Validations) == 0 {
			findings = append(findings, fail("A3", fmt.Sprintf("variable %q declares no validation block", name), v.File))
			continue
		}
		if name == "environment" && !validationUsesContains(v.Validations) {
			findings = append(findings, fail("A3", `variable "environment" validation does not restrict allowed values with contains()`, v.File))
		}
	}
	if len(findings) == 0 {
		if declared == 0 {
			return []types.Finding{pass("A3", "no critical variable declarations to check")}
		}
		findings = append(findings, pass("A3", "critical variables declare validation blocks"))
	}
	return findings
}

func validationUsesContains(validations []string) bool {
	for _, v := range validations {
		if strings.Contains(v, "contains(") {
			return true
		}
	}
	return false
}
