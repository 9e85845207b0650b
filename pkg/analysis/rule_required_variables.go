package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// requiredVariables are the base inputs every module consumes for naming and
// tagging.
var requiredVariables = []string{"client", "project", "environment"}

// EvaluateRequiredVariables verifies that client, project and environment are
// declared with non-empty descriptions.
func EvaluateRequiredVariables(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, name := range requiredVariables {
		v, ok := snap.Variables[name]
		if !ok {
			findings = append(findings, fail("B3", fmt.Sprintf("required variable %q is not declared", name), "variables.tf"))
			continue
		}
		if strings.TrimSpace(v.Description) == "" {
			findings = append(findings, fail("B3", fmt.Sprintf("variable %q has no description", name), v.File))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("B3", "variables client, project and environment are declared with descriptions"))
	}
	return findings
}
