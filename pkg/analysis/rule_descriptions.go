package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateDescriptions requires a description on every declared variable and
// output, one finding per undocumented name.
func EvaluateDescriptions(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, name := range snap.VariableNames() {
		v := snap.Variables[name]
		if strings.TrimSpace(v.Description) == "" {
			findings = append(findings, fail("D4", fmt.Sprintf("variable %q has no description", name), v.File))
		}
	}
	for _, name := range snap.OutputNames() {
		o := snap.Outputs[name]
		if strings.TrimSpace(o.Description) == "" {
			findings = append(findings, fail("D4", fmt.Sprintf("output %q has no description", name), o.File))
		}
	}
	if len(findings) == 0 {
		if len(snap.Variables) == 0 && len(snap.Outputs) == 0 {
			return []types.Finding{pass("D4", "no variables or outputs to check")}
		}
		findings = append(findings, pass("D4", "every variable and output declares a description"))
	}
	return findings
}
