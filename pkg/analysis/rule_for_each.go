package analysis

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateForEach flags resources that multiply instances with count instead
// of for_each. One finding per resource keeps remediation precise.
func EvaluateForEach(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	if len(snap.Resources) == 0 {
		return []types.Finding{pass("A2", "no resource declarations to check")}
	}
	var findings []types.Finding
	for _, r := range snap.Resources {
		switch {
		case r.UsesCount && !r.UsesForEach:
			findings = append(findings, fail("A2", fmt.Sprintf("%s declares count without for_each", resourceAddress(r)), r.File))
		case r.UsesForEach:
			findings = append(findings, pass("A2", fmt.Sprintf("%s creates instances with for_each", resourceAddress(r))))
		default:
			findings = append(findings, pass("A2", fmt.Sprintf("%s does not rely on count", resourceAddress(r))))
		}
	}
	return findings
}
