package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateLocalsFlatten rejects flatten() in locals unconditionally. The
// structure it collapses is exactly what the approved variable shapes are
// meant to avoid, so its presence fails regardless of nesting depth.
func EvaluateLocalsFlatten(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	if len(snap.Locals) == 0 {
		return []types.Finding{pass("A5", "no locals to check")}
	}
	var findings []types.Finding
	for _, name := range snap.LocalNames() {
		if strings.Contains(snap.Locals[name], "flatten(") {
			findings = append(findings, fail("A5", fmt.Sprintf("local %q uses flatten()", name), "locals.tf"))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("A5", "locals do not use flatten()"))
	}
	return findings
}
