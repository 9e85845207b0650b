package analysis

import (
	"context"
	"fmt"
	"regexp"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var funcCallRe = regexp.MustCompile(`[a-z_][a-zA-Z0-9_]*\(`)

const maxChainedCalls = 2

// EvaluateLocalsSimplicity warns on locals assignments that chain more than
// two function calls. The depth is measured lexically on the raw expression,
// not by evaluating it.
func EvaluateLocalsSimplicity(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	if len(snap.Locals) == 0 {
		return []types.Finding{pass("A4", "no locals to check")}
	}
	var findings []types.Finding
	for _, name := range snap.LocalNames() {
		calls := len(funcCallRe.FindAllString(snap.Locals[name], -1))
		if calls > maxChainedCalls {
			findings = append(findings, fail("A4", fmt.Sprintf("local %q chains %d function calls, keep transformations to at most %d", name, calls, maxChainedCalls), "locals.tf"))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("A4", "locals transformations stay simple"))
	}
	return findings
}
