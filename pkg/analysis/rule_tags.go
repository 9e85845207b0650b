package analysis

import (
	"context"
	"regexp"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var (
	mergedTagsRe = regexp.MustCompile(`tags\s*=\s*merge\(`)
	nameTagRe    = regexp.MustCompile(`"?Name"?\s*=`)
)

// EvaluateTagging checks that main.tf builds resource tags with merge() and
// carries a Name tag. Modules without resources have nothing to tag.
func EvaluateTagging(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	if len(snap.Resources) == 0 {
		return []types.Finding{pass("B4", "no resource declarations to check")}
	}
	text, ok := snap.Text("main.tf")
	if !ok {
		return []types.Finding{fail("B4", fileProblem(snap, "main.tf")+", resource tagging cannot be verified", "main.tf")}
	}
	var findings []types.Finding
	if !mergedTagsRe.MatchString(text) {
		findings = append(findings, fail("B4", "resources do not combine tags with merge()", "main.tf"))
	}
	if !nameTagRe.MatchString(text) {
		findings = append(findings, fail("B4", "resources do not set a Name tag", "main.tf"))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("B4", "resources combine tags with merge() and set a Name tag"))
	}
	return findings
}
