package analysis

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

const sampleInputsPath = "sample/terraform.tfvars.sample"

var sampleRequiredInputs = []string{"client", "project", "environment"}

// EvaluateSampleInputs verifies that the sample tfvars file assigns the three
// base inputs every module consumes. A missing file fails closed.
func EvaluateSampleInputs(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	text, ok := snap.Text(sampleInputsPath)
	if !ok {
		return []types.Finding{fail("B5", fileProblem(snap, sampleInputsPath)+", sample inputs cannot be verified", sampleInputsPath)}
	}
	assigned, _ := terraform.ParseBody(text)
	var findings []types.Finding
	for _, name := range sampleRequiredInputs {
		if _, ok := assigned[name]; !ok {
			findings = append(findings, fail("B5", fmt.Sprintf("%s does not assign %s", sampleInputsPath, name), sampleInputsPath))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("B5", "sample inputs assign client, project and environment"))
	}
	return findings
}
