package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateSampleReadme requires sample/README.md to walk the reader through
// the example: the canonical headings, the four terraform workflow commands,
// and a pointer at the tfvars sample file. Every missing element yields its
// own finding.
func EvaluateSampleReadme(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	const rel = "sample/README.md"
	text, ok := snap.Text(rel)
	if !ok {
		return []types.Finding{fail("D5", fileProblem(snap, rel)+", the example walkthrough cannot be verified", rel)}
	}
	lines := strings.Split(text, "\n")

	var findings []types.Finding
	sections := template.SampleReadmeSections()
	for i, heading := range sections {
		if findHeadingLine(lines, heading, i == 0) < 0 {
			findings = append(findings, fail("D5", fmt.Sprintf("sample/README.md is missing the %q section", heading), rel))
		}
	}
	for _, cmd := range template.SampleWorkflowCommands() {
		if !strings.Contains(text, cmd) {
			findings = append(findings, fail("D5", fmt.Sprintf("sample/README.md does not demonstrate %q", cmd), rel))
		}
	}
	if !strings.Contains(text, template.SampleVarsFile) {
		findings = append(findings, fail("D5", "sample/README.md does not mention "+template.SampleVarsFile, rel))
	}

	if len(findings) == 0 {
		findings = append(findings, pass("D5", "sample/README.md documents the example walkthrough"))
	}
	return findings
}
