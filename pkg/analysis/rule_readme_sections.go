package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateReadmeSections requires the twelve canonical README sections in
// their fixed order. Every missing or out-of-order section yields its own
// finding naming the expected heading.
func EvaluateReadmeSections(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	text, ok := snap.Text("README.md")
	if !ok {
		return []types.Finding{fail("D1", fileProblem(snap, "README.md")+", documentation cannot be verified", "README.md")}
	}
	lines := strings.Split(text, "\n")
	sections := template.CanonicalReadmeSections()

	positions := make([]int, len(sections))
	for i, heading := range sections {
		positions[i] = findHeadingLine(lines, heading, i == 0)
	}

	var findings []types.Finding
	for i, pos := range positions {
		if pos < 0 {
			findings = append(findings, fail("D1", fmt.Sprintf("README.md is missing the %q section", sections[i]), "README.md"))
		}
	}
	highest := -1
	for i, pos := range positions {
		if pos < 0 {
			continue
		}
		if pos < highest {
			findings = append(findings, fail("D1", fmt.Sprintf("README.md section %q is out of order", sections[i]), "README.md"))
			continue
		}
		highest = pos
	}
	if len(findings) == 0 {
		findings = append(findings, pass("D1", "README.md contains the 12 canonical sections in order"))
	}
	return findings
}

// findHeadingLine locates the first line matching a canonical heading. The
// title heading matches by prefix, the rest on the whole line. Comparison is
// case-insensitive and tolerates trailing punctuation.
func findHeadingLine(lines []string, heading string, prefixMatch bool) int {
	want := normalizeHeading(heading)
	for i, line := range lines {
		got := normalizeHeading(line)
		if prefixMatch {
			if strings.HasPrefix(got, want) {
				return i
			}
			continue
		}
		if got == want {
			return i
		}
	}
	return -1
}

func normalizeHeading(line string) string {
	return strings.TrimRight(strings.ToLower(normalizeSpace(line)), ":.!?")
}
