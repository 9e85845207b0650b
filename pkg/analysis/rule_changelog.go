package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var (
	changelogTitleRe   = regexp.MustCompile(`(?m)^# \S`)
	unreleasedRe       = regexp.MustCompile(`(?m)^## \[Unreleased\]`)
	versionedEntryRe   = regexp.MustCompile(`(?m)^## \[\d+\.\d+\.\d+\] - \d{4}-\d{2}-\d{2}`)
	changeSubsectionRe = regexp.MustCompile(`(?m)^### (\w+)`)
)

// EvaluateChangelog checks CHANGELOG.md against the Keep a Changelog shape:
// a title, an Unreleased or versioned-and-dated section, and at least one
// standard change-type subsection.
func EvaluateChangelog(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	text, ok := snap.Text("CHANGELOG.md")
	if !ok {
		return []types.Finding{fail("D2", fileProblem(snap, "CHANGELOG.md")+", change history cannot be verified", "CHANGELOG.md")}
	}
	var findings []types.Finding
	if !changelogTitleRe.MatchString(text) {
		findings = append(findings, fail("D2", "CHANGELOG.md has no title line", "CHANGELOG.md"))
	}
	if !unreleasedRe.MatchString(text) && !versionedEntryRe.MatchString(text) {
		findings = append(findings, fail("D2", "CHANGELOG.md has no [Unreleased] section and no [x.y.z] - YYYY-MM-DD release section", "CHANGELOG.md"))
	}
	if !hasStandardChangeType(text) {
		findings = append(findings, fail("D2", fmt.Sprintf("CHANGELOG.md has none of the standard change-type subsections (%s)", strings.Join(template.ChangeTypes(), ", ")), "CHANGELOG.md"))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("D2", "CHANGELOG.md follows the Keep a Changelog shape"))
	}
	return findings
}

func hasStandardChangeType(text string) bool {
	for _, m := range changeSubsectionRe.FindAllStringSubmatch(text, -1) {
		for _, want := range template.ChangeTypes() {
			if m[1] == want {
				return true
			}
		}
	}
	return false
}
