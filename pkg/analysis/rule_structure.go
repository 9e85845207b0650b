package analysis

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var requiredRootFiles = []string{
	".gitignore",
	"CHANGELOG.md",
	"README.md",
	"data.tf",
	"locals.tf",
	"main.tf",
	"outputs.tf",
	"providers.tf",
	"variables.tf",
}

var requiredSampleFiles = []string{
	"sample/README.md",
	"sample/data.tf",
	"sample/main.tf",
	"sample/outputs.tf",
	"sample/providers.tf",
	"sample/terraform.tfvars.sample",
}

// EvaluateRequiredLayout checks the fixed 16-entry module tree: nine root
// files, the sample/ directory and its six files. Each missing entry yields
// its own finding so callers can fix them one at a time.
func EvaluateRequiredLayout(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, name := range requiredRootFiles {
		if e := snap.Entry(name); e == nil || e.IsDir {
			findings = append(findings, fail("B1", fmt.Sprintf("required file %s is missing from the module root", name), name))
		}
	}
	if e := snap.Entry("sample"); e == nil || !e.IsDir {
		findings = append(findings, fail("B1", "required directory sample/ is missing from the module root", "sample"))
	}
	for _, name := range requiredSampleFiles {
		if e := snap.Entry(name); e == nil || e.IsDir {
			findings = append(findings, fail("B1", fmt.Sprintf("required file %s is missing", name), name))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("B1", "module layout contains all 16 required entries"))
	}
	return findings
}
