package analysis

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateProviderVersions checks that providers.tf pins the core version and
// the provider set inside a terraform block.
func EvaluateProviderVersions(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	text, ok := snap.Text("providers.tf")
	if !ok {
		return []types.Finding{fail("A6", fileProblem(snap, "providers.tf")+", version pinning cannot be verified", "providers.tf")}
	}
	var terraformBlock *terraform.Block
	for _, b := range terraform.ScanBlocks(text) {
		if b.Kind == "terraform" {
			blk := b
			terraformBlock = &blk
			break
		}
	}
	if terraformBlock == nil {
		return []types.Finding{fail("A6", "providers.tf declares no terraform block", "providers.tf")}
	}
	attrs, nested := terraform.ParseBody(terraformBlock.Body)
	var findings []types.Finding
	if _, ok := attrs["required_version"]; !ok {
		findings = append(findings, fail("A6", "terraform block does not pin required_version", "providers.tf"))
	}
	if _, ok := nested["required_providers"]; !ok {
		findings = append(findings, fail("A6", "terraform block does not declare required_providers", "providers.tf"))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("A6", "providers.tf pins required_version and required_providers"))
	}
	return findings
}
