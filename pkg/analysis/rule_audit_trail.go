package analysis

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateAuditTrail checks the companions that keep changes observable:
// bucket versioning and access logging, key rotation on KMS keys, and
// retention on log groups. Advisory severity, the module still works without
// them.
func EvaluateAuditTrail(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	relevant := false
	if snap.HasResourceType("aws_s3_bucket") {
		relevant = true
		if !snap.HasResourceType("aws_s3_bucket_versioning") {
			findings = append(findings, fail("S4", "S3 buckets have no aws_s3_bucket_versioning companion", "main.tf"))
		}
		if !snap.HasResourceType("aws_s3_bucket_logging") {
			findings = append(findings, fail("S4", "S3 buckets have no aws_s3_bucket_logging companion", "main.tf"))
		}
	}
	for _, r := range snap.ResourcesOfType("aws_kms_key") {
		relevant = true
		if v, ok := attrLiteral(r, "enable_key_rotation"); !ok || v == "false" {
			findings = append(findings, fail("S4", fmt.Sprintf("%s does not enable key rotation", resourceAddress(r)), r.File))
		}
	}
	for _, r := range snap.ResourcesOfType("aws_cloudwatch_log_group") {
		relevant = true
		if _, ok := attrLiteral(r, "retention_in_days"); !ok {
			findings = append(findings, fail("S4", fmt.Sprintf("%s sets no retention_in_days", resourceAddress(r)), r.File))
		}
	}
	if len(findings) == 0 {
		if !relevant {
			return []types.Finding{pass("S4", "no audit-trail resources to check")}
		}
		findings = append(findings, pass("S4", "audit-trail companions are in place"))
	}
	return findings
}
