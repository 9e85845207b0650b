package analysis

import (
	"context"
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// publicAccessBlockAttrs are the four toggles of an S3 public access block.
// Explicitly disabling any of them reopens the bucket.
var publicAccessBlockAttrs = []string{
	"block_public_acls",
	"block_public_policy",
	"ignore_public_acls",
	"restrict_public_buckets",
}

// publiclyAccessibleTypes must set publicly_accessible to the blocking
// literal false. A missing attribute fails closed.
var publiclyAccessibleTypes = map[string]bool{
	"aws_db_instance":      true,
	"aws_rds_cluster":      true,
	"aws_redshift_cluster": true,
}

// EvaluatePublicAccess requires exposable resources to block public access.
func EvaluatePublicAccess(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, r := range snap.Resources {
		switch {
		case r.Type == "aws_s3_bucket":
			if snap.HasResourceType("aws_s3_bucket_public_access_block") {
				findings = append(findings, pass("S2", fmt.Sprintf("%s is covered by a public access block resource", resourceAddress(r))))
			} else {
				findings = append(findings, fail("S2", fmt.Sprintf("%s has no aws_s3_bucket_public_access_block companion", resourceAddress(r)), r.File))
			}
		case r.Type == "aws_s3_bucket_public_access_block":
			findings = append(findings, evalPublicAccessBlock(r))
		case publiclyAccessibleTypes[r.Type]:
			findings = append(findings, evalPubliclyAccessible(r))
		}
	}
	if len(findings) == 0 {
		return []types.Finding{pass("S2", "no publicly exposable resources to check")}
	}
	return findings
}

func evalPublicAccessBlock(r terraform.Resource) types.Finding {
	for _, attr := range publicAccessBlockAttrs {
		if v, ok := attrLiteral(r, attr); ok && v == "false" {
			return fail("S2", fmt.Sprintf("%s sets %s = false, which reopens public access", resourceAddress(r), attr), r.File)
		}
	}
	return pass("S2", fmt.Sprintf("%s keeps all public access toggles blocking", resourceAddress(r)))
}

func evalPubliclyAccessible(r terraform.Resource) types.Finding {
	v, ok := attrLiteral(r, "publicly_accessible")
	if !ok {
		return fail("S2", fmt.Sprintf("%s does not set publicly_accessible = false, absence is treated as exposed", resourceAddress(r)), r.File)
	}
	if v != "false" {
		return fail("S2", fmt.Sprintf("%s sets publicly_accessible = %s", resourceAddress(r), v), r.File)
	}
	return pass("S2", fmt.Sprintf("%s blocks public accessibility", resourceAddress(r)))
}
