package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// encryptionAttrs maps security-sensitive resource types to the attribute
// that must be present and not set to the disabled literal.
var encryptionAttrs = map[string]string{
	"aws_db_instance":                   "storage_encrypted",
	"aws_rds_cluster":                   "storage_encrypted",
	"aws_redshift_cluster":              "encrypted",
	"aws_ebs_volume":                    "encrypted",
	"aws_efs_file_system":               "encrypted",
	"aws_elasticache_cluster":           "at_rest_encryption_enabled",
	"aws_elasticache_replication_group": "at_rest_encryption_enabled",
}

// EvaluateEncryption requires encryption at rest on every security-sensitive
// resource. A missing attribute fails exactly like an explicit false: silence
// is not compliance.
func EvaluateEncryption(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, r := range snap.Resources {
		switch r.Type {
		case "aws_s3_bucket":
			findings = append(findings, evalBucketEncryption(r, snap))
		case "aws_dynamodb_table":
			findings = append(findings, evalDynamoEncryption(r))
		default:
			attr, sensitive := encryptionAttrs[r.Type]
			if !sensitive {
				continue
			}
			findings = append(findings, evalEncryptionAttr(r, attr))
		}
	}
	if len(findings) == 0 {
		return []types.Finding{pass("S1", "no encryption-sensitive resources to check")}
	}
	return findings
}

func evalBucketEncryption(r terraform.Resource, snap *terraform.Snapshot) types.Finding {
	if snap.HasResourceType("aws_s3_bucket_server_side_encryption_configuration") {
		return pass("S1", fmt.Sprintf("%s is covered by a server-side encryption configuration resource", resourceAddress(r)))
	}
	if _, inline := attrLiteral(r, "server_side_encryption_configuration"); inline {
		return pass("S1", fmt.Sprintf("%s declares an inline server-side encryption configuration", resourceAddress(r)))
	}
	return fail("S1", fmt.Sprintf("%s has no server-side encryption configuration", resourceAddress(r)), r.File)
}

func evalDynamoEncryption(r terraform.Resource) types.Finding {
	body, declared := attrLiteral(r, "server_side_encryption")
	if !declared {
		return fail("S1", fmt.Sprintf("%s declares no server_side_encryption block, absence is treated as disabled", resourceAddress(r)), r.File)
	}
	attrs, _ := terraform.ParseBody(body)
	enabled, ok := attrs["enabled"]
	if !ok || strings.TrimSpace(enabled) == "false" {
		return fail("S1", fmt.Sprintf("%s server_side_encryption is not enabled", resourceAddress(r)), r.File)
	}
	return pass("S1", fmt.Sprintf("%s enables server-side encryption", resourceAddress(r)))
}

func evalEncryptionAttr(r terraform.Resource, attr string) types.Finding {
	v, ok := attrLiteral(r, attr)
	if !ok {
		return fail("S1", fmt.Sprintf("%s does not set %s, absence is treated as disabled", resourceAddress(r), attr), r.File)
	}
	if v == "false" {
		return fail("S1", fmt.Sprintf("%s sets %s = false", resourceAddress(r), attr), r.File)
	}
	return pass("S1", fmt.Sprintf("%s enables encryption at rest via %s", resourceAddress(r), attr))
}
