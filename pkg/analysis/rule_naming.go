package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

const namingConvention = "{client}-{project}-{environment}-{type}-{key}"

// typeAbbreviations maps a resource type to the short segment expected at the
// {type} position of its name label.
var typeAbbreviations = map[string]string{
	"aws_s3_bucket":            "s3",
	"aws_db_instance":          "rds",
	"aws_rds_cluster":          "rds",
	"aws_dynamodb_table":       "ddb",
	"aws_lambda_function":      "lmb",
	"aws_kms_key":              "kms",
	"aws_sqs_queue":            "sqs",
	"aws_sns_topic":            "sns",
	"aws_security_group":       "sg",
	"aws_vpc":                  "vpc",
	"aws_subnet":               "sub",
	"aws_iam_role":             "role",
	"aws_instance":             "ec2",
	"aws_ebs_volume":           "ebs",
	"aws_efs_file_system":      "efs",
	"aws_cloudwatch_log_group": "log",
	"aws_elasticache_cluster":  "ecc",
	"aws_lb":                   "alb",
}

// knownEnvironments is the allowed {environment} segment set.
var knownEnvironments = map[string]bool{
	"dev":     true,
	"qa":      true,
	"staging": true,
	"prod":    true,
}

// EvaluateResourceNaming tests every resource name label against the
// client-project-environment-type-key convention. Each resource yields its own
// finding so one bad name does not hide the rest.
func EvaluateResourceNaming(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, r := range snap.Resources {
		if msg := checkNameLabel(r); msg != "" {
			findings = append(findings, fail("B2", msg, r.File))
		} else {
			findings = append(findings, pass("B2", fmt.Sprintf("%s follows the %s convention", resourceAddress(r), namingConvention)))
		}
	}
	if expr, ok := snap.Locals["resource_names"]; ok {
		if !strings.Contains(expr, "${var.client}-${var.project}-${var.environment}") {
			findings = append(findings, fail("B2", "locals resource_names does not build names from ${var.client}-${var.project}-${var.environment}", "locals.tf"))
		}
	}
	if len(findings) == 0 {
		findings = append(findings, pass("B2", "no resource declarations to check"))
	}
	return findings
}

// checkNameLabel returns an empty string for a conforming label, or the
// failure message. The {key} segment may itself contain hyphens, so the label
// is split into at most five parts.
func checkNameLabel(r terraform.Resource) string {
	parts := strings.SplitN(r.Name, "-", 5)
	if len(parts) < 5 {
		return fmt.Sprintf("%s name label %q has %d segments, expected %s", resourceAddress(r), r.Name, len(parts), namingConvention)
	}
	for i, p := range parts {
		if p == "" {
			return fmt.Sprintf("%s name label %q has an empty segment at position %d", resourceAddress(r), r.Name, i+1)
		}
	}
	if !knownEnvironments[parts[2]] {
		return fmt.Sprintf("%s environment segment %q is not one of dev, qa, staging, prod", resourceAddress(r), parts[2])
	}
	if abbr, known := typeAbbreviations[r.Type]; known && parts[3] != abbr {
		return fmt.Sprintf("%s type segment %q does not match the %s abbreviation %q", resourceAddress(r), parts[3], r.Type, abbr)
	}
	return ""
}
