package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
)

func namingSnapshot(resources ...terraform.Resource) *terraform.Snapshot {
	return &terraform.Snapshot{Resources: resources}
}

func TestEvaluateResourceNaming_ConformingLabel(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-dev-s3-uploads", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if !findings[0].Passed {
		t.Errorf("expected pass, got %q", findings[0].Message)
	}
}

func TestEvaluateResourceNaming_HyphenatedKeySegment(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-prod-s3-raw-data", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if !findings[0].Passed {
		t.Errorf("key segments may contain hyphens, got %q", findings[0].Message)
	}
}

func TestEvaluateResourceNaming_DroppedSegmentFails(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-s3-uploads", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Passed {
		t.Error("label without an environment segment must fail")
	}
}

func TestEvaluateResourceNaming_UnknownEnvironmentFails(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-sandbox-s3-uploads", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if findings[0].Passed {
		t.Error("unknown environment segment must fail")
	}
	if !strings.Contains(findings[0].Message, "sandbox") {
		t.Errorf("expected the message to name the bad segment, got %q", findings[0].Message)
	}
}

func TestEvaluateResourceNaming_WrongAbbreviationFails(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-dev-rds-uploads", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if findings[0].Passed {
		t.Error("type segment not matching the abbreviation must fail")
	}
}

func TestEvaluateResourceNaming_UnknownTypeChecksShapeOnly(t *testing.T) {
	snap := namingSnapshot(terraform.Resource{Type: "aws_appsync_graphql_api", Name: "pragma-webapp-qa-gql-api", File: "main.tf"})

	findings := EvaluateResourceNaming(context.Background(), snap)
	if !findings[0].Passed {
		t.Errorf("unknown resource types only need the overall shape, got %q", findings[0].Message)
	}
}

func TestEvaluateResourceNaming_OneFindingPerResource(t *testing.T) {
	snap := namingSnapshot(
		terraform.Resource{Type: "aws_s3_bucket", Name: "pragma-webapp-dev-s3-uploads", File: "main.tf"},
		terraform.Resource{Type: "aws_db_instance", Name: "legacy", File: "main.tf"},
	)

	findings := EvaluateResourceNaming(context.Background(), snap)
	if len(findings) != 2 {
		t.Fatalf("expected one finding per resource, got %d", len(findings))
	}
	if !findings[0].Passed || findings[1].Passed {
		t.Error("expected the first resource to pass and the second to fail")
	}
}

func TestEvaluateResourceNaming_NoResources(t *testing.T) {
	findings := EvaluateResourceNaming(context.Background(), &terraform.Snapshot{})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if !findings[0].Passed {
		t.Error("a module without resources has nothing to flag")
	}
}

func TestEvaluateResourceNaming_LocalsConvention(t *testing.T) {
	snap := &terraform.Snapshot{
		Locals: map[string]string{"resource_names": `{ uploads = "static-name" }`},
	}

	findings := EvaluateResourceNaming(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Passed {
		t.Error("resource_names without the client-project-environment interpolation must fail")
	}
}
