package analysis

import (
	"context"
	"strings"
	"testing"
)

func TestEvaluateLeastPrivilege_NoPolicySignals(t *testing.T) {
	snap := scanFixture(t, map[string]string{
		"main.tf": `
resource "aws_s3_bucket" "this" {
  bucket = "example"
}
`,
	})

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 || !findings[0].Passed {
		t.Fatalf("module without policy signals should pass, got %+v", findings)
	}
}

func TestEvaluateLeastPrivilege_DenyStatementMayMatchEverything(t *testing.T) {
	snap := scanFixture(t, compliantModuleFiles())

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if !findings[0].Passed {
		t.Errorf("deny statements with wildcards should pass, got %q", findings[0].Message)
	}
}

func TestEvaluateLeastPrivilege_WildcardAllowStatement(t *testing.T) {
	snap := scanFixture(t, map[string]string{
		"data.tf": `
data "aws_iam_policy_document" "open" {
  statement {
    sid    = "AllowEverything"
    effect = "Allow"

    actions   = ["*"]
    resources = ["*"]
  }
}
`,
	})

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Passed {
		t.Error("wildcard actions in an Allow statement must fail")
	}
	if !strings.Contains(f.Message, "data.aws_iam_policy_document.open") {
		t.Errorf("finding should name the policy document, got %q", f.Message)
	}
}

func TestEvaluateLeastPrivilege_WildcardPrincipal(t *testing.T) {
	snap := scanFixture(t, map[string]string{
		"data.tf": `
data "aws_iam_policy_document" "public_read" {
  statement {
    sid = "PublicRead"

    actions   = ["s3:GetObject"]
    resources = ["arn:aws:s3:::example/*"]

    principals {
      type        = "AWS"
      identifiers = ["*"]
    }
  }
}
`,
	})

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Passed {
		t.Error("wildcard principal without an explicit Deny must fail")
	}
	if !strings.Contains(f.Message, "any principal") {
		t.Errorf("finding should describe the open principal, got %q", f.Message)
	}
}

func TestEvaluateLeastPrivilege_UntypedPolicyStatements(t *testing.T) {
	snap := scanFixture(t, map[string]string{
		"variables.tf": `
variable "policy_statements" {
  type        = list(object({ actions = list(string) }))
  description = "Additional policy statements"
}
`,
	})

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Passed {
		t.Error("policy_statements without sid and effect fields must fail")
	}
	if !strings.Contains(f.Message, "policy_statements") {
		t.Errorf("finding should name the variable, got %q", f.Message)
	}
}

func TestEvaluateLeastPrivilege_TypedPolicyStatementsPass(t *testing.T) {
	snap := scanFixture(t, map[string]string{
		"variables.tf": `
variable "policy_statements" {
  type = list(object({
    sid     = string
    effect  = string
    actions = list(string)
  }))
  description = "Additional policy statements"
}
`,
	})

	findings := EvaluateLeastPrivilege(context.Background(), snap)
	if len(findings) != 1 || !findings[0].Passed {
		t.Fatalf("typed policy_statements should pass, got %+v", findings)
	}
}
