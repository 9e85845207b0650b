package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// EvaluateLeastPrivilege inspects IAM policy signals. A policy_statements
// variable must type its entries with sid and effect, and policy documents
// must not grant wildcard actions or principals in Allow statements. Deny
// statements may legitimately match everything, so they are skipped.
func EvaluateLeastPrivilege(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	relevant := false

	if v, ok := snap.Variables["policy_statements"]; ok {
		relevant = true
		lower := strings.ToLower(v.Type)
		if !strings.Contains(lower, "sid") || !strings.Contains(lower, "effect") {
			findings = append(findings, fail("S5",
				"variable policy_statements does not type its entries with sid and effect", v.File))
		}
	}

	for _, e := range snap.Entries {
		if e.IsDir || !strings.HasSuffix(e.RelPath, ".tf") || strings.Contains(e.RelPath, "/") {
			continue
		}
		text, ok := snap.Text(e.RelPath)
		if !ok {
			continue
		}
		for _, b := range terraform.ScanBlocks(text) {
			if b.Kind != "data" || len(b.Labels) < 2 || b.Labels[0] != "aws_iam_policy_document" {
				continue
			}
			relevant = true
			addr := "data.aws_iam_policy_document." + b.Labels[1]
			_, nested := terraform.ParseBody(b.Body)
			for _, stmt := range nested["statement"] {
				attrs, stmtNested := terraform.ParseBody(stmt)
				if unquoteAttr(attrs["effect"]) == "Deny" {
					continue
				}
				if strings.Contains(attrs["actions"], `"*"`) {
					findings = append(findings, fail("S5",
						fmt.Sprintf("%s grants wildcard actions in an Allow statement", addr), e.RelPath))
				}
				for _, principals := range stmtNested["principals"] {
					if strings.Contains(principals, `"*"`) {
						findings = append(findings, fail("S5",
							fmt.Sprintf("%s grants access to any principal in an Allow statement", addr), e.RelPath))
					}
				}
			}
		}
	}

	if len(findings) == 0 {
		if !relevant {
			return []types.Finding{pass("S5", "no IAM policy signals to check")}
		}
		findings = append(findings, pass("S5", "policy documents scope their actions and principals"))
	}
	return findings
}

func unquoteAttr(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
