package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/config"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

func forEachFixture() terraform.MapFS {
	return terraform.MapFS{Files: map[string]string{
		"main.tf": `
resource "aws_s3_bucket" "this" {
  count  = 3
  bucket = "example"
}
`,
	}}
}

func TestValidateForEachTool_CountedResource(t *testing.T) {
	tool := &ValidateForEachTool{BaseTool: BaseTool{Cfg: &config.Config{}, FS: forEachFixture()}}

	resp, err := tool.Run(context.Background(), map[string]interface{}{"path": "."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, ok := resp.Data.(*types.Report)
	if !ok {
		t.Fatalf("expected *types.Report payload, got %T", resp.Data)
	}
	if len(report.GeneratedFindings) != 1 {
		t.Fatalf("expected exactly one finding, got %d", len(report.GeneratedFindings))
	}
	f := report.GeneratedFindings[0]
	if f.Passed {
		t.Errorf("expected the counted resource to fail")
	}
	if !strings.Contains(f.Message, "aws_s3_bucket.this") {
		t.Errorf("finding must name the offending resource, got %q", f.Message)
	}
	if report.OverallPassed {
		t.Errorf("expected overallPassed=false")
	}
}

func TestValidateForEachTool_MissingPathArgument(t *testing.T) {
	tool := &ValidateForEachTool{BaseTool: BaseTool{Cfg: &config.Config{}, FS: forEachFixture()}}

	_, err := tool.Run(context.Background(), map[string]interface{}{})
	if err == nil {
		t.Fatalf("expected an error for a missing path argument")
	}
}

func TestModulePath_WorkspaceRootEnforced(t *testing.T) {
	base := BaseTool{Cfg: &config.Config{WorkspaceRoot: "/srv/modules"}}

	if _, err := base.ModulePath(map[string]interface{}{"path": "/srv/modules/network"}); err != nil {
		t.Errorf("path inside the workspace must be accepted: %v", err)
	}
	if _, err := base.ModulePath(map[string]interface{}{"path": "/srv/modules"}); err != nil {
		t.Errorf("the workspace root itself must be accepted: %v", err)
	}

	for _, escape := range []string{"/etc/passwd", "/srv/modules/../secrets", "/srv/modulesX"} {
		_, err := base.ModulePath(map[string]interface{}{"path": escape})
		var engineErr *types.EngineError
		if !errors.As(err, &engineErr) || engineErr.Code != types.ErrCodePathOutsideWorkspace {
			t.Errorf("path %q: expected PATH_OUTSIDE_WORKSPACE, got %v", escape, err)
		}
	}
}

func TestValidateSecurityTool_Focus(t *testing.T) {
	fsys := terraform.MapFS{Files: map[string]string{
		"main.tf": `
resource "aws_s3_bucket" "this" {
  bucket = "example"
}
`,
	}}
	tool := &ValidateSecurityTool{BaseTool: BaseTool{Cfg: &config.Config{}, FS: fsys}}

	resp, err := tool.Run(context.Background(), map[string]interface{}{"path": ".", "focus": "encryption"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := resp.Data.(*types.Report)
	for _, f := range report.GeneratedFindings {
		if f.RuleID != "S1" {
			t.Errorf("encryption focus must only evaluate S1, saw %s", f.RuleID)
		}
	}

	if _, err := tool.Run(context.Background(), map[string]interface{}{"path": ".", "focus": "firewall"}); err == nil {
		t.Errorf("expected an error for an unknown focus")
	}
}

func TestListRulesTool_Stats(t *testing.T) {
	tool := &ListRulesTool{}

	resp, err := tool.Run(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats := resp.Data.(*CatalogStats)
	if stats.TotalRules != len(stats.Rules) {
		t.Errorf("totalRules %d does not match listed rules %d", stats.TotalRules, len(stats.Rules))
	}
	sum := 0
	for _, n := range stats.ByCategory {
		sum += n
	}
	if sum != stats.TotalRules {
		t.Errorf("category counts sum to %d, expected %d", sum, stats.TotalRules)
	}

	resp, err = tool.Run(context.Background(), map[string]interface{}{"category": types.CategorySecurity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, rule := range resp.Data.(*CatalogStats).Rules {
		if rule.Category != types.CategorySecurity {
			t.Errorf("filtered listing leaked rule %s of category %s", rule.ID, rule.Category)
		}
	}

	if _, err := tool.Run(context.Background(), map[string]interface{}{"category": "networking"}); err == nil {
		t.Errorf("expected an error for an unknown category")
	}
}

func TestGenerateReadmeTool_Deterministic(t *testing.T) {
	tool := &GenerateReadmeTool{}
	args := map[string]interface{}{"moduleName": "cloudops-ref-repo-aws-s3", "moduleType": "s3-bucket"}

	first, err := tool.Run(context.Background(), args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tool.Run(context.Background(), args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := first.Data.(*GeneratedDocument)
	b := second.Data.(*GeneratedDocument)
	if a.Content != b.Content {
		t.Errorf("generator output must be byte-identical across calls")
	}
	if a.FileName != "README.md" {
		t.Errorf("expected fileName README.md, got %s", a.FileName)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&ListRulesTool{})
	registry.Register(&FullReportTool{})
	registry.Register(&ValidateStructureTool{})

	names := registry.List()
	want := []string{"full_report", "list_rules", "validate_structure"}
	if len(names) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}
