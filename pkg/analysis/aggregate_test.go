package analysis

import (
	"errors"
	"testing"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

func catalogEntries(t *testing.T, ids ...string) []CatalogEntry {
	t.Helper()
	entries := make([]CatalogEntry, 0, len(ids))
	for _, id := range ids {
		entry, ok := RuleByID(id)
		if !ok {
			t.Fatalf("rule %s not in catalog", id)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestAggregate_WarningFailureKeepsOverallPassed(t *testing.T) {
	selected := catalogEntries(t, "S4")
	byRule := map[string][]types.Finding{
		"S4": {fail("S4", "S3 buckets have no aws_s3_bucket_versioning companion", "main.tf")},
	}

	report, err := aggregate(".", selected, byRule)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if !report.OverallPassed {
		t.Error("warning-severity failures must not fail the overall verdict")
	}
	total := report.CategoryTotals[types.CategorySecurity]
	if total.Failed != 1 || total.Passed != 0 {
		t.Errorf("unexpected security totals: %+v", total)
	}
}

func TestAggregate_ErrorFailureFailsOverall(t *testing.T) {
	selected := catalogEntries(t, "S1", "S4")
	byRule := map[string][]types.Finding{
		"S1": {fail("S1", "aws_db_instance.main does not set storage_encrypted", "main.tf")},
		"S4": {pass("S4", "audit-trail companions are in place")},
	}

	report, err := aggregate(".", selected, byRule)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if report.OverallPassed {
		t.Error("error-severity failure must fail the overall verdict")
	}
	total := report.CategoryTotals[types.CategorySecurity]
	if total.Failed != 1 || total.Passed != 1 {
		t.Errorf("unexpected security totals: %+v", total)
	}
}

func TestAggregate_MissingRuleFindingsIsIncomplete(t *testing.T) {
	selected := catalogEntries(t, "S1", "S2")
	byRule := map[string][]types.Finding{
		"S1": {pass("S1", "no encryption-sensitive resources to check")},
	}

	_, err := aggregate(".", selected, byRule)
	if err == nil {
		t.Fatal("expected error when a selected rule produced no findings")
	}
	var engineErr *types.EngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected EngineError, got %T", err)
	}
	if engineErr.Code != types.ErrCodeIncompleteEvaluation {
		t.Errorf("expected code %s, got %s", types.ErrCodeIncompleteEvaluation, engineErr.Code)
	}
}

func TestAggregate_FindingsKeepCatalogOrder(t *testing.T) {
	selected := catalogEntries(t, "B1", "B5", "D1")
	byRule := map[string][]types.Finding{
		"D1": {pass("D1", "README.md contains the 12 canonical sections in order")},
		"B5": {pass("B5", "sample inputs assign client, project and environment")},
		"B1": {
			fail("B1", "required file data.tf is missing from the module root", "data.tf"),
			fail("B1", "required file locals.tf is missing from the module root", "locals.tf"),
		},
	}

	report, err := aggregate(".", selected, byRule)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	got := make([]string, 0, len(report.GeneratedFindings))
	for _, f := range report.GeneratedFindings {
		got = append(got, f.RuleID)
	}
	want := []string{"B1", "B1", "B5", "D1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d findings, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("finding %d: expected rule %s, got %s", i, want[i], got[i])
		}
	}
}
