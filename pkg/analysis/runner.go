package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// Selection narrows an evaluation to one category or one rule id. The zero
// value selects the whole catalog. RuleID wins when both are set.
type Selection struct {
	RuleID   string
	Category string
}

// EvaluateModule scans the module once and runs the selected rules against
// the immutable snapshot, returning the aggregated report. Unknown rule ids
// and categories surface before any file is touched.
func EvaluateModule(ctx context.Context, fsys terraform.FS, root string, sel Selection) (*types.Report, error) {
	selected, err := selectEntries(sel)
	if err != nil {
		return nil, err
	}
	snap, err := terraform.Scan(ctx, fsys, root)
	if err != nil {
		return nil, err
	}
	byRule := make(map[string][]types.Finding, len(selected))
	for _, entry := range selected {
		byRule[entry.Rule.ID] = runEvaluator(ctx, entry, snap)
	}
	return aggregate(root, selected, byRule)
}

func selectEntries(sel Selection) ([]CatalogEntry, error) {
	switch {
	case sel.RuleID != "":
		entry, ok := RuleByID(sel.RuleID)
		if !ok {
			return nil, types.NewEngineError(types.ErrCodeUnknownRuleID, fmt.Sprintf("rule %q is not in the catalog", sel.RuleID))
		}
		return []CatalogEntry{entry}, nil
	case sel.Category != "":
		if !types.ValidCategory(sel.Category) {
			return nil, types.NewEngineError(types.ErrCodeUnknownCategory, fmt.Sprintf("category %q is not in the catalog", sel.Category))
		}
		return RulesFor(sel.Category), nil
	default:
		return Catalog(), nil
	}
}

// runEvaluator shields the evaluation loop from a panicking rule: the rule is
// reported as failed instead of taking the whole call down, and the other
// rules still run.
func runEvaluator(ctx context.Context, entry CatalogEntry, snap *terraform.Snapshot) (findings []types.Finding) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("rule evaluator panicked", "rule", entry.Rule.ID, "error", r)
			findings = []types.Finding{fail(entry.Rule.ID, "rule evaluation failed unexpectedly, treat as non-compliant", "")}
		}
	}()
	return entry.Evaluate(ctx, snap)
}
