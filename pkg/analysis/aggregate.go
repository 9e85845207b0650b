package analysis

import (
	"fmt"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// aggregate merges per-rule findings into one report. Findings keep catalog
// order. A selected rule that contributed no finding at all means the report
// cannot be trusted, so the call fails instead of returning a partial one.
func aggregate(root string, selected []CatalogEntry, byRule map[string][]types.Finding) (*types.Report, error) {
	var all []types.Finding
	totals := make(map[string]types.CategoryTotal)
	overall := true
	for _, entry := range selected {
		findings := byRule[entry.Rule.ID]
		if len(findings) == 0 {
			return nil, types.NewEngineError(types.ErrCodeIncompleteEvaluation, fmt.Sprintf("rule %s produced no findings", entry.Rule.ID))
		}
		for _, f := range findings {
			all = append(all, f)
			t := totals[entry.Rule.Category]
			if f.Passed {
				t.Passed++
			} else {
				t.Failed++
				if entry.Rule.Severity == types.SeverityError {
					overall = false
				}
			}
			totals[entry.Rule.Category] = t
		}
	}
	return &types.Report{
		ModuleRootPath:    root,
		GeneratedFindings: all,
		CategoryTotals:    totals,
		OverallPassed:     overall,
	}, nil
}
