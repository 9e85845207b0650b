package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// CatalogStats summarizes the rule catalog for the list_rules tool.
type CatalogStats struct {
	TotalRules int            `json:"totalRules"`
	ByCategory map[string]int `json:"byCategory"`
	BySeverity map[string]int `json:"bySeverity"`
	Rules      []types.Rule   `json:"rules"`
}

// ListRulesTool reports the catalog contents and per-category statistics.
type ListRulesTool struct {
	BaseTool
}

func (t *ListRulesTool) Name() string { return "list_rules" }

func (t *ListRulesTool) Description() string {
	return "List every rule in the catalog with per-category and per-severity statistics"
}

func (t *ListRulesTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Restrict the listing to one category",
			},
		},
	}
}

func (t *ListRulesTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	category, _ := args["category"].(string)
	if category != "" && !types.ValidCategory(category) {
		return nil, types.NewEngineError(types.ErrCodeUnknownCategory, "category \""+category+"\" is not in the catalog")
	}

	slog.InfoContext(ctx, "listing rules", "category", category)

	stats := &CatalogStats{
		ByCategory: make(map[string]int),
		BySeverity: make(map[string]int),
	}
	for _, rule := range analysis.AllRules() {
		if category != "" && rule.Category != category {
			continue
		}
		stats.TotalRules++
		stats.ByCategory[rule.Category]++
		stats.BySeverity[rule.Severity]++
		stats.Rules = append(stats.Rules, rule)
	}
	return types.NewStandardResponse(t.Name(), stats), nil
}
