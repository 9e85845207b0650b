package types

// Finding is the outcome of evaluating one rule against one module. A rule
// that holds produces a single passing finding; a rule that is violated
// produces one failing finding per offense so remediation can name the exact
// file or resource.
type Finding struct {
	RuleID       string `json:"ruleId"`
	Passed       bool   `json:"passed"`
	Message      string `json:"message"`
	AffectedPath string `json:"affectedPath,omitempty"`
}

// CategoryTotal counts passed and failed findings for one category.
type CategoryTotal struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Report is the complete result of one evaluation call. Findings are ordered
// by catalog rule order, then by offense order, so an unmodified module always
// serializes to byte-identical reports.
type Report struct {
	ModuleRootPath    string                   `json:"moduleRootPath"`
	GeneratedFindings []Finding                `json:"generatedFindings"`
	CategoryTotals    map[string]CategoryTotal `json:"categoryTotals"`
	OverallPassed     bool                     `json:"overallPassed"`
}
