package types

// Severity constants for catalog rules.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Category constants for catalog rules.
const (
	CategoryStructure     = "structure"
	CategoryNaming        = "naming"
	CategoryVariables     = "variables"
	CategoryTyping        = "typing"
	CategorySecurity      = "security"
	CategoryDocumentation = "documentation"
)

// AllCategories lists every rule category in report order.
func AllCategories() []string {
	return []string{
		CategoryStructure,
		CategoryNaming,
		CategoryVariables,
		CategoryTyping,
		CategorySecurity,
		CategoryDocumentation,
	}
}

// ValidCategory reports whether name is a known rule category.
func ValidCategory(name string) bool {
	for _, c := range AllCategories() {
		if c == name {
			return true
		}
	}
	return false
}

// Rule is a single compliance check in the catalog. Rule ids are stable
// across releases; reports referencing an id stay comparable version to version.
type Rule struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}
