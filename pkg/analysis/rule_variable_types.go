package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// primitiveTypes and exactCompositeTypes are compared after stripping all
// whitespace from the declared type text.
var allowedExactTypes = map[string]bool{
	"string":       true,
	"number":       true,
	"bool":         true,
	"map(string)":  true,
	"list(string)": true,
}

var allowedCompositePrefixes = []string{"map(object(", "list(object("}

// EvaluateVariableTypes restricts declared variable types to primitives and
// the approved composite forms. Bare list or map declarations without an
// element type fail, as does any other shape.
func EvaluateVariableTypes(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	var findings []types.Finding
	for _, name := range snap.VariableNames() {
		v := snap.Variables[name]
		if strings.TrimSpace(v.Type) == "" {
			findings = append(findings, fail("A1", fmt.Sprintf("variable %q declares no type", name), v.File))
			continue
		}
		if !allowedTypeText(v.Type) {
			findings = append(findings, fail("A1", fmt.Sprintf("variable %q type %q is not an allowed form", name, normalizeSpace(v.Type)), v.File))
		}
	}
	if len(findings) == 0 {
		if len(snap.Variables) == 0 {
			return []types.Finding{pass("A1", "no variable declarations to check")}
		}
		findings = append(findings, pass("A1", "all variable types use the allowed forms"))
	}
	return findings
}

func allowedTypeText(t string) bool {
	compact := strings.Join(strings.Fields(t), "")
	if allowedExactTypes[compact] {
		return true
	}
	for _, prefix := range allowedCompositePrefixes {
		if strings.HasPrefix(compact, prefix) {
			return true
		}
	}
	return false
}
