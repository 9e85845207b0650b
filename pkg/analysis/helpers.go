package analysis

import (
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

func pass(ruleID, message string) types.Finding {
	return types.Finding{RuleID: ruleID, Passed: true, Message: message}
}

func fail(ruleID, message, affectedPath string) types.Finding {
	return types.Finding{RuleID: ruleID, Passed: false, Message: message, AffectedPath: affectedPath}
}

// normalizeSpace collapses whitespace runs to single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resourceAddress renders the type.name address used in finding messages.
func resourceAddress(r terraform.Resource) string {
	return r.Type + "." + r.Name
}

// attrLiteral returns the trimmed raw value of a resource attribute.
func attrLiteral(r terraform.Resource, key string) (string, bool) {
	v, ok := r.Attributes[key]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// fileProblem names why a file's content is unavailable. Unreadable files are
// reported with their read error so the finding points at the real problem.
func fileProblem(snap *terraform.Snapshot, rel string) string {
	if e := snap.Entry(rel); e != nil {
		if e.ReadErr != "" {
			return rel + " cannot be read: " + e.ReadErr
		}
		if e.Truncated {
			return rel + " exceeds the file size cap, content was not scanned"
		}
	}
	return rel + " is missing"
}
