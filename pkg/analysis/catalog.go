package analysis

import (
	"context"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// Evaluator is the function signature for all rule checks. Evaluators read
// the snapshot and never mutate it.
type Evaluator func(ctx context.Context, snap *terraform.Snapshot) []types.Finding

// CatalogEntry pairs a rule definition with its evaluator.
type CatalogEntry struct {
	Rule     types.Rule
	Evaluate Evaluator
}

// Catalog returns every rule in evaluation order, grouped by category. The
// table is the single source of truth for the rule set: adding or removing a
// rule is a data change here, not a new control-flow branch.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Rule: types.Rule{
				ID:          "B1",
				Category:    types.CategoryStructure,
				Severity:    types.SeverityError,
				Description: "Module tree contains the 16 required entries: nine root files, the sample/ directory and its six files",
			},
			Evaluate: EvaluateRequiredLayout,
		},
		{
			Rule: types.Rule{
				ID:          "B5",
				Category:    types.CategoryStructure,
				Severity:    types.SeverityError,
				Description: "sample/terraform.tfvars.sample assigns the client, project and environment variables",
			},
			Evaluate: EvaluateSampleInputs,
		},
		{
			Rule: types.Rule{
				ID:          "B2",
				Category:    types.CategoryNaming,
				Severity:    types.SeverityError,
				Description: "Resource name labels follow {client}-{project}-{environment}-{type}-{key} with a known type abbreviation",
			},
			Evaluate: EvaluateResourceNaming,
		},
		{
			Rule: types.Rule{
				ID:          "B4",
				Category:    types.CategoryNaming,
				Severity:    types.SeverityError,
				Description: "Resources build tags with merge() and include a Name tag",
			},
			Evaluate: EvaluateTagging,
		},
		{
			Rule: types.Rule{
				ID:          "B3",
				Category:    types.CategoryVariables,
				Severity:    types.SeverityError,
				Description: "Variables client, project and environment are declared with non-empty descriptions",
			},
			Evaluate: EvaluateRequiredVariables,
		},
		{
			Rule: types.Rule{
				ID:          "A3",
				Category:    types.CategoryVariables,
				Severity:    types.SeverityError,
				Description: "Critical variables declare validation blocks; environment validates its allowed values with contains()",
			},
			Evaluate: EvaluateVariableValidations,
		},
		{
			Rule: types.Rule{
				ID:          "A1",
				Category:    types.CategoryTyping,
				Severity:    types.SeverityError,
				Description: "Variable types are limited to primitives, map(object(...)), list(object(...)), map(string) and list(string)",
			},
			Evaluate: EvaluateVariableTypes,
		},
		{
			Rule: types.Rule{
				ID:          "A2",
				Category:    types.CategoryTyping,
				Severity:    types.SeverityError,
				Description: "Multi-instance resources use for_each; count is prohibited",
			},
			Evaluate: EvaluateForEach,
		},
		{
			Rule: types.Rule{
				ID:          "A4",
				Category:    types.CategoryTyping,
				Severity:    types.SeverityWarning,
				Description: "Locals transformations stay simple: at most two chained function calls per assignment",
			},
			Evaluate: EvaluateLocalsSimplicity,
		},
		{
			Rule: types.Rule{
				ID:          "A5",
				Category:    types.CategoryTyping,
				Severity:    types.SeverityError,
				Description: "flatten() is prohibited in locals",
			},
			Evaluate: EvaluateLocalsFlatten,
		},
		{
			Rule: types.Rule{
				ID:          "A6",
				Category:    types.CategoryTyping,
				Severity:    types.SeverityWarning,
				Description: "providers.tf pins required_version and required_providers in a terraform block",
			},
			Evaluate: EvaluateProviderVersions,
		},
		{
			Rule: types.Rule{
				ID:          "S1",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityError,
				Description: "Encryption at rest is enabled on security-sensitive resources",
			},
			Evaluate: EvaluateEncryption,
		},
		{
			Rule: types.Rule{
				ID:          "S2",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityError,
				Description: "Public access is blocked on exposable resources",
			},
			Evaluate: EvaluatePublicAccess,
		},
		{
			Rule: types.Rule{
				ID:          "S3",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityError,
				Description: "Transport security is forced: no plain HTTP, no disabled SSL/TLS, S3 buckets force SecureTransport",
			},
			Evaluate: EvaluateTransportSecurity,
		},
		{
			Rule: types.Rule{
				ID:          "S4",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityWarning,
				Description: "Storage resources carry versioning, access logging and key rotation companions",
			},
			Evaluate: EvaluateAuditTrail,
		},
		{
			Rule: types.Rule{
				ID:          "S5",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityWarning,
				Description: "IAM policies follow least privilege: typed policy_statements, no wildcard actions or principals in Allow statements",
			},
			Evaluate: EvaluateLeastPrivilege,
		},
		{
			Rule: types.Rule{
				ID:          "S6",
				Category:    types.CategorySecurity,
				Severity:    types.SeverityWarning,
				Description: "Network resources enable VPC DNS resolution, avoid public IPs on launch and keep ACLs off 0.0.0.0/0",
			},
			Evaluate: EvaluateNetworkConfiguration,
		},
		{
			Rule: types.Rule{
				ID:          "D1",
				Category:    types.CategoryDocumentation,
				Severity:    types.SeverityError,
				Description: "README.md contains the 12 canonical sections in order",
			},
			Evaluate: EvaluateReadmeSections,
		},
		{
			Rule: types.Rule{
				ID:          "D2",
				Category:    types.CategoryDocumentation,
				Severity:    types.SeverityError,
				Description: "CHANGELOG.md follows Keep a Changelog with an Unreleased or versioned section",
			},
			Evaluate: EvaluateChangelog,
		},
		{
			Rule: types.Rule{
				ID:          "D3",
				Category:    types.CategoryDocumentation,
				Severity:    types.SeverityError,
				Description: ".terraform-docs.yml injects a markdown table into README.md with sorting enabled",
			},
			Evaluate: EvaluateTerraformDocsConfig,
		},
		{
			Rule: types.Rule{
				ID:          "D4",
				Category:    types.CategoryDocumentation,
				Severity:    types.SeverityError,
				Description: "Every variable and output declares a description",
			},
			Evaluate: EvaluateDescriptions,
		},
		{
			Rule: types.Rule{
				ID:          "D5",
				Category:    types.CategoryDocumentation,
				Severity:    types.SeverityError,
				Description: "sample/README.md walks through the example: canonical sections, the terraform workflow commands and the tfvars sample file",
			},
			Evaluate: EvaluateSampleReadme,
		},
	}
}

// AllRules returns the rule definitions without their evaluators.
func AllRules() []types.Rule {
	entries := Catalog()
	rules := make([]types.Rule, 0, len(entries))
	for _, e := range entries {
		rules = append(rules, e.Rule)
	}
	return rules
}

// RulesFor returns the catalog entries of one category, in catalog order.
func RulesFor(category string) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range Catalog() {
		if e.Rule.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// RuleByID returns the catalog entry for a rule id.
func RuleByID(id string) (CatalogEntry, bool) {
	for _, e := range Catalog() {
		if e.Rule.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}
