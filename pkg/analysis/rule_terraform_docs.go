package analysis

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

const terraformDocsPath = ".terraform-docs.yml"

type terraformDocsConfig struct {
	Formatter string `yaml:"formatter"`
	Output    struct {
		File     string `yaml:"file"`
		Mode     string `yaml:"mode"`
		Template string `yaml:"template"`
	} `yaml:"output"`
	Sort struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"sort"`
}

// EvaluateTerraformDocsConfig checks that .terraform-docs.yml injects a
// markdown table into README.md between the TF_DOCS markers with sorting
// enabled. A file that does not parse as YAML fails the rule rather than the
// evaluation.
func EvaluateTerraformDocsConfig(_ context.Context, snap *terraform.Snapshot) []types.Finding {
	text, ok := snap.Text(terraformDocsPath)
	if !ok {
		return []types.Finding{fail("D3", fileProblem(snap, terraformDocsPath), terraformDocsPath)}
	}
	var cfg terraformDocsConfig
	if err := yaml.Unmarshal([]byte(text), &cfg); err != nil {
		return []types.Finding{fail("D3", fmt.Sprintf("%s is not valid YAML: %v", terraformDocsPath, err), terraformDocsPath)}
	}
	var findings []types.Finding
	if cfg.Formatter != "markdown table" {
		findings = append(findings, fail("D3", fmt.Sprintf("formatter is %q, expected \"markdown table\"", cfg.Formatter), terraformDocsPath))
	}
	if cfg.Output.File != "README.md" {
		findings = append(findings, fail("D3", fmt.Sprintf("output.file is %q, expected \"README.md\"", cfg.Output.File), terraformDocsPath))
	}
	if cfg.Output.Mode != "inject" {
		findings = append(findings, fail("D3", fmt.Sprintf("output.mode is %q, expected \"inject\"", cfg.Output.Mode), terraformDocsPath))
	}
	if !strings.Contains(cfg.Output.Template, "BEGIN_TF_DOCS") {
		findings = append(findings, fail("D3", "output.template does not carry the BEGIN_TF_DOCS marker", terraformDocsPath))
	}
	if !cfg.Sort.Enabled {
		findings = append(findings, fail("D3", "sort.enabled is not true", terraformDocsPath))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("D3", ".terraform-docs.yml injects a sorted markdown table into README.md"))
	}
	return findings
}
