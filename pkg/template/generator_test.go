package template

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestReadme_TwelveSectionsInOrder(t *testing.T) {
	for _, moduleType := range []string{"s3-bucket", "rds", "dynamodb"} {
		content := Readme("cloudops-ref-repo-aws-"+moduleType, moduleType)

		pos := -1
		for _, heading := range CanonicalReadmeSections() {
			idx := strings.Index(content, heading)
			if idx < 0 {
				t.Errorf("moduleType %s: missing section %q", moduleType, heading)
				continue
			}
			if idx < pos {
				t.Errorf("moduleType %s: section %q appears out of order", moduleType, heading)
			}
			pos = idx
		}

		if got := strings.Count(content, "\n## "); got != 11 {
			t.Errorf("moduleType %s: expected 11 level-two headings, got %d", moduleType, got)
		}
		if !strings.Contains(content, "<!-- BEGIN_TF_DOCS -->") {
			t.Errorf("moduleType %s: missing terraform-docs markers", moduleType)
		}
	}
}

func TestSampleReadme_WalkthroughComplete(t *testing.T) {
	content := SampleReadme("cloudops-ref-repo-aws-s3")

	pos := -1
	for _, heading := range SampleReadmeSections() {
		idx := strings.Index(content, heading)
		if idx < 0 {
			t.Errorf("missing section %q", heading)
			continue
		}
		if idx < pos {
			t.Errorf("section %q appears out of order", heading)
		}
		pos = idx
	}
	for _, cmd := range SampleWorkflowCommands() {
		if !strings.Contains(content, cmd) {
			t.Errorf("walkthrough does not demonstrate %q", cmd)
		}
	}
	if !strings.Contains(content, SampleVarsFile) {
		t.Errorf("walkthrough does not mention %s", SampleVarsFile)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	requests := []Request{
		{ModuleName: "cloudops-ref-repo-aws-s3", ModuleType: "s3-bucket", TargetDocument: TargetReadme},
		{ModuleName: "cloudops-ref-repo-aws-s3", TargetDocument: TargetSampleReadme},
		{TargetDocument: TargetChangelog},
		{TargetDocument: TargetTerraformDocsConfig},
	}
	for _, req := range requests {
		first, err := Generate(req)
		if err != nil {
			t.Fatalf("target %s: %v", req.TargetDocument, err)
		}
		second, err := Generate(req)
		if err != nil {
			t.Fatalf("target %s: %v", req.TargetDocument, err)
		}
		if first != second {
			t.Errorf("target %s: output differs between identical requests", req.TargetDocument)
		}
	}
}

func TestGenerate_UnknownTarget(t *testing.T) {
	if _, err := Generate(Request{TargetDocument: "dockerfile"}); err == nil {
		t.Errorf("expected an error for an unknown target document")
	}
}

func TestChangelog_KeepAChangelogShape(t *testing.T) {
	content := Changelog()

	if !strings.HasPrefix(content, "# Changelog") {
		t.Errorf("changelog must start with a title line")
	}
	if !strings.Contains(content, "## [Unreleased]") {
		t.Errorf("changelog must carry an Unreleased section")
	}
	found := false
	for _, changeType := range ChangeTypes() {
		if strings.Contains(content, "### "+changeType) {
			found = true
		}
	}
	if !found {
		t.Errorf("changelog must carry at least one standard change-type subsection")
	}
}

func TestTerraformDocsConfig_ParsesWithExpectedToggles(t *testing.T) {
	var cfg struct {
		Formatter string `yaml:"formatter"`
		Output    struct {
			File string `yaml:"file"`
			Mode string `yaml:"mode"`
		} `yaml:"output"`
		Sort struct {
			Enabled bool   `yaml:"enabled"`
			By      string `yaml:"by"`
		} `yaml:"sort"`
	}
	if err := yaml.Unmarshal([]byte(TerraformDocsConfig()), &cfg); err != nil {
		t.Fatalf("generated config is not valid YAML: %v", err)
	}

	if cfg.Formatter != "markdown table" {
		t.Errorf("expected formatter \"markdown table\", got %q", cfg.Formatter)
	}
	if cfg.Output.File != "README.md" || cfg.Output.Mode != "inject" {
		t.Errorf("expected README.md inject output, got %+v", cfg.Output)
	}
	if !cfg.Sort.Enabled || cfg.Sort.By != "name" {
		t.Errorf("expected sorting by name enabled, got %+v", cfg.Sort)
	}
}
