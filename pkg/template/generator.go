package template

import (
	"fmt"
	"strings"
)

// TargetDocument selects which artifact Generate renders.
type TargetDocument string

const (
	TargetReadme              TargetDocument = "readme"
	TargetSampleReadme        TargetDocument = "sample-readme"
	TargetChangelog           TargetDocument = "changelog"
	TargetTerraformDocsConfig TargetDocument = "terraform-docs-config"
)

// Request describes one generation call.
type Request struct {
	ModuleName     string         `json:"moduleName"`
	ModuleType     string         `json:"moduleType"`
	TargetDocument TargetDocument `json:"targetDocument"`
}

// Generate renders the requested boilerplate. Same request, same bytes:
// nothing here reads a clock or any other ambient state.
func Generate(req Request) (string, error) {
	switch req.TargetDocument {
	case TargetReadme:
		return Readme(req.ModuleName, req.ModuleType), nil
	case TargetSampleReadme:
		return SampleReadme(req.ModuleName), nil
	case TargetChangelog:
		return Changelog(), nil
	case TargetTerraformDocsConfig:
		return TerraformDocsConfig(), nil
	default:
		return "", fmt.Errorf("unknown target document %q", req.TargetDocument)
	}
}

// Readme renders the module README skeleton. Heading lines come straight
// from CanonicalReadmeSections, so the output always carries exactly the
// twelve sections the documentation rules require, in order.
func Readme(moduleName, moduleType string) string {
	sections := CanonicalReadmeSections()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", sections[0], moduleName)
	for i, heading := range sections[1:] {
		b.WriteString(heading)
		b.WriteString("\n\n")
		b.WriteString(readmeSectionBody(heading, moduleName, moduleType))
		if i < len(sections)-2 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n<!-- BEGIN_TF_DOCS -->\n<!-- END_TF_DOCS -->\n")
	return b.String()
}

func readmeSectionBody(heading, moduleName, moduleType string) string {
	configKey := strings.ReplaceAll(moduleType, "-", "_") + "_config"
	switch heading {
	case "## Description":
		return fmt.Sprintf("[Concise description of the %s module: purpose, key capabilities and primary use cases]\n", moduleType)
	case "## Architecture Diagram":
		return "![Architecture](docs/architecture.png)\n"
	case "## Features":
		return "- [Key capability 1]\n" +
			"- [Key capability 2]\n" +
			"- [Key capability 3]\n" +
			"- [Key capability 4]\n"
	case "## Module Structure":
		return "```\n" + moduleName + "/\n" +
			"├── .gitignore               # Files excluded from version control\n" +
			"├── CHANGELOG.md             # Version history\n" +
			"├── README.md                # Main documentation\n" +
			"├── data.tf                  # Data sources\n" +
			"├── locals.tf                # Local values and naming\n" +
			"├── main.tf                  # Primary resources\n" +
			"├── outputs.tf               # Module outputs\n" +
			"├── providers.tf             # Provider requirements\n" +
			"├── variables.tf             # Input variables\n" +
			"└── sample/                  # Working example\n" +
			"    ├── README.md            # Example walkthrough\n" +
			"    ├── data.tf              # Example data sources\n" +
			"    ├── main.tf              # Example configuration\n" +
			"    ├── outputs.tf           # Example outputs\n" +
			"    ├── providers.tf         # Example providers\n" +
			"    └── terraform.tfvars.sample # Example variables\n" +
			"```\n"
	case "## Implementation and Configuration":
		return "### Technical Requirements\n\n" +
			"| Requirement | Version |\n" +
			"|-------------|---------|\n" +
			"| Terraform | >= 1.0 |\n" +
			"| AWS Provider | >= 5.0 |\n\n" +
			"### Provider Configuration\n\n" +
			"```hcl\n" +
			"provider \"aws\" {\n" +
			"  region = \"us-east-1\"\n\n" +
			"  default_tags {\n" +
			"    tags = {\n" +
			"      environment = var.environment\n" +
			"      project     = var.project\n" +
			"      owner       = \"cloudops\"\n" +
			"      client      = var.client\n" +
			"      area        = \"infrastructure\"\n" +
			"      provisioned = \"terraform\"\n" +
			"      datatype    = \"operational\"\n" +
			"    }\n" +
			"  }\n" +
			"}\n" +
			"```\n\n" +
			"### Naming Conventions\n\n" +
			"```\n" +
			"{client}-{project}-{environment}-{type}-{key}\n" +
			"```\n\n" +
			"**Examples:**\n" +
			fmt.Sprintf("- `pragma-webapp-dev-%s-uploads`\n", moduleType) +
			fmt.Sprintf("- `pragma-api-prod-%s-encryption`\n", moduleType)
	case "## Input Parameters":
		return "### Required Variables\n\n" +
			"| Name | Description | Type | Required | Validation |\n" +
			"|------|-------------|------|----------|------------|\n" +
			"| client | Client name | string | yes | alphanumeric, 3-20 chars |\n" +
			"| project | Project name | string | yes | alphanumeric, 3-30 chars |\n" +
			"| environment | Deployment environment | string | yes | one of dev, qa, staging, prod |\n\n" +
			"### Configuration Variables\n\n" +
			"| Name | Description | Type | Required | Default |\n" +
			"|------|-------------|------|----------|---------|\n" +
			fmt.Sprintf("| %s | Per-instance %s configuration | map(object({...})) | yes | - |\n", configKey, moduleType)
	case "## Configuration Structure":
		return "```hcl\n" +
			configKey + " = {\n" +
			"  \"primary\" = {\n" +
			"    encryption_enabled  = true\n" +
			"    block_public_access = true\n\n" +
			"    additional_tags = {\n" +
			"      \"custom_tag\" = \"custom_value\"\n" +
			"    }\n" +
			"  }\n" +
			"}\n" +
			"```\n"
	case "## Output Values":
		return "| Name | Description | Type |\n" +
			"|------|-------------|------|\n" +
			fmt.Sprintf("| %s_ids | Ids of the created resources | map(string) |\n", strings.ReplaceAll(moduleType, "-", "_")) +
			fmt.Sprintf("| %s_arns | ARNs of the created resources | map(string) |\n", strings.ReplaceAll(moduleType, "-", "_"))
	case "## Usage Examples":
		return "### Basic Example\n\n" +
			"```hcl\n" +
			fmt.Sprintf("module %q {\n", moduleName) +
			"  source = \"git::https://github.com/somospragma/[repositorio].git?ref=v1.0.0\"\n\n" +
			"  client      = \"pragma\"\n" +
			"  project     = \"webapp\"\n" +
			"  environment = \"dev\"\n\n" +
			"  " + configKey + " = {\n" +
			"    \"primary\" = {}\n" +
			"  }\n" +
			"}\n" +
			"```\n\n" +
			"### Advanced Example\n\n" +
			"```hcl\n" +
			fmt.Sprintf("module %q {\n", moduleName) +
			"  source = \"git::https://github.com/somospragma/[repositorio].git?ref=v1.0.0\"\n\n" +
			"  client      = \"pragma\"\n" +
			"  project     = \"webapp\"\n" +
			"  environment = \"prod\"\n\n" +
			"  " + configKey + " = {\n" +
			"    \"primary\" = {\n" +
			"      encryption_enabled  = true\n" +
			"      block_public_access = true\n" +
			"      force_ssl           = true\n" +
			"    }\n" +
			"    \"secondary\" = {}\n" +
			"  }\n" +
			"}\n" +
			"```\n"
	case "## Security Considerations":
		return "- Encryption at rest enabled by default\n" +
			"- Public access blocked by default\n" +
			"- TLS-only transport enforced\n" +
			"- Least-privilege access policies\n" +
			"- Versioning and access logging enabled\n"
	case "## Contributing":
		return "This module follows the Pragma CloudOps conventions. To contribute:\n\n" +
			"1. Fork the repository\n" +
			"2. Create a feature/ branch\n" +
			"3. Use conventional commit messages\n" +
			"4. Open a pull request\n"
	default:
		return ""
	}
}

// SampleReadme renders the sample/README.md walkthrough. Headings come from
// SampleReadmeSections and every command in SampleWorkflowCommands appears in
// a step, so the output always satisfies the sample documentation rule.
func SampleReadme(moduleName string) string {
	sections := SampleReadmeSections()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", sections[0], moduleName)
	for _, heading := range sections[1:] {
		b.WriteString(heading)
		b.WriteString("\n\n")
		b.WriteString(sampleSectionBody(heading, moduleName))
		b.WriteString("\n")
	}
	b.WriteString("## Considerations\n\n")
	b.WriteString("- The example provisions real infrastructure; destroy it when you are done\n")
	b.WriteString("- Adjust the region in providers.tf to match your account\n")
	return b.String()
}

func sampleSectionBody(heading, moduleName string) string {
	switch heading {
	case "## Description":
		return fmt.Sprintf("Working example that provisions the %s module with a minimal, realistic configuration.\n", moduleName)
	case "## Structure":
		return "```\n" +
			"sample/\n" +
			"├── README.md                # This walkthrough\n" +
			"├── data.tf                  # Example data sources\n" +
			"├── main.tf                  # Module invocation\n" +
			"├── outputs.tf               # Example outputs\n" +
			"├── providers.tf             # Provider configuration\n" +
			"└── " + SampleVarsFile + "  # Example variable values\n" +
			"```\n"
	case "## Quick Start":
		return "Run the four steps below from the sample/ directory.\n"
	case "### 1. Preparation":
		return "```bash\n" +
			"cp " + SampleVarsFile + " terraform.tfvars\n" +
			"# Edit terraform.tfvars with your client, project and environment\n" +
			"terraform init\n" +
			"```\n"
	case "### 2. Deployment":
		return "```bash\n" +
			"terraform plan\n" +
			"terraform apply\n" +
			"```\n"
	case "### 3. Verification":
		return "```bash\n" +
			"terraform output\n" +
			"```\n"
	case "### 4. Cleanup":
		return "```bash\n" +
			"terraform destroy\n" +
			"```\n"
	default:
		return ""
	}
}

// Changelog renders the Keep a Changelog skeleton for a new module. Only an
// Unreleased entry is emitted so the output carries no dates and stays
// byte-identical between calls.
func Changelog() string {
	var b strings.Builder
	b.WriteString("# Changelog\n\n")
	b.WriteString("All notable changes to this module are documented in this file.\n\n")
	b.WriteString("The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/),\n")
	b.WriteString("and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).\n\n")
	b.WriteString("## [Unreleased]\n\n")
	b.WriteString("### Added\n")
	b.WriteString("- Initial module implementation\n")
	b.WriteString("- Working sample configuration\n")
	b.WriteString("- Baseline security defaults\n\n")
	b.WriteString("### Changed\n- N/A\n\n")
	b.WriteString("### Deprecated\n- N/A\n\n")
	b.WriteString("### Removed\n- N/A\n\n")
	b.WriteString("### Fixed\n- N/A\n\n")
	b.WriteString("### Security\n")
	b.WriteString("- Encryption at rest enabled by default\n")
	b.WriteString("- Public access blocked by default\n")
	b.WriteString("- TLS-only transport enforced\n")
	return b.String()
}

// TerraformDocsConfig renders the .terraform-docs.yml every module ships:
// a markdown table injected into README.md between the TF_DOCS markers,
// sorted by name.
func TerraformDocsConfig() string {
	var b strings.Builder
	b.WriteString("formatter: \"markdown table\"\n\n")
	b.WriteString("output:\n")
	b.WriteString("  file: \"README.md\"\n")
	b.WriteString("  mode: inject\n")
	b.WriteString("  template: |-\n")
	b.WriteString("    <!-- BEGIN_TF_DOCS -->\n")
	b.WriteString("    {{ .Content }}\n")
	b.WriteString("    <!-- END_TF_DOCS -->\n\n")
	b.WriteString("sort:\n")
	b.WriteString("  enabled: true\n")
	b.WriteString("  by: name\n\n")
	b.WriteString("settings:\n")
	b.WriteString("  anchor: true\n")
	b.WriteString("  color: true\n")
	b.WriteString("  default: true\n")
	b.WriteString("  description: true\n")
	b.WriteString("  escape: true\n")
	b.WriteString("  hide-empty: false\n")
	b.WriteString("  html: true\n")
	b.WriteString("  indent: 2\n")
	b.WriteString("  lockfile: true\n")
	b.WriteString("  read-comments: true\n")
	b.WriteString("  required: true\n")
	b.WriteString("  sensitive: true\n")
	b.WriteString("  type: true\n")
	return b.String()
}
