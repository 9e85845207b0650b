package template

// CanonicalReadmeSections returns the twelve README headings every module
// documents, in their required order. The first entry is the title line and
// is matched by prefix; the rest are level-two headings matched on their full
// text. The documentation evaluator and the README generator both consume
// this list so the two can never drift apart.
func CanonicalReadmeSections() []string {
	return []string{
		"# Terraform Module:",
		"## Description",
		"## Architecture Diagram",
		"## Features",
		"## Module Structure",
		"## Implementation and Configuration",
		"## Input Parameters",
		"## Configuration Structure",
		"## Output Values",
		"## Usage Examples",
		"## Security Considerations",
		"## Contributing",
	}
}

// SampleReadmeSections returns the headings sample/README.md must carry, in
// order: a title plus the four-step walkthrough from preparation to cleanup.
// As with the module README, the first entry matches by prefix. The sample
// documentation evaluator and the sample README generator share this list.
func SampleReadmeSections() []string {
	return []string{
		"# Usage Example:",
		"## Description",
		"## Structure",
		"## Quick Start",
		"### 1. Preparation",
		"### 2. Deployment",
		"### 3. Verification",
		"### 4. Cleanup",
	}
}

// SampleWorkflowCommands returns the terraform commands the sample walkthrough
// must demonstrate.
func SampleWorkflowCommands() []string {
	return []string{"terraform init", "terraform plan", "terraform apply", "terraform destroy"}
}

// SampleVarsFile is the example variables file every sample directory ships
// and its README must tell the reader to copy.
const SampleVarsFile = "terraform.tfvars.sample"

// changeTypes are the Keep a Changelog subsection names a release entry may
// carry.
var changeTypes = []string{"Added", "Changed", "Fixed", "Removed"}

// ChangeTypes returns the standard change-type subsection names.
func ChangeTypes() []string {
	out := make([]string, len(changeTypes))
	copy(out, changeTypes)
	return out
}
