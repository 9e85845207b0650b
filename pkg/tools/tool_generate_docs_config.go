package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// GenerateDocsConfigTool renders the .terraform-docs.yml configuration.
type GenerateDocsConfigTool struct {
	BaseTool
}

func (t *GenerateDocsConfigTool) Name() string { return "generate_terraform_docs_config" }

func (t *GenerateDocsConfigTool) Description() string {
	return "Generate a compliant .terraform-docs.yml with markdown table output injected into README.md"
}

func (t *GenerateDocsConfigTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GenerateDocsConfigTool) Run(ctx context.Context, _ map[string]interface{}) (*types.StandardResponse, error) {
	slog.InfoContext(ctx, "generating terraform-docs config")

	content, err := template.Generate(template.Request{TargetDocument: template.TargetTerraformDocsConfig})
	if err != nil {
		return nil, err
	}
	return types.NewStandardResponse(t.Name(), &GeneratedDocument{
		Target:   string(template.TargetTerraformDocsConfig),
		FileName: ".terraform-docs.yml",
		Content:  content,
	}), nil
}
