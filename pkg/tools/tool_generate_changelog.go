package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// GenerateChangelogTool renders the Keep a Changelog skeleton.
type GenerateChangelogTool struct {
	BaseTool
}

func (t *GenerateChangelogTool) Name() string { return "generate_changelog" }

func (t *GenerateChangelogTool) Description() string {
	return "Generate a compliant CHANGELOG.md skeleton with an Unreleased section"
}

func (t *GenerateChangelogTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GenerateChangelogTool) Run(ctx context.Context, _ map[string]interface{}) (*types.StandardResponse, error) {
	slog.InfoContext(ctx, "generating changelog")

	content, err := template.Generate(template.Request{TargetDocument: template.TargetChangelog})
	if err != nil {
		return nil, err
	}
	return types.NewStandardResponse(t.Name(), &GeneratedDocument{
		Target:   string(template.TargetChangelog),
		FileName: "CHANGELOG.md",
		Content:  content,
	}), nil
}
