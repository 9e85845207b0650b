package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// GenerateSampleReadmeTool renders the sample/README.md walkthrough.
type GenerateSampleReadmeTool struct {
	BaseTool
}

func (t *GenerateSampleReadmeTool) Name() string { return "generate_sample_readme" }

func (t *GenerateSampleReadmeTool) Description() string {
	return "Generate a compliant sample/README.md walkthrough covering preparation, deployment, verification and cleanup"
}

func (t *GenerateSampleReadmeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"moduleName": map[string]interface{}{
				"type":        "string",
				"description": "Name of the module the example provisions",
			},
		},
		"required": []string{"moduleName"},
	}
}

func (t *GenerateSampleReadmeTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	name, _ := args["moduleName"].(string)
	slog.InfoContext(ctx, "generating sample readme", "moduleName", name)

	content, err := template.Generate(template.Request{
		ModuleName:     name,
		TargetDocument: template.TargetSampleReadme,
	})
	if err != nil {
		return nil, err
	}
	return types.NewStandardResponse(t.Name(), &GeneratedDocument{
		Target:   string(template.TargetSampleReadme),
		FileName: "sample/README.md",
		Content:  content,
	}), nil
}
