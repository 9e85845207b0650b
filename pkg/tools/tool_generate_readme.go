package tools

import (
	"context"
	"log/slog"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// GenerateReadmeTool renders the README skeleton with the twelve canonical
// sections.
type GenerateReadmeTool struct {
	BaseTool
}

func (t *GenerateReadmeTool) Name() string { return "generate_readme" }

func (t *GenerateReadmeTool) Description() string {
	return "Generate a compliant README.md skeleton with the 12 canonical sections for a module"
}

func (t *GenerateReadmeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"moduleName": map[string]interface{}{
				"type":        "string",
				"description": "Name of the module, used in the title and structure listing",
			},
			"moduleType": map[string]interface{}{
				"type":        "string",
				"description": "Resource type the module manages, e.g. s3-bucket or rds",
			},
		},
		"required": []string{"moduleName", "moduleType"},
	}
}

func (t *GenerateReadmeTool) Run(ctx context.Context, args map[string]interface{}) (*types.StandardResponse, error) {
	name, _ := args["moduleName"].(string)
	moduleType, _ := args["moduleType"].(string)
	slog.InfoContext(ctx, "generating readme", "moduleName", name, "moduleType", moduleType)

	content, err := template.Generate(template.Request{
		ModuleName:     name,
		ModuleType:     moduleType,
		TargetDocument: template.TargetReadme,
	})
	if err != nil {
		return nil, err
	}
	return types.NewStandardResponse(t.Name(), &GeneratedDocument{
		Target:   string(template.TargetReadme),
		FileName: "README.md",
		Content:  content,
	}), nil
}
