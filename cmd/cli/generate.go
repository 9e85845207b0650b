package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/template"
)

var generateTargets = map[string]template.TargetDocument{
	"readme":         template.TargetReadme,
	"sample-readme":  template.TargetSampleReadme,
	"changelog":      template.TargetChangelog,
	"terraform-docs": template.TargetTerraformDocsConfig,
}

type GenerateCmd struct {
	moduleName string
	moduleType string
	out        io.Writer
}

func NewGenerateCmd(out io.Writer) *cobra.Command {
	gc := &GenerateCmd{out: out}
	cmd := &cobra.Command{
		Use:       "generate <readme|sample-readme|changelog|terraform-docs>",
		Short:     "Generate compliant module boilerplate",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"readme", "sample-readme", "changelog", "terraform-docs"},
		RunE:      gc.run,
	}

	cmd.Flags().StringVar(&gc.moduleName, "name", "", "Module name used in the README title")
	cmd.Flags().StringVar(&gc.moduleType, "type", "", "Resource type the module manages, e.g. s3-bucket")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	target, ok := generateTargets[args[0]]
	if !ok {
		return fmt.Errorf("unknown artifact %q, expected readme, sample-readme, changelog or terraform-docs", args[0])
	}
	if target == template.TargetReadme && (gc.moduleName == "" || gc.moduleType == "") {
		return fmt.Errorf("readme generation requires --name and --type")
	}
	if target == template.TargetSampleReadme && gc.moduleName == "" {
		return fmt.Errorf("sample-readme generation requires --name")
	}

	content, err := template.Generate(template.Request{
		ModuleName:     gc.moduleName,
		ModuleType:     gc.moduleType,
		TargetDocument: target,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(gc.out, content)
	return err
}
