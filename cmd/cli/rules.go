package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

type RulesCmd struct {
	category string
	out      io.Writer
}

func NewRulesCmd(out io.Writer) *cobra.Command {
	rc := &RulesCmd{out: out}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.category, "category", "", "Restrict the listing to one category")

	return cmd
}

func (rc *RulesCmd) run(cmd *cobra.Command, args []string) error {
	if rc.category != "" && !types.ValidCategory(rc.category) {
		return fmt.Errorf("unknown category %q", rc.category)
	}

	count := 0
	for _, rule := range analysis.AllRules() {
		if rc.category != "" && rule.Category != rc.category {
			continue
		}
		count++
		fmt.Fprintf(rc.out, "%-3s %-14s %-8s %s\n", rule.ID, rule.Category, rule.Severity, rule.Description)
	}
	fmt.Fprintf(rc.out, "\n%d rules\n", count)
	return nil
}
