package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/analysis"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

// errNonCompliant makes the command exit non-zero without repeating the
// report that was already printed.
var errNonCompliant = fmt.Errorf("module is not compliant")

type ValidateCmd struct {
	path     string
	category string
	ruleID   string
	asJSON   bool
	out      io.Writer
}

func NewValidateCmd(out io.Writer) *cobra.Command {
	vc := &ValidateCmd{out: out}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a Terraform module against the rule catalog",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.path, "path", "", "Path to the module directory")
	cmd.Flags().StringVar(&vc.category, "category", "", "Restrict validation to one category")
	cmd.Flags().StringVar(&vc.ruleID, "rule", "", "Restrict validation to one rule id")
	cmd.Flags().BoolVar(&vc.asJSON, "json", false, "Print the full report as JSON")

	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := analysis.EvaluateModule(ctx, terraform.DirFS{}, vc.path, analysis.Selection{
		RuleID:   vc.ruleID,
		Category: vc.category,
	})
	if err != nil {
		return err
	}

	if vc.asJSON {
		enc := json.NewEncoder(vc.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		vc.printSummary(report)
	}

	if !report.OverallPassed {
		return errNonCompliant
	}
	return nil
}

func (vc *ValidateCmd) printSummary(report *types.Report) {
	fmt.Fprintf(vc.out, "Module: %s\n\n", report.ModuleRootPath)

	for _, f := range report.GeneratedFindings {
		verdict := "PASS"
		if !f.Passed {
			verdict = "FAIL"
		}
		fmt.Fprintf(vc.out, "  [%s] %-3s %s\n", verdict, f.RuleID, f.Message)
	}

	categories := make([]string, 0, len(report.CategoryTotals))
	for c := range report.CategoryTotals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fmt.Fprintln(vc.out)
	for _, c := range categories {
		totals := report.CategoryTotals[c]
		fmt.Fprintf(vc.out, "  %-14s %d passed, %d failed\n", c, totals.Passed, totals.Failed)
	}

	if report.OverallPassed {
		fmt.Fprintln(vc.out, "\nResult: COMPLIANT")
	} else {
		fmt.Fprintln(vc.out, "\nResult: NOT COMPLIANT")
	}
}
