package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "iacrules",
		Short:         "Compliance engine for Terraform reference modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewValidateCmd(os.Stdout))
	rootCmd.AddCommand(NewGenerateCmd(os.Stdout))
	rootCmd.AddCommand(NewRulesCmd(os.Stdout))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
