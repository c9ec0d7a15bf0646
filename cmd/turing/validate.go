package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/table"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [table.yaml]",
	Short: "Check a transition table for consistency",
	Long: `Walks the state graph from the start state and reports unreachable states,
an unreachable accepting state and states with no outgoing rules.
Without an argument the built-in table is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.Canonical()
		if len(args) > 0 {
			loaded, err := cli.LoadTable(args[0])
			if err != nil {
				return err
			}
			t = loaded
		}

		out := cmd.OutOrStdout()
		report := validator.InspectTable(t)
		fmt.Fprintf(out, "%s: %d states, %d rules\n", t.Name(), report.States, report.Rules)
		for _, s := range report.DeadEnds {
			fmt.Fprintf(out, "warning: state %s has no outgoing rules\n", s)
		}

		if err := validator.ValidateTable(t); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(out, "Table is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
