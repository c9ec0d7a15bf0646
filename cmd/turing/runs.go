package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// runsCmd inspects stored runs. Only useful with the file or redis
// backends; the memory store does not outlive the process.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored run IDs, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closer, err := cli.NewEngine(cmd.Context(), cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closer.Close()

		ids, err := engine.Runs(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")

		engine, closer, err := cli.NewEngine(cmd.Context(), cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closer.Close()

		res, err := engine.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonMode {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		view, err := tui.ParseView(cfg.View.Mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Input: %s\n", res.Input)
		fmt.Fprintf(out, "Verdict: %s (%s)\n", res.Verdict, res.Reason)
		fmt.Fprint(out, tui.Steps(res.History, view, cfg.View.Window))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)

	runsShowCmd.Flags().Bool("json", false, "Print the run as JSON")
}
