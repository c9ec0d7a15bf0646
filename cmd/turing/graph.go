package main

import (
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the transition table. With --input
the states visited while running that input are highlighted and the state the
machine stopped in is marked as current.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if path, _ := cmd.Flags().GetString("table"); cmd.Flags().Changed("table") {
			cfg.Engine.Table = path
		}
		cfg.Store.Backend = "none"

		engine, closer, err := cli.NewEngine(cmd.Context(), cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closer.Close()

		var overlay *graph.GraphOverlay
		if input != "" {
			res, err := engine.Simulate(cmd.Context(), input)
			if err != nil {
				return err
			}
			overlay = graph.Trace(engine.Table(), res, engine.StepLimit())
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Table(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("input", "i", "", "Highlight the path taken on this input")
	graphCmd.Flags().String("table", "", "YAML transition table to draw instead of the built-in one")
}
