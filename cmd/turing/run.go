package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [input...]",
	Short: "Run the machine on one or more inputs",
	Long: `Runs the machine on each input and prints the verdict followed by the
instantaneous descriptions, one per step. Inputs have the form A-B where A and
B are binary numbers of the same length, e.g. 1010-0011.`,
	Example: `  turing run 1010-0011
  turing run --view window --window 5 10000000-00000001
  turing run --sample --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, _ := cmd.Flags().GetBool("sample")
		viewFlag, _ := cmd.Flags().GetString("view")
		window, _ := cmd.Flags().GetInt("window")
		raw, _ := cmd.Flags().GetBool("raw")
		jsonMode, _ := cmd.Flags().GetBool("json")
		describe, _ := cmd.Flags().GetBool("describe")

		if cmd.Flags().Changed("step-limit") {
			cfg.Engine.StepLimit, _ = cmd.Flags().GetInt("step-limit")
		}
		if cmd.Flags().Changed("table") {
			cfg.Engine.Table, _ = cmd.Flags().GetString("table")
		}
		if !cmd.Flags().Changed("view") {
			viewFlag = cfg.View.Mode
		}
		if !cmd.Flags().Changed("window") {
			window = cfg.View.Window
		}

		view, err := tui.ParseView(viewFlag)
		if err != nil {
			return err
		}

		inputs := args
		if sample {
			inputs = append(inputs, cli.Samples...)
		}
		if len(inputs) == 0 && !describe {
			return fmt.Errorf("no input given; pass A-B or use --sample")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		engine, closer, err := cli.NewEngine(ctx, cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closer.Close()

		return cli.Execute(ctx, engine, cli.RunOptions{
			Inputs:   inputs,
			View:     view,
			Window:   window,
			Raw:      raw,
			JSON:     jsonMode,
			Describe: describe,
			Rich:     tui.IsTerminal(os.Stdout),
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("sample", false, "Also run the built-in sample inputs")
	runCmd.Flags().String("view", "full", "Transcript view: full or window")
	runCmd.Flags().Int("window", tui.DefaultWindow, "Configurations kept at each end in window view")
	runCmd.Flags().Bool("raw", false, "Skip the A-B check and feed the input to the machine as is")
	runCmd.Flags().Bool("json", false, "Print one JSON result per line")
	runCmd.Flags().BoolP("describe", "d", false, "Print the machine description before the runs")
	runCmd.Flags().Int("step-limit", domain.DefaultStepLimit, "Maximum number of steps before giving up")
	runCmd.Flags().String("table", "", "YAML transition table to use instead of the built-in one")
}
