package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/septuple"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Describe the transition table",
	Long: `Prints the machine as a septuple M={Q,Σ,Γ,δ,q0,F,B} followed by its rule
listing. With --yaml the table is dumped in the format accepted by --table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("table")
		dumpYAML, _ := cmd.Flags().GetBool("yaml")
		markdown, _ := cmd.Flags().GetBool("markdown")
		if !cmd.Flags().Changed("table") {
			path = cfg.Engine.Table
		}

		t := table.Canonical()
		if path != "" {
			loaded, err := cli.LoadTable(path)
			if err != nil {
				return err
			}
			t = loaded
		}

		out := cmd.OutOrStdout()
		switch {
		case dumpYAML:
			if path == "" {
				_, err := out.Write(table.CanonicalYAML())
				return err
			}
			data, err := yaml.Marshal(t.Definition())
			if err != nil {
				return fmt.Errorf("failed to encode table: %w", err)
			}
			_, err = out.Write(data)
			return err
		case markdown && tui.IsTerminal(os.Stdout):
			rendered, err := tui.NewRenderer()(septuple.Markdown(t))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		case markdown:
			fmt.Fprint(out, septuple.Markdown(t))
		default:
			fmt.Fprintln(out, septuple.Describe(t))
			fmt.Fprint(out, septuple.Listing(t))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().String("table", "", "YAML transition table to describe instead of the built-in one")
	tableCmd.Flags().Bool("yaml", false, "Dump the table as YAML")
	tableCmd.Flags().Bool("markdown", false, "Render the rule listing as a Markdown table")
}
