package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turing",
	Run: func(cmd *cobra.Command, args []string) {
		banner, _ := cmd.Flags().GetBool("banner")
		if banner {
			tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(turing.Version))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "turing version %s\n", strings.TrimSpace(turing.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the ASCII banner")
}
