package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a deterministic single-tape Turing machine simulator",
	Long: `Turing runs a transition table over an input tape and reports every
configuration the machine went through. The built-in table subtracts two
equal-length binary numbers written as A-B.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-file") {
			loaded.Log.File, _ = cmd.Flags().GetString("log-file")
		}
		if cmd.Flags().Changed("store") {
			loaded.Store.Backend, _ = cmd.Flags().GetString("store")
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		// Long-running commands annotate a louder default (see serve, mcp).
		l, closer, err := cli.NewLogger(loaded.Log, cmd.Annotations["log-level"])
		if err != nil {
			return err
		}
		slog.SetDefault(l)
		cfg, logger, logCloser = loaded, l, closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default $HOME/.config/turing/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default warn; info for serve and mcp)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().String("store", "memory", "Run store backend: memory, file, redis or none")
}
