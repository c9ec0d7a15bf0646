package main

import (
	"fmt"
	"log"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP Server so AI agents can run the machine as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Annotations: map[string]string{"log-level": "info"},
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		engine, closer, err := cli.NewEngine(ctx, cfg, logger, observability.LogHooks(logger))
		if err != nil {
			return err
		}
		defer closer.Close()

		srv := mcp.NewServer(engine, logger)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(cmd.ErrOrStderr())
			logger.Info("Starting Turing MCP Server (Stdio)")
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
		case "sse":
			logger.Info("Starting Turing MCP Server (SSE)", "port", port)
			if err := srv.ServeSSE(ctx, port); err != nil {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
