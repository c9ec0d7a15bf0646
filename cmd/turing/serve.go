package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/turing/internal/cli"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the engine in server mode, exposing a JSON API over HTTP:
POST /simulate, GET /runs, GET /runs/{id}, GET /machine, GET /graph and
Prometheus metrics on GET /metrics.`,
	Annotations: map[string]string{"log-level": "info"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		metrics := observability.NewMetrics()
		hooks := observability.LogHooks(logger).Merge(metrics.Hooks())

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		engine, closer, err := cli.NewEngine(ctx, cfg, logger, hooks)
		if err != nil {
			return err
		}
		defer closer.Close()

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics.Handler()),
		)

		srv := &http.Server{
			Addr:              ":" + strconv.Itoa(cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting Turing Server", "address", srv.Addr, "store", cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("Turing Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides server.port)")
}
