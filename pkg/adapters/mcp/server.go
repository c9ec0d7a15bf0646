package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/septuple"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Simulate(ctx context.Context, input string) (*domain.RunResult, error)
	Run(ctx context.Context, input string) (*domain.RunResult, error)
	Get(ctx context.Context, runID string) (*domain.RunResult, error)
	Table() *table.Table
	StepLimit() int
}

// Server wraps the turing Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for in-process transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: simulate
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Run the Turing machine on an input A-B (two equal-length binary numbers). Returns the verdict and every configuration."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input tape, e.g. 1010-0011")),
		mcp.WithBoolean("raw", mcp.Description("Skip the A-B validation and run the machine on any string")),
		mcp.WithOutputSchema[domain.RunResult](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	// TOOL: get_run
	getRunTool := mcp.NewTool("get_run",
		mcp.WithDescription("Fetch a stored run by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Run ID returned by simulate")),
		mcp.WithOutputSchema[domain.RunResult](),
	)
	s.mcpServer.AddTool(getRunTool, mcp.NewStructuredToolHandler(s.handleGetRun))

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine",
		mcp.WithDescription("Describe the machine as a septuple M={Q,Σ,Γ,δ,q0,F,B} followed by its rule listing."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t := s.engine.Table()
		return mcp.NewToolResultText(septuple.Describe(t) + "\n" + septuple.Listing(t)), nil
	})

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the state diagram as Mermaid. Pass a run ID to highlight the states it visited."),
		mcp.WithString("run_id", mcp.Description("Stored run to overlay (optional)")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var overlay *graph.GraphOverlay
		if id := request.GetString("run_id", ""); id != "" {
			res, err := s.engine.Get(ctx, id)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("run lookup failed: %v", err)), nil
			}
			overlay = graph.Trace(s.engine.Table(), res, s.engine.StepLimit())
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(s.engine.Table(), overlay)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.RunResult, error) {
	input, _ := args["input"].(string)
	raw, _ := args["raw"].(bool)

	var res *domain.RunResult
	var err error
	if raw {
		var clean string
		if clean, err = validator.Sanitize(input); err == nil {
			res, err = s.engine.Run(ctx, clean)
		}
	} else {
		res, err = s.engine.Simulate(ctx, input)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			s.logger.Warn("MCP Simulate: Input rejected", "err", err, "size", len(input))
			return domain.RunResult{}, fmt.Errorf("input rejected: %w", err)
		}
		return domain.RunResult{}, fmt.Errorf("simulate failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleGetRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.RunResult, error) {
	id, _ := args["id"].(string)
	res, err := s.engine.Get(ctx, id)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("get run failed: %w", err)
	}
	return *res, nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://machine
	s.mcpServer.AddResource(mcp.NewResource("turing://machine", "Transition Table",
		mcp.WithMIMEType("application/yaml"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := yaml.Marshal(s.engine.Table().Definition())
		if err != nil {
			return nil, fmt.Errorf("failed to encode table: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "turing://machine",
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	})

	// EXPOSE: turing://machine.json
	s.mcpServer.AddResource(mcp.NewResource("turing://machine.json", "Transition Table (JSON)",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.engine.Table().Definition())

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "turing://machine.json",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
