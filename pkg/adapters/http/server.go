package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/septuple"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds request bodies; inputs are further capped by the sanitizer.
const maxBodySize = 1 << 20

// Engine defines what the HTTP adapter needs from the turing engine.
type Engine interface {
	Simulate(ctx context.Context, input string) (*domain.RunResult, error)
	Run(ctx context.Context, input string) (*domain.RunResult, error)
	Get(ctx context.Context, runID string) (*domain.RunResult, error)
	Runs(ctx context.Context) ([]string, error)
	Table() *table.Table
	StepLimit() int
}

// Server serves simulations over HTTP.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	Metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Input string `json:"input"`
	// Raw skips the A-B precheck and feeds the input to the machine as is.
	Raw bool `json:"raw,omitempty"`
}

// MachineResponse describes the loaded table.
type MachineResponse struct {
	table.Definition
	Septuple  string `json:"septuple"`
	StepLimit int    `json:"step_limit"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/machine", server.GetMachine)
	r.Get("/graph", server.GetGraph)
	r.Post("/simulate", server.Simulate)
	r.Get("/runs", server.ListRuns)
	r.Get("/runs/{id}", server.GetRun)
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Simulate handles POST /simulate.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(&body); err != nil {
		s.Logger.Warn("Simulate: Invalid request body", "err", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.run(r.Context(), body)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			s.Logger.Warn("Simulate: Input rejected", "err", err, "size", len(body.Input))
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.Logger.Error("Simulate failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, res)
}

// run dispatches to Simulate, or to Run for raw requests. Raw input still
// goes through the sanitizer so its size stays bounded.
func (s *Server) run(ctx context.Context, body SimulateRequest) (*domain.RunResult, error) {
	if !body.Raw {
		return s.Engine.Simulate(ctx, body.Input)
	}
	clean, err := validator.Sanitize(body.Input)
	if err != nil {
		return nil, err
	}
	return s.Engine.Run(ctx, clean)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, err := s.Engine.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Runs(r.Context())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": ids})
}

// GetMachine handles GET /machine.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	t := s.Engine.Table()
	s.writeJSON(w, http.StatusOK, MachineResponse{
		Definition: t.Definition(),
		Septuple:   septuple.Describe(t),
		StepLimit:  s.Engine.StepLimit(),
	})
}

// GetGraph handles GET /graph. The optional "run" query parameter overlays
// the states a stored run went through.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if id := r.URL.Query().Get("run"); id != "" {
		res, err := s.Engine.Get(r.Context(), id)
		if err != nil {
			s.writeStoreError(w, err)
			return
		}
		overlay = graph.Trace(s.Engine.Table(), res, s.Engine.StepLimit())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(s.Engine.Table(), overlay))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":    "turing",
		"version": strings.TrimSpace(turing.Version),
		"machine": s.Engine.Table().Name(),
	})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, turing.ErrNoStore):
		s.writeError(w, http.StatusNotImplemented, err.Error())
	default:
		s.Logger.Error("Run store failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
