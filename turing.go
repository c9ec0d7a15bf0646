package turing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/table"
	"github.com/google/uuid"
)

// ErrNoStore is returned by run lookups on an engine built without WithStore.
var ErrNoStore = errors.New("no run store configured")

// Engine is the high-level entry point for the turing library.
// It wraps the internal runtime and provides a simplified API for consumers.
// An Engine is safe for concurrent use: every run gets its own machine.
type Engine struct {
	table  *table.Table
	store  ports.RunStore
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	limit  int
	now    func() time.Time
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithTable replaces the canonical subtraction table.
func WithTable(t *table.Table) Option {
	return func(e *Engine) {
		e.table = t
	}
}

// WithStepLimit sets the step ceiling (default: domain.DefaultStepLimit).
func WithStepLimit(limit int) Option {
	return func(e *Engine) {
		e.limit = limit
	}
}

// WithStore persists every finished run.
func WithStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine backed by the canonical table unless
// WithTable says otherwise.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		limit: domain.DefaultStepLimit,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.limit <= 0 {
		return nil, fmt.Errorf("step limit must be positive, got %d", eng.limit)
	}
	if eng.table == nil {
		eng.table = table.Canonical()
	}
	eng.Name = eng.table.Name()

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("machine", eng.Name)

	return eng, nil
}

// Simulate checks that input has the A-B form and runs the machine on it.
//
// Malformed input is returned as an error wrapping domain.ErrMalformedInput.
// When A < B the result is a rejection produced without running the machine
// (Prechecked is set and History is empty).
func (e *Engine) Simulate(ctx context.Context, input string) (*domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ops, err := validator.Precheck(input)
	if err != nil {
		e.logger.Debug("input rejected by precheck", "err", err)
		return nil, err
	}

	if ops.LeftSmaller() {
		id, started := e.begin(ctx, ops.String())
		res := &domain.RunResult{
			ID:         id,
			Input:      ops.String(),
			History:    []string{},
			Verdict:    domain.VerdictRejected,
			Reason:     domain.ReasonLeftSmaller,
			Prechecked: true,
			StartedAt:  started,
		}
		return e.finish(ctx, res)
	}

	return e.Run(ctx, ops.String())
}

// Run feeds input to a fresh machine without any validation.
// Any string is a valid tape; symbols the table does not know simply make
// the machine stuck.
func (e *Engine) Run(ctx context.Context, input string) (*domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, started := e.begin(ctx, input)

	opts := []runtime.Option{
		runtime.WithStepLimit(e.limit),
		runtime.WithLogger(e.logger.With("run_id", id)),
	}
	if e.hooks.OnStep != nil {
		opts = append(opts, runtime.WithStepHook(func(ev domain.StepEvent) {
			ev.Timestamp = e.now()
			ev.RunID = id
			e.hooks.OnStep(ctx, &ev)
		}))
	}

	res := runtime.NewMachine(input, e.table, opts...).Run()
	res.ID = id
	res.StartedAt = started
	return e.finish(ctx, &res)
}

// Get loads a stored run.
func (e *Engine) Get(ctx context.Context, runID string) (*domain.RunResult, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.store.Load(ctx, runID)
}

// Runs lists stored run IDs, most recent first.
func (e *Engine) Runs(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.store.List(ctx)
}

// HasStore reports whether finished runs are persisted and can be fetched
// with Get.
func (e *Engine) HasStore() bool {
	return e.store != nil
}

// Table returns the transition table the engine runs.
func (e *Engine) Table() *table.Table {
	return e.table
}

// StepLimit returns the configured step ceiling.
func (e *Engine) StepLimit() int {
	return e.limit
}

func (e *Engine) begin(ctx context.Context, input string) (string, time.Time) {
	id := uuid.NewString()
	started := e.now()

	e.logger.Info("run started", "run_id", id, "input", input)
	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: started, Type: domain.EventRunStart, RunID: id},
			Input:     input,
		})
	}
	return id, started
}

func (e *Engine) finish(ctx context.Context, res *domain.RunResult) (*domain.RunResult, error) {
	res.FinishedAt = e.now()
	elapsed := res.FinishedAt.Sub(res.StartedAt)

	e.logger.Info("run finished",
		"run_id", res.ID,
		"verdict", res.Verdict,
		"steps", res.Steps,
		"final_state", res.FinalState,
		"prechecked", res.Prechecked,
		"duration", elapsed,
	)
	if e.hooks.OnRunFinish != nil {
		e.hooks.OnRunFinish(ctx, &domain.RunEvent{
			EventBase:  domain.EventBase{Timestamp: res.FinishedAt, Type: domain.EventRunFinish, RunID: res.ID},
			Input:      res.Input,
			Verdict:    res.Verdict,
			Steps:      res.Steps,
			Prechecked: res.Prechecked,
			Duration:   elapsed,
		})
	}

	if e.store != nil {
		if err := e.store.Save(ctx, res.ID, res); err != nil {
			return res, fmt.Errorf("failed to persist run %s: %w", res.ID, err)
		}
	}
	return res, nil
}
