package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LogHooks logs run boundaries at info level and every step at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_start", "run_id", e.RunID, "input", e.Input)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"run_id", e.RunID,
				"step", e.Step,
				"rule", domain.Rule{From: e.From, Read: e.Read, Transition: e.Rule}.String(),
			)
		},
		OnRunFinish: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_finish",
				"run_id", e.RunID,
				"verdict", e.Verdict,
				"steps", e.Steps,
				"prechecked", e.Prechecked,
				"duration", e.Duration,
			)
		},
	}
}
