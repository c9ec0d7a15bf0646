package graph

import (
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Trace builds the overlay of a finished run by replaying its input on t.
// Runs are deterministic, so the replay visits the same states. A run
// rejected before reaching the machine has nothing to overlay and yields nil.
func Trace(t *table.Table, res *domain.RunResult, limit int) *GraphOverlay {
	if res == nil || res.Prechecked {
		return nil
	}

	overlay := &GraphOverlay{}
	m := runtime.NewMachine(res.Input, t,
		runtime.WithStepLimit(limit),
		runtime.WithStepHook(func(e domain.StepEvent) {
			overlay.VisitedStates = append(overlay.VisitedStates, e.From)
		}),
	)
	final := m.Run()
	overlay.CurrentState = final.FinalState
	return overlay
}
