package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// RunStore defines the interface for persisting finished simulations.
// Runs are immutable once saved; saving the same ID again replaces it.
type RunStore interface {
	// Save persists the run under the given ID.
	Save(ctx context.Context, runID string, run *domain.RunResult) error

	// Load retrieves a run.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.RunResult, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of stored runs, most recent first when the
	// backend keeps an order.
	List(ctx context.Context) ([]string, error)
}
