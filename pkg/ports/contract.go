package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRunStoreContract runs a suite of tests to verify that a RunStore
// implementation adheres to the defined interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	newRun := func(id string) *domain.RunResult {
		started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		return &domain.RunResult{
			ID:         id,
			Input:      "1-1",
			History:    []string{"A1-1_", "1A-1_"},
			Accepted:   true,
			Verdict:    domain.VerdictAccepted,
			Reason:     domain.ReasonAccepted,
			FinalState: "H",
			Steps:      1,
			StartedAt:  started,
			FinishedAt: started.Add(time.Millisecond),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun(runID)

		err := store.Save(ctx, runID, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.Input, loaded.Input)
		assert.Equal(t, run.History, loaded.History)
		assert.Equal(t, run.Verdict, loaded.Verdict)
		assert.Equal(t, run.FinalState, loaded.FinalState)
		assert.Equal(t, run.Steps, loaded.Steps)
		assert.True(t, run.StartedAt.Equal(loaded.StartedAt))
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.History[0] = "mutated"

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "A1-1_", again.History[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, newRun(runID))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		assert.NoError(t, store.Delete(ctx, runID), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, newRun(id1))
		_ = store.Save(ctx, id2, newRun(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
