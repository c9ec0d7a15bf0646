package turing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Simulate(t *testing.T) {
	eng, err := turing.New()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Accepted", func(t *testing.T) {
		res, err := eng.Simulate(ctx, "0-0")
		require.NoError(t, err)

		assert.True(t, res.Accepted)
		assert.Equal(t, domain.VerdictAccepted, res.Verdict)
		assert.Equal(t, domain.State("H"), res.FinalState)
		assert.Equal(t, 12, res.Steps)
		assert.Equal(t, "A0-0_", res.History[0])
		assert.Equal(t, "_#-0H_", res.History[len(res.History)-1])
		assert.False(t, res.Prechecked)
		assert.NotEmpty(t, res.ID)
		assert.False(t, res.FinishedAt.Before(res.StartedAt))
	})

	t.Run("Left Smaller Is Rejected Without A Machine", func(t *testing.T) {
		res, err := eng.Simulate(ctx, "0-1")
		require.NoError(t, err)

		assert.False(t, res.Accepted)
		assert.Equal(t, domain.VerdictRejected, res.Verdict)
		assert.True(t, res.Prechecked)
		assert.Equal(t, domain.ReasonLeftSmaller, res.Reason)
		assert.Empty(t, res.History)
		assert.Zero(t, res.Steps)
	})

	t.Run("Whitespace Is Trimmed", func(t *testing.T) {
		res, err := eng.Simulate(ctx, " 1-1\n")
		require.NoError(t, err)
		assert.Equal(t, "1-1", res.Input)
		assert.True(t, res.Accepted)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, in := range []string{"", "11", "1-0-1", "2-1", "10-1", "1\x000-0\n1"} {
			_, err := eng.Simulate(ctx, in)
			assert.ErrorIs(t, err, domain.ErrMalformedInput, in)
		}
	})
}

// TestEngine_PrecheckAgreesWithMachine guards against the fast path and the
// machine disagreeing on which inputs are rejected.
func TestEngine_PrecheckAgreesWithMachine(t *testing.T) {
	eng, err := turing.New()
	require.NoError(t, err)
	ctx := context.Background()

	for _, in := range []string{"0-1", "01-10", "0111-1000", "1010-1011", "0000-0001"} {
		ops, err := validator.Precheck(in)
		require.NoError(t, err)
		require.True(t, ops.LeftSmaller(), in)

		direct, err := eng.Run(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictRejected, direct.Verdict, in)
		assert.NotEqual(t, domain.State("H"), direct.FinalState, in)
	}
}

func TestEngine_RunWithoutValidation(t *testing.T) {
	eng, err := turing.New()
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), "0-1")
	require.NoError(t, err)

	assert.False(t, res.Prechecked)
	assert.Equal(t, domain.State("M"), res.FinalState)
	assert.Equal(t, "halted in state M with no applicable transition", res.Reason)
	assert.Len(t, res.History, 8)
}

func TestEngine_Options(t *testing.T) {
	t.Run("Invalid Step Limit", func(t *testing.T) {
		_, err := turing.New(turing.WithStepLimit(0))
		assert.Error(t, err)
	})

	t.Run("Custom Table And Limit", func(t *testing.T) {
		loop, err := table.NewBuilder("bounce").
			State("A").
			Pass(domain.Right, '0', '1', '-').
			On(domain.Blank, "A", domain.Blank, domain.Left).
			Build()
		require.NoError(t, err)

		eng, err := turing.New(turing.WithTable(loop), turing.WithStepLimit(10))
		require.NoError(t, err)
		assert.Equal(t, "bounce", eng.Name)
		assert.Equal(t, 10, eng.StepLimit())

		res, err := eng.Simulate(context.Background(), "1-0")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictInconclusive, res.Verdict)
		assert.Equal(t, 11, res.Steps)
		assert.Equal(t, domain.LimitSentinel, res.History[len(res.History)-1])
	})

	t.Run("Canonical By Default", func(t *testing.T) {
		eng, err := turing.New()
		require.NoError(t, err)
		assert.Same(t, table.Canonical(), eng.Table())
		assert.Equal(t, domain.DefaultStepLimit, eng.StepLimit())
	})
}

func TestEngine_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("Without Store", func(t *testing.T) {
		eng, err := turing.New()
		require.NoError(t, err)

		assert.False(t, eng.HasStore())
		_, err = eng.Get(ctx, "x")
		assert.ErrorIs(t, err, turing.ErrNoStore)
		_, err = eng.Runs(ctx)
		assert.ErrorIs(t, err, turing.ErrNoStore)
	})

	t.Run("Persists Every Run", func(t *testing.T) {
		eng, err := turing.New(turing.WithStore(memory.NewStore()))
		require.NoError(t, err)
		assert.True(t, eng.HasStore())

		accepted, err := eng.Simulate(ctx, "1-0")
		require.NoError(t, err)
		rejected, err := eng.Simulate(ctx, "0-1")
		require.NoError(t, err)

		loaded, err := eng.Get(ctx, accepted.ID)
		require.NoError(t, err)
		assert.Equal(t, accepted.History, loaded.History)

		loaded, err = eng.Get(ctx, rejected.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Prechecked)

		ids, err := eng.Runs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{accepted.ID, rejected.ID}, ids)

		_, err = eng.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Store Failure Is Reported", func(t *testing.T) {
		eng, err := turing.New(turing.WithStore(failingStore{}))
		require.NoError(t, err)

		res, err := eng.Simulate(ctx, "1-1")
		assert.Error(t, err)
		require.NotNil(t, res, "the result is still returned")
		assert.True(t, res.Accepted)
	})
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var (
		mu      sync.Mutex
		started []string
		steps   int
		final   []*domain.RunEvent
	)
	hooks := domain.LifecycleHooks{
		OnRunStart: func(_ context.Context, e *domain.RunEvent) {
			mu.Lock()
			defer mu.Unlock()
			started = append(started, e.Input)
		},
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			mu.Lock()
			defer mu.Unlock()
			assert.NotEmpty(t, e.RunID)
			assert.Equal(t, domain.EventStep, e.Type)
			steps++
		},
		OnRunFinish: func(_ context.Context, e *domain.RunEvent) {
			mu.Lock()
			defer mu.Unlock()
			final = append(final, e)
		},
	}

	eng, err := turing.New(turing.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	res, err := eng.Simulate(context.Background(), "1010-0011")
	require.NoError(t, err)

	assert.Equal(t, []string{"1010-0011"}, started)
	assert.Equal(t, res.Steps, steps)
	require.Len(t, final, 1)
	assert.Equal(t, domain.VerdictAccepted, final[0].Verdict)
	assert.Equal(t, 66, final[0].Steps)
	assert.Equal(t, res.ID, final[0].RunID)
}

func TestEngine_Concurrent(t *testing.T) {
	eng, err := turing.New(turing.WithStore(memory.NewStore()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := eng.Simulate(context.Background(), "1000-0111")
			assert.NoError(t, err)
			assert.True(t, res.Accepted)
		}()
	}
	wg.Wait()

	ids, err := eng.Runs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 8)
}

func TestEngine_CanceledContext(t *testing.T) {
	eng, err := turing.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Simulate(ctx, "1-0")
	assert.ErrorIs(t, err, context.Canceled)
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, *domain.RunResult) error {
	return errors.New("disk full")
}

func (failingStore) Load(context.Context, string) (*domain.RunResult, error) {
	return nil, domain.ErrRunNotFound
}

func (failingStore) Delete(context.Context, string) error { return nil }

func (failingStore) List(context.Context) ([]string, error) { return nil, nil }
