package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.RunResult
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.RunResult),
	}
}

// Save persists a copy of the run in memory.
func (s *Store) Save(ctx context.Context, runID string, run *domain.RunResult) error {
	copied := run.Clone()
	copied.ID = runID

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[runID] = copied
	return nil
}

// Load retrieves a copy of the run, so callers cannot mutate the stored one.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run.Clone(), nil
}

// Delete removes the run.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns stored run IDs, most recently started first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*domain.RunResult, 0, len(s.data))
	for _, run := range s.data {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	ids := make([]string, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
	}
	return ids, nil
}
