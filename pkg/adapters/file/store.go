package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// DefaultDir is used when no directory is configured.
var DefaultDir = filepath.Join(".turing", "runs")

// Store implements ports.RunStore using the local filesystem.
// It stores each run as an indented JSON file named <id>.json.
type Store struct {
	BasePath string
}

// NewStore creates a new Store rooted at basePath.
// If basePath is empty, it defaults to DefaultDir.
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultDir
	}
	return &Store{BasePath: basePath}
}

func (f *Store) path(runID string) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("runID cannot be empty")
	}
	if strings.ContainsAny(runID, `/\`) || runID == "." || runID == ".." {
		return "", fmt.Errorf("invalid runID %q", runID)
	}
	return filepath.Join(f.BasePath, runID+".json"), nil
}

// Save persists the run to a JSON file.
func (f *Store) Save(ctx context.Context, runID string, run *domain.RunResult) error {
	filePath, err := f.path(runID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure run directory: %w", err)
	}

	copied := run.Clone()
	copied.ID = runID
	data, err := json.MarshalIndent(copied, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	// Write then rename so readers never see a partial file.
	tmp, err := os.CreateTemp(f.BasePath, runID+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create run file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write run file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write run file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write run file: %w", err)
	}
	return nil
}

// Load reads the run back from its JSON file.
func (f *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	filePath, err := f.path(runID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var run domain.RunResult
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

// Delete removes the run file. Missing runs are not an error.
func (f *Store) Delete(ctx context.Context, runID string) error {
	filePath, err := f.path(runID)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete run file: %w", err)
	}
	return nil
}

// List returns stored run IDs, most recently started first.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	var runs []*domain.RunResult
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		run, err := f.Load(ctx, strings.TrimSuffix(name, ".json"))
		if err != nil {
			return nil, err
		}
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
