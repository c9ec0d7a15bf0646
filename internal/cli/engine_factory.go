package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/table"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewEngine initializes an engine from configuration. The returned closer
// releases the run store.
func NewEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*turing.Engine, io.Closer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	engineOpts := []turing.Option{
		turing.WithLogger(logger),
		turing.WithLifecycleHooks(hooks),
		turing.WithStepLimit(cfg.Engine.StepLimit),
	}

	if cfg.Engine.Table != "" {
		t, err := LoadTable(cfg.Engine.Table)
		if err != nil {
			return nil, nil, err
		}
		if err := validator.ValidateTable(t); err != nil {
			logger.Warn("Table has structural issues", "table", cfg.Engine.Table, "err", err)
		}
		engineOpts = append(engineOpts, turing.WithTable(t))
	}

	store, closer, err := NewStore(ctx, cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	if store != nil {
		engineOpts = append(engineOpts, turing.WithStore(store))
	}

	engine, err := turing.New(engineOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, closer, nil
}

// LoadTable reads a YAML (or JSON) table definition from disk.
func LoadTable(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	t, err := table.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", path, err)
	}
	return t, nil
}

// NewStore builds the configured run store. The "none" backend yields a nil
// store and runs are not kept.
func NewStore(ctx context.Context, cfg config.StoreConfig) (ports.RunStore, io.Closer, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.NewStore(), nopCloser{}, nil
	case "file":
		return file.NewStore(cfg.Dir), nopCloser{}, nil
	case "none":
		return nil, nopCloser{}, nil
	case "redis":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, store, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
