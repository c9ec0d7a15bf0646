package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces run keys.
const DefaultPrefix = "turing:run:"

// Store implements ports.RunStore using Redis.
//
// Each run is a JSON string under prefix+ID. A sorted set under the prefix
// with "-index" appended (trailing ':' dropped) keeps the IDs ordered by save
// time so List can return recent runs first. No run ID maps onto that key.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for runs. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for runs.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Ping checks connectivity, so callers can fail fast at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (s *Store) key(runID string) string {
	return s.prefix + runID
}

func (s *Store) indexKey() string {
	return strings.TrimSuffix(s.prefix, ":") + "-index"
}

// reserved reports whether runID would address the index instead of a run.
func (s *Store) reserved(runID string) bool {
	return s.key(runID) == s.indexKey()
}

// Save persists the run to Redis.
func (s *Store) Save(ctx context.Context, runID string, run *domain.RunResult) error {
	if s.reserved(runID) {
		return fmt.Errorf("invalid runID %q", runID)
	}

	stored := run.Clone()
	stored.ID = runID

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(runID), data, s.ttl)

	// Score is the expiry instant. With a fixed TTL that is also save order.
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(time.Now().Add(s.ttl).UnixNano()),
		Member: runID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the run from Redis.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	if s.reserved(runID) {
		return nil, domain.ErrRunNotFound
	}

	val, err := s.client.Get(ctx, s.key(runID)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var run domain.RunResult
	if err := json.Unmarshal([]byte(val), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

// Delete removes the run and its index entry.
func (s *Store) Delete(ctx context.Context, runID string) error {
	if s.reserved(runID) {
		return nil
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(runID))
	pipe.ZRem(ctx, s.indexKey(), runID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// List returns stored run IDs, most recent first.
// Expired entries are pruned from the index lazily.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.ttl > 0 {
		now := fmt.Sprintf("%d", time.Now().UnixNano())
		if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", now).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune expired runs: %w", err)
		}
	}

	runs, err := s.client.ZRevRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
