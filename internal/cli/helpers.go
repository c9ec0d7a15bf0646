package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// DefaultLogLevel keeps one-shot commands quiet: engine records only show up
// when something goes wrong, unless a level is asked for.
const DefaultLogLevel = "warn"

// NewLogger configures the application logger from the log section.
// An empty level falls back to fallback, or DefaultLogLevel when that is
// empty too.
// Logs go to Stderr (to keep Stdout for transcripts), and also to a JSON file
// when one is configured.
func NewLogger(cfg config.LogConfig, fallback string) (*slog.Logger, io.Closer, error) {
	name := cfg.Level
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = DefaultLogLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return logging.New(level), nopCloser{}, nil
	}
	return logging.NewWithFile(level, cfg.File)
}
