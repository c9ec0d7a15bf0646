package cli_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		level     string
		fallback  string
		wantInfo  bool
		wantWarn  bool
		wantDebug bool
	}{
		{name: "Quiet By Default", wantWarn: true},
		{name: "Command Fallback", fallback: "info", wantInfo: true, wantWarn: true},
		{name: "Configured Wins", level: "debug", fallback: "info", wantInfo: true, wantWarn: true, wantDebug: true},
		{name: "Configured Error", level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := cli.NewLogger(config.LogConfig{Level: tt.level}, tt.fallback)
			require.NoError(t, err)
			defer closer.Close()

			assert.Equal(t, tt.wantDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.wantWarn, logger.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := cli.NewLogger(config.LogConfig{Level: "loud"}, "")
	assert.Error(t, err)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turing.log")

	logger, closer, err := cli.NewLogger(config.LogConfig{File: path}, "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
