package observability_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	eng, err := turing.New(turing.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = eng.Simulate(ctx, "1-0")
	require.NoError(t, err)
	_, err = eng.Simulate(ctx, "0-1")
	require.NoError(t, err)

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `turing_runs_total{prechecked="false",verdict="accepted"} 1`)
	assert.Contains(t, string(body), `turing_runs_total{prechecked="true",verdict="rejected"} 1`)
	// 1-0 starts with (A,1) = (A,1,R)
	assert.Contains(t, string(body), `turing_transitions_total{state="A",symbol="1"} 1`)
	assert.Contains(t, string(body), "turing_run_steps_count 2")
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	metrics := observability.NewMetrics()
	hooks := observability.LogHooks(logger).Merge(metrics.Hooks())

	eng, err := turing.New(turing.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	res, err := eng.Simulate(context.Background(), "1-1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=run_start")
	assert.Contains(t, out, "msg=run_finish")
	assert.Contains(t, out, "verdict=accepted")
	assert.Contains(t, out, `rule="(A,1) = (A,1,R)"`)
	assert.Equal(t, res.Steps, strings.Count(out, "msg=step"))
}
