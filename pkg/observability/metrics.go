package observability

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the engine.
// Each Metrics owns its registry, so tests and multiple engines do not clash
// on the global one.
type Metrics struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	transitions *prometheus.CounterVec
	steps       prometheus.Histogram
	duration    prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of finished runs",
			},
			[]string{"verdict", "prechecked"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_transitions_total",
				Help: "Total number of applied transitions",
			},
			[]string{"state", "symbol"},
		),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_steps",
			Help:    "Number of steps per run",
			Buckets: prometheus.ExponentialBuckets(8, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_duration_seconds",
			Help:    "Duration of runs",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.runs, m.transitions, m.steps, m.duration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.transitions.WithLabelValues(string(e.From), e.Read.String()).Inc()
		},
		OnRunFinish: func(_ context.Context, e *domain.RunEvent) {
			m.runs.WithLabelValues(string(e.Verdict), strconv.FormatBool(e.Prechecked)).Inc()
			m.steps.Observe(float64(e.Steps))
			m.duration.Observe(e.Duration.Seconds())
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
