/*
Package observability provides tools for monitoring the turing engine.

Both helpers produce domain.LifecycleHooks, so they plug into the engine with
turing.WithLifecycleHooks and can be combined with LifecycleHooks.Merge:

  - Metrics records Prometheus counters and histograms per run and per step.
  - LogHooks writes one structured log line per run event.
*/
package observability
