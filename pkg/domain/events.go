package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventStep      EventType = "step"
	EventRunFinish EventType = "run_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// StepEvent describes one applied transition.
type StepEvent struct {
	EventBase
	Step int        `json:"step"`
	From State      `json:"from"`
	Read Symbol     `json:"read"`
	Head int        `json:"head"` // head before the transition
	Rule Transition `json:"rule"`
}

// RunEvent marks the beginning or the end of a run.
type RunEvent struct {
	EventBase
	Input      string        `json:"input"`
	Verdict    Verdict       `json:"verdict,omitempty"`
	Steps      int           `json:"steps,omitempty"`
	Prechecked bool          `json:"prechecked,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRunStart  func(context.Context, *RunEvent)
	OnStep      func(context.Context, *StepEvent)
	OnRunFinish func(context.Context, *RunEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart:  chainRun(h.OnRunStart, other.OnRunStart),
		OnStep:      chainStep(h.OnStep, other.OnStep),
		OnRunFinish: chainRun(h.OnRunFinish, other.OnRunFinish),
	}
}

func chainRun(a, b func(context.Context, *RunEvent)) func(context.Context, *RunEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *RunEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainStep(a, b func(context.Context, *StepEvent)) func(context.Context, *StepEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *StepEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
