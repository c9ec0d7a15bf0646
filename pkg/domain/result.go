package domain

import (
	"strings"
	"time"
)

// StepOutcome is the result of applying a single transition.
type StepOutcome int

const (
	// StepApplied means a transition was found and applied.
	StepApplied StepOutcome = iota
	// StepStuck means no transition exists for the current state and symbol.
	// Nothing was mutated.
	StepStuck
)

func (o StepOutcome) String() string {
	if o == StepApplied {
		return "applied"
	}
	return "stuck"
}

// Verdict classifies a finished run.
type Verdict string

const (
	VerdictAccepted     Verdict = "accepted"
	VerdictRejected     Verdict = "rejected"
	VerdictInconclusive Verdict = "inconclusive"
)

// RunResult is produced once per run and is not modified afterwards.
type RunResult struct {
	ID         string    `json:"id,omitempty"`
	Input      string    `json:"input"`
	History    []string  `json:"history"`
	Accepted   bool      `json:"accepted"`
	Verdict    Verdict   `json:"verdict"`
	Reason     string    `json:"reason"`
	FinalState State     `json:"final_state"`
	Steps      int       `json:"steps"`
	Prechecked bool      `json:"prechecked,omitempty"` // rejected before any machine was built
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Transcript joins the history with the conventional " |- " separator.
func (r *RunResult) Transcript() string {
	return JoinHistory(r.History)
}

// LimitReached reports whether the run was cut by the step limit.
func (r *RunResult) LimitReached() bool {
	return r.Verdict == VerdictInconclusive
}

// Clone returns a deep copy so stores can hand out results without aliasing.
func (r *RunResult) Clone() *RunResult {
	if r == nil {
		return nil
	}
	out := *r
	out.History = append([]string(nil), r.History...)
	return &out
}

// JoinHistory concatenates configurations with HistorySeparator.
func JoinHistory(history []string) string {
	return strings.Join(history, HistorySeparator)
}
