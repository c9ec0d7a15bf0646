package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Transitions is the read-only view of a transition table the machine needs.
// *table.Table satisfies it.
type Transitions interface {
	Lookup(state domain.State, symbol domain.Symbol) (domain.Transition, bool)
	Start() domain.State
	Accept() domain.State
	Blank() domain.Symbol
}

// Machine is a deterministic single-tape Turing machine.
type Machine struct {
	table   Transitions
	input   string
	tape    *Tape
	head    int
	state   domain.State
	steps   int
	limit   int
	history []string

	logger *slog.Logger
	onStep func(domain.StepEvent)
}

// Option configures a Machine.
type Option func(*Machine)

// WithStepLimit sets the number of applied transitions after which a run is
// declared inconclusive. Non-positive values keep the default.
func WithStepLimit(limit int) Option {
	return func(m *Machine) {
		if limit > 0 {
			m.limit = limit
		}
	}
}

// WithLogger sets a structured logger. Steps are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStepHook registers a callback invoked after every applied transition.
func WithStepHook(fn func(domain.StepEvent)) Option {
	return func(m *Machine) {
		m.onStep = fn
	}
}

// NewMachine prepares the tape from input and records the initial configuration.
// A blank is appended unless the input already ends with one.
func NewMachine(input string, table Transitions, opts ...Option) *Machine {
	symbols := domain.SymbolsOf(input)
	if len(symbols) == 0 || symbols[len(symbols)-1] != table.Blank() {
		symbols = append(symbols, table.Blank())
	}

	m := &Machine{
		table:  table,
		input:  input,
		tape:   NewTape(table.Blank(), symbols),
		state:  table.Start(),
		limit:  domain.DefaultStepLimit,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.record()
	return m
}

// Symbol returns the symbol under the head, or blank when the head is outside
// the materialized tape. It never mutates anything.
func (m *Machine) Symbol() domain.Symbol {
	return m.tape.At(m.head)
}

// Write stores sym under the head, growing the tape as needed.
// After a write the head always points inside the tape.
func (m *Machine) Write(sym domain.Symbol) {
	m.head = m.tape.Set(m.head, sym)
}

// Move shifts the head. The tape is untouched; a head outside the window is
// resolved on the next read or write.
func (m *Machine) Move(dir domain.Direction) {
	m.head += dir.Offset()
}

// Step applies one transition.
// It returns StepStuck, without mutating anything, when the table has no entry
// for the current state and symbol.
func (m *Machine) Step() domain.StepOutcome {
	read := m.Symbol()
	tr, ok := m.table.Lookup(m.state, read)
	if !ok {
		m.logger.Debug("no transition", "step", m.steps, "state", m.state, "symbol", read.String())
		return domain.StepStuck
	}

	from, head := m.state, m.head
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("step",
			"step", m.steps,
			"state", from,
			"head", head,
			"symbol", read.String(),
			"next", tr.Next,
			"write", tr.Write.String(),
			"move", tr.Move,
			"tape", m.tapeView(10),
		)
	}

	m.Write(tr.Write)
	m.state = tr.Next
	m.Move(tr.Move)
	m.record()
	m.steps++

	if m.onStep != nil {
		m.onStep(domain.StepEvent{
			EventBase: domain.EventBase{Type: domain.EventStep},
			Step:      m.steps,
			From:      from,
			Read:      read,
			Head:      head,
			Rule:      tr,
		})
	}
	return domain.StepApplied
}

// Run steps until the machine accepts, gets stuck, or exceeds the step limit.
//
// Run does not reset the machine: calling it again continues from where the
// previous call stopped and keeps counting steps.
func (m *Machine) Run() domain.RunResult {
	accept := m.table.Accept()
	if m.state == accept {
		return m.result(domain.VerdictAccepted, domain.ReasonAccepted)
	}

	for {
		if m.Step() == domain.StepStuck {
			return m.result(domain.VerdictRejected,
				fmt.Sprintf("halted in state %s with no applicable transition", m.state))
		}

		// The configuration recorded by this step is the last history entry.
		if m.state == accept {
			return m.result(domain.VerdictAccepted, domain.ReasonAccepted)
		}

		if m.steps > m.limit {
			m.logger.Warn("step limit exceeded", "limit", m.limit, "state", m.state)
			m.history = append(m.history, domain.LimitSentinel)
			return m.result(domain.VerdictInconclusive, domain.ReasonLimit)
		}
	}
}

// Configuration renders the current instantaneous description: the tape with
// the state label spliced in at the head.
func (m *Machine) Configuration() string {
	cells := m.tape.Symbols()
	head := m.head

	if head < 0 {
		padded := make([]domain.Symbol, -head, -head+len(cells))
		for i := range padded {
			padded[i] = m.table.Blank()
		}
		cells = append(padded, cells...)
		head = 0
	}
	for head > len(cells) {
		cells = append(cells, m.table.Blank())
	}

	var sb strings.Builder
	sb.WriteString(domain.Join(cells[:head]))
	sb.WriteString(string(m.state))
	sb.WriteString(domain.Join(cells[head:]))
	return sb.String()
}

// Input returns the string the machine was built from.
func (m *Machine) Input() string { return m.input }

// State returns the current control state.
func (m *Machine) State() domain.State { return m.state }

// Head returns the head index. It can be negative or past the tape end.
func (m *Machine) Head() int { return m.head }

// Steps returns the number of applied transitions.
func (m *Machine) Steps() int { return m.steps }

// Tape returns a copy of the materialized tape.
func (m *Machine) Tape() []domain.Symbol { return m.tape.Symbols() }

// History returns a copy of the recorded configurations.
func (m *Machine) History() []string {
	return append([]string(nil), m.history...)
}

func (m *Machine) record() {
	m.history = append(m.history, m.Configuration())
}

func (m *Machine) result(verdict domain.Verdict, reason string) domain.RunResult {
	return domain.RunResult{
		Input:      m.input,
		History:    m.History(),
		Accepted:   verdict == domain.VerdictAccepted,
		Verdict:    verdict,
		Reason:     reason,
		FinalState: m.state,
		Steps:      m.steps,
	}
}

// tapeView renders the cells within radius of the head, for debug logs.
func (m *Machine) tapeView(radius int) string {
	lo := max(0, m.head-radius)
	hi := min(m.tape.Len(), m.head+radius)
	if lo >= hi {
		return ""
	}
	return domain.Join(m.tape.Symbols()[lo:hi])
}
