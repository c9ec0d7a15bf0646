package table

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Builder manages the table construction.
type Builder struct {
	name   string
	start  domain.State
	accept domain.State
	blank  domain.Symbol
	states []domain.State
	known  map[domain.State]*StateBuilder
	rules  []domain.Rule
}

// NewBuilder creates a builder with the conventional defaults:
// start A, accept H, blank '_'.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		start:  domain.StartState,
		accept: domain.AcceptState,
		blank:  domain.Blank,
		known:  make(map[domain.State]*StateBuilder),
	}
}

// Start overrides the initial state.
func (b *Builder) Start(s domain.State) *Builder {
	b.start = s
	return b
}

// Accept overrides the halting state.
func (b *Builder) Accept(s domain.State) *Builder {
	b.accept = s
	return b
}

// Blank overrides the blank symbol.
func (b *Builder) Blank(s domain.Symbol) *Builder {
	b.blank = s
	return b
}

// State declares a state (in order) and returns its builder.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id domain.State) *StateBuilder {
	if sb, ok := b.known[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.known[id] = sb
	b.states = append(b.states, id)
	return sb
}

// Build validates the definition and freezes it into a Table.
func (b *Builder) Build() (*Table, error) {
	if b.start == "" || b.accept == "" {
		return nil, fmt.Errorf("%w: start and accept states are required", domain.ErrInvalidTable)
	}

	// Declare states that only appear as endpoints, so Q is complete.
	b.State(b.start)
	b.State(b.accept)
	for _, r := range b.rules {
		b.State(r.Next)
	}

	index := make(map[domain.State]map[domain.Symbol]domain.Transition, len(b.states))
	for _, r := range b.rules {
		if r.From == b.accept {
			return nil, fmt.Errorf("%w: accepting state %s has an outgoing rule %s", domain.ErrInvalidTable, b.accept, r)
		}
		switch r.Move {
		case domain.Left, domain.Right, domain.Stay:
		default:
			return nil, fmt.Errorf("%w: rule %s has an invalid direction", domain.ErrInvalidTable, r)
		}

		row, ok := index[r.From]
		if !ok {
			row = make(map[domain.Symbol]domain.Transition)
			index[r.From] = row
		}
		if _, dup := row[r.Read]; dup {
			return nil, fmt.Errorf("%w: duplicate rule for (%s,%s)", domain.ErrInvalidTable, r.From, r.Read)
		}
		row[r.Read] = r.Transition
	}

	return &Table{
		name:   b.name,
		start:  b.start,
		accept: b.accept,
		blank:  b.blank,
		states: append([]domain.State(nil), b.states...),
		rules:  append([]domain.Rule(nil), b.rules...),
		index:  index,
	}, nil
}

// StateBuilder provides a fluent API for the rules leaving one state.
type StateBuilder struct {
	id      domain.State
	builder *Builder
}

// On adds δ(state, read) = (next, write, move).
func (s *StateBuilder) On(read domain.Symbol, next domain.State, write domain.Symbol, move domain.Direction) *StateBuilder {
	s.builder.rules = append(s.builder.rules, domain.Rule{
		From:       s.id,
		Read:       read,
		Transition: domain.Transition{Next: next, Write: write, Move: move},
	})
	return s
}

// Pass adds a rule that keeps the symbol and the state and moves the head.
func (s *StateBuilder) Pass(move domain.Direction, reads ...domain.Symbol) *StateBuilder {
	for _, r := range reads {
		s.On(r, s.id, r, move)
	}
	return s
}

// State switches to another state of the same builder.
func (s *StateBuilder) State(id domain.State) *StateBuilder {
	return s.builder.State(id)
}

// Build finishes the table.
func (s *StateBuilder) Build() (*Table, error) {
	return s.builder.Build()
}
