package table

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Table is an immutable transition function.
type Table struct {
	name   string
	start  domain.State
	accept domain.State
	blank  domain.Symbol
	states []domain.State
	rules  []domain.Rule
	index  map[domain.State]map[domain.Symbol]domain.Transition
}

// Lookup returns the transition for (state, symbol).
// The boolean is false when the table has no entry, which signals rejection.
func (t *Table) Lookup(state domain.State, symbol domain.Symbol) (domain.Transition, bool) {
	row, ok := t.index[state]
	if !ok {
		return domain.Transition{}, false
	}
	tr, ok := row[symbol]
	return tr, ok
}

// Name identifies the machine (used for logging and introspection).
func (t *Table) Name() string { return t.name }

// Start is the initial state.
func (t *Table) Start() domain.State { return t.start }

// Accept is the halting state.
func (t *Table) Accept() domain.State { return t.accept }

// Blank is the symbol of unwritten cells.
func (t *Table) Blank() domain.Symbol { return t.blank }

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// States returns Q in declaration order.
func (t *Table) States() []domain.State {
	return append([]domain.State(nil), t.states...)
}

// Rules returns δ in declaration order.
func (t *Table) Rules() []domain.Rule {
	return append([]domain.Rule(nil), t.rules...)
}

// RulesFrom returns the rules leaving state, in declaration order.
func (t *Table) RulesFrom(state domain.State) []domain.Rule {
	var out []domain.Rule
	for _, r := range t.rules {
		if r.From == state {
			out = append(out, r)
		}
	}
	return out
}

// TapeAlphabet returns Γ: the blank first, then for each state the symbols it
// reads followed by the symbols it writes, without duplicates.
func (t *Table) TapeAlphabet() []domain.Symbol {
	seen := map[domain.Symbol]bool{t.blank: true}
	gamma := []domain.Symbol{t.blank}
	add := func(s domain.Symbol) {
		if !seen[s] {
			seen[s] = true
			gamma = append(gamma, s)
		}
	}

	for _, st := range t.states {
		row := t.RulesFrom(st)
		for _, r := range row {
			add(r.Read)
		}
		for _, r := range row {
			add(r.Write)
		}
	}
	return gamma
}

// InputAlphabet returns Σ, which is Γ without the blank.
func (t *Table) InputAlphabet() []domain.Symbol {
	gamma := t.TapeAlphabet()
	return gamma[1:]
}
