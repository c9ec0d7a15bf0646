package runtime

import "github.com/aretw0/turing/pkg/domain"

// Tape is a sequence of symbols that grows in both directions.
//
// Cells are addressed by window index: 0 is the leftmost materialized cell.
// Storage is split at a fixed origin so growing to the left is an append, not a
// shift: left[i] holds the cell at absolute position -(i+1) and right[i] the
// cell at absolute position i.
type Tape struct {
	blank domain.Symbol
	left  []domain.Symbol
	right []domain.Symbol
}

// NewTape materializes the given symbols starting at the origin.
func NewTape(blank domain.Symbol, symbols []domain.Symbol) *Tape {
	return &Tape{
		blank: blank,
		right: append([]domain.Symbol(nil), symbols...),
	}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

// At returns the symbol at window index i, or blank outside the window.
// It never mutates the tape.
func (t *Tape) At(i int) domain.Symbol {
	if i < 0 || i >= t.Len() {
		return t.blank
	}
	return t.cell(i)
}

// Set writes s at window index i, materializing blanks up to and including i
// first. It returns the window index of the written cell, which is 0 whenever
// the tape had to grow to the left.
func (t *Tape) Set(i int, s domain.Symbol) int {
	if i < 0 {
		for n := -i; n > 0; n-- {
			t.left = append(t.left, t.blank)
		}
		i = 0
	}
	for i >= t.Len() {
		t.right = append(t.right, t.blank)
	}

	abs := i - len(t.left)
	if abs < 0 {
		t.left[-abs-1] = s
	} else {
		t.right[abs] = s
	}
	return i
}

// Symbols returns a copy of the materialized window, left to right.
func (t *Tape) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, 0, t.Len())
	for i := len(t.left) - 1; i >= 0; i-- {
		out = append(out, t.left[i])
	}
	return append(out, t.right...)
}

// String renders the window without separators.
func (t *Tape) String() string {
	return domain.Join(t.Symbols())
}

func (t *Tape) cell(i int) domain.Symbol {
	abs := i - len(t.left)
	if abs < 0 {
		return t.left[-abs-1]
	}
	return t.right[abs]
}
