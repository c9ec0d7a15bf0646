package domain

import (
	"fmt"
	"unicode/utf8"
)

// Symbol is the content of a single tape cell.
type Symbol rune

// Blank occupies every cell that was never written.
const Blank Symbol = '_'

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(rune(s))
}

// IsBlank reports whether s is the blank symbol.
func (s Symbol) IsBlank() bool {
	return s == Blank
}

// MarshalText encodes the symbol as its character, so JSON and YAML carry "0"
// instead of the rune's code point. It also makes Symbol usable as a map key.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a one-character string.
func (s *Symbol) UnmarshalText(text []byte) error {
	sym, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// ParseSymbol converts a single-character string into a Symbol.
func ParseSymbol(raw string) (Symbol, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("symbol %q must be exactly one character", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return Symbol(r), nil
}

// SymbolsOf splits a string into its symbols.
func SymbolsOf(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}

// Join concatenates symbols without a separator.
func Join(symbols []Symbol) string {
	buf := make([]rune, len(symbols))
	for i, s := range symbols {
		buf[i] = rune(s)
	}
	return string(buf)
}
