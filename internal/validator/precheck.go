// Package validator checks subtraction inputs before a machine is built.
//
// The machine itself accepts any string. Callers that want the A-B contract
// (two equal-length binary operands) run Precheck first; it also answers the
// cheap question "is A smaller than B?" so those inputs never reach the machine.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

var (
	ErrMissingSeparator  = fmt.Errorf("%w: input must contain '-' separating the two binary operands", domain.ErrMalformedInput)
	ErrTooManySeparators = fmt.Errorf("%w: input must have the form A-B with exactly one '-'", domain.ErrMalformedInput)
	ErrNotBinary         = fmt.Errorf("%w: operands may only contain the digits 0 and 1", domain.ErrMalformedInput)
	ErrLengthMismatch    = fmt.Errorf("%w: both operands must have the same length", domain.ErrMalformedInput)
)

// Operands is a well-formed A-B input.
type Operands struct {
	Left  string
	Right string
}

// String renders the operands back in A-B form.
func (o Operands) String() string {
	return o.Left + string(domain.InputSeparator) + o.Right
}

// LeftSmaller compares the operands bit by bit from the most significant bit.
// Both operands have the same length, so the first differing bit decides.
func (o Operands) LeftSmaller() bool {
	for i := 0; i < len(o.Left); i++ {
		if o.Left[i] == o.Right[i] {
			continue
		}
		return o.Left[i] == '0'
	}
	return false
}

// Precheck sanitizes input and splits it into operands.
func Precheck(input string) (Operands, error) {
	clean, err := Sanitize(input)
	if err != nil {
		return Operands{}, err
	}

	sep := string(domain.InputSeparator)
	if !strings.Contains(clean, sep) {
		return Operands{}, ErrMissingSeparator
	}
	parts := strings.Split(clean, sep)
	if len(parts) != 2 {
		return Operands{}, fmt.Errorf("%w: found %d", ErrTooManySeparators, len(parts)-1)
	}

	ops := Operands{Left: parts[0], Right: parts[1]}
	if !isBinary(ops.Left) || !isBinary(ops.Right) {
		return Operands{}, fmt.Errorf("%w: %q", ErrNotBinary, clean)
	}
	if len(ops.Left) != len(ops.Right) {
		return Operands{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(ops.Left), len(ops.Right))
	}
	return ops, nil
}

func isBinary(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
