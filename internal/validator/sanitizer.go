package validator

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
)

var (
	// DefaultMaxInputSize is 4KB. Inputs longer than that would also blow the
	// step limit long before the machine could finish.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "TURING_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = fmt.Errorf("%w: input exceeds maximum allowed size", domain.ErrMalformedInput)
	ErrInvalidUTF8   = fmt.Errorf("%w: input contains invalid UTF-8 sequences", domain.ErrMalformedInput)
)

// Sanitize enforces the size limit, validates UTF-8 and trims surrounding
// whitespace. Interior characters are left alone so that anything outside
// the alphabet is reported by Precheck instead of being silently dropped.
func Sanitize(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		// Reject rather than truncate: a truncated operand is a different number.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	return strings.TrimSpace(input), nil
}

// IsMalformed reports whether err was caused by bad user input rather than
// by the infrastructure.
func IsMalformed(err error) bool {
	return errors.Is(err, domain.ErrMalformedInput)
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
