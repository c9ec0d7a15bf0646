package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecheck(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Operands
		wantErr error
	}{
		{"Simple", "1010-0011", Operands{"1010", "0011"}, nil},
		{"Single Bit", "0-0", Operands{"0", "0"}, nil},
		{"Surrounding Whitespace", "  1-0 \n", Operands{"1", "0"}, nil},
		{"Missing Separator", "10100011", Operands{}, ErrMissingSeparator},
		{"Two Separators", "1-0-1", Operands{}, ErrTooManySeparators},
		{"Letters", "1a-01", Operands{}, ErrNotBinary},
		{"Empty Left", "-01", Operands{}, ErrNotBinary},
		{"Empty Right", "01-", Operands{}, ErrNotBinary},
		{"Length Mismatch", "101-01", Operands{}, ErrLengthMismatch},
		{"Empty", "", Operands{}, ErrMissingSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Precheck(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrMalformedInput)
				assert.True(t, IsMalformed(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperands_LeftSmaller(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0-1", true},
		{"1-0", false},
		{"0-0", false},
		{"1-1", false},
		{"0111-1000", true},
		{"1000-0111", false},
		{"1010-1011", true},
		{"1010-1010", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ops, err := Precheck(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ops.LeftSmaller())
			assert.Equal(t, tt.input, ops.String())
		})
	}
}

func TestSanitize_SizeLimit(t *testing.T) {
	limit := 4096

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sanitize(strings.Repeat("1", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitize_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "3")

	_, err := Sanitize("1-0")
	assert.NoError(t, err)

	_, err = Precheck("10-01")
	assert.ErrorIs(t, err, ErrInputTooLarge)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestSanitize_KeepsInteriorCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal", "10-01", "10-01"},
		{"Surrounding Whitespace", " \t10-01\r\n", "10-01"},
		{"ANSI Code", "\x1b[31m1-0", "\x1b[31m1-0"},
		{"Null Byte", "1\x00-0", "1\x00-0"},
		{"Bell", "1-0\x07", "1-0\x07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPrecheck_ControlCharsAreNotBinary(t *testing.T) {
	for _, input := range []string{"1\x000-0\n1", "1\x00-0", "\x1b[31m1-0", "1-0\x07"} {
		_, err := Precheck(input)
		assert.ErrorIs(t, err, ErrNotBinary, "%q", input)
		assert.ErrorIs(t, err, domain.ErrMalformedInput, "%q", input)
	}
}

func TestSanitize_InvalidUTF8(t *testing.T) {
	_, err := Sanitize("1-\xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
