package table

import (
	_ "embed"
	"sync"
)

//go:embed machines/subtract.yaml
var subtractYAML []byte

var canonical = sync.OnceValues(func() (*Table, error) {
	return Decode(subtractYAML)
})

// Canonical returns the built-in binary subtraction machine.
// The table is decoded once and shared by every caller.
func Canonical() *Table {
	t, err := canonical()
	if err != nil {
		// The definition is embedded at build time; a failure here is a packaging bug.
		panic("table: embedded subtraction machine is invalid: " + err.Error())
	}
	return t
}

// CanonicalYAML exposes the embedded definition (for `turing table --yaml`).
func CanonicalYAML() []byte {
	return append([]byte(nil), subtractYAML...)
}
