// Package runtime implements the single-tape Turing machine interpreter.
//
// A Machine owns its tape, head, state and configuration history exclusively;
// the transition table is only read. Machines are synchronous and are meant to
// be built fresh for every run.
package runtime
