/*
Package table holds the immutable transition function of a Turing machine.

A Table maps (state, symbol) to a domain.Transition. It is built once, either
with the fluent Builder or by decoding a YAML definition, and is never mutated
afterwards, so a single Table can be shared read-only by any number of
machines running concurrently.

The canonical binary subtraction machine ships embedded in the package and is
available through Canonical.
*/
package table
