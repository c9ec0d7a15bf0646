/*
Package turing is a deterministic single-tape Turing machine interpreter.

It ships with a transition table that subtracts two equal-length binary numbers
written as A-B, accepting when A >= B and rejecting otherwise, and records every
instantaneous description (configuration) the machine goes through.

# Concept

A run is a pure function of the input and the table: the tape starts with the
input followed by one blank, the head on the first cell, the control in the
start state. The engine applies transitions until the machine reaches the
accepting state, gets stuck (no rule for the current state and symbol), or
exceeds a step ceiling. Each outcome is data in a RunResult, never an error.

Tables are data as well. The canonical one is an embedded YAML document (see
package table); any other table built with table.NewBuilder or table.Decode
can be plugged in with WithTable.

# Usage

	eng, err := turing.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Simulate(ctx, "1010-0011")
	if err != nil {
		// malformed input: errors.Is(err, domain.ErrMalformedInput)
		log.Fatal(err)
	}

	fmt.Println(res.Verdict)      // accepted
	fmt.Println(res.Transcript()) // A1010-0011_ |- 1A010-0011_ |- ...

Simulate validates the A-B contract first and rejects inputs whose left operand
is smaller without building a machine. Run skips that check and feeds any
string to the machine.

# Persistence

Pass WithStore to keep finished runs (see pkg/adapters/memory and
pkg/adapters/redis). Every run gets a UUID which Get resolves later.
*/
package turing
