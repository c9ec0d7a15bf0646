/*
Package domain contains the core domain models of the Turing machine engine.

It defines the vocabulary shared by the transition table, the tape machine and
every adapter: symbols, states, head directions, transitions and the result of a
run. This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Symbol: a single tape cell value. The blank symbol is '_'.
  - State: the label of the machine's control state (A..P, H accepts).
  - Transition: the (next state, symbol to write, head movement) triple.
  - StepOutcome / Verdict: failure-as-data results of a step and of a run.
  - RunResult: the configuration history and verdict handed to callers.
*/
package domain
