/*
Package ports defines the driven ports (interfaces) for the turing engine.

These interfaces decouple simulation from external implementations, so the
same engine can keep its run history in memory, in Redis, or nowhere at all.

# Key Interfaces

  - RunStore: persists finished simulations (RunResult) by run ID.
*/
package ports
