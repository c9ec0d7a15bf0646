package domain

import "errors"

// ErrMalformedInput is the parent of every pre-validation failure.
// Concrete causes wrap it, so callers can match with errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrInvalidTable is returned when a transition table definition is inconsistent.
var ErrInvalidTable = errors.New("invalid transition table")
