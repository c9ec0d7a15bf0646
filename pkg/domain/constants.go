package domain

const (
	// StartState is the state every machine begins in unless its table says otherwise.
	StartState State = "A"

	// AcceptState is the unique halting state. It has no outgoing transitions.
	AcceptState State = "H"

	// DefaultStepLimit bounds the number of applied transitions before a run is
	// declared inconclusive.
	DefaultStepLimit = 5000

	// HistorySeparator joins consecutive configurations for display.
	HistorySeparator = " |- "

	// LimitSentinel is appended to the history instead of a configuration when
	// the step limit is exceeded.
	LimitSentinel = "... (step limit reached: possible infinite loop)"

	// InputSeparator splits the two operands of a subtraction input.
	InputSeparator = '-'
)

// Reasons reported in RunResult.Reason.
const (
	ReasonAccepted    = "accepting state reached"
	ReasonLimit       = "step limit exceeded: possible infinite loop"
	ReasonLeftSmaller = "rejected: left operand is smaller than right operand"
)
