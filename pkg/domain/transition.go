package domain

import "fmt"

// State is the label of a control state.
type State string

// Direction is the head movement applied after a write.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
	Stay  Direction = "S"
)

// Offset returns the head displacement for the direction.
func (d Direction) Offset() int {
	switch d {
	case Right:
		return 1
	case Left:
		return -1
	default:
		return 0
	}
}

// ParseDirection accepts the short (L/R/S) and long (left/right/stay) spellings.
func ParseDirection(raw string) (Direction, error) {
	switch raw {
	case "L", "l", "left", "Left":
		return Left, nil
	case "R", "r", "right", "Right":
		return Right, nil
	case "S", "s", "stay", "Stay", "N":
		return Stay, nil
	}
	return "", fmt.Errorf("unknown direction %q", raw)
}

// Transition is what the table yields for a (state, symbol) pair.
type Transition struct {
	Next  State     `json:"next" yaml:"next"`
	Write Symbol    `json:"write" yaml:"write"`
	Move  Direction `json:"move" yaml:"move"`
}

// Rule is one row of the transition function: δ(From, Read) = Transition.
type Rule struct {
	From State  `json:"from"`
	Read Symbol `json:"read"`
	Transition
}

// String renders the rule in the compact septuple notation "(A,0) = (A,0,R)".
func (r Rule) String() string {
	return fmt.Sprintf("(%s,%s) = (%s,%s,%s)", r.From, r.Read, r.Next, r.Write, r.Move)
}
