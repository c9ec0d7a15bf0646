package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// TableReport summarizes the structure of a transition table.
type TableReport struct {
	States          int
	Rules           int
	AcceptReachable bool
	// Unreachable lists declared states no path from the start state visits.
	Unreachable []domain.State
	// DeadEnds lists non-accepting states without any outgoing rule.
	// A machine entering one always rejects.
	DeadEnds []domain.State
}

// InspectTable walks the state graph of t from its start state.
func InspectTable(t *table.Table) TableReport {
	report := TableReport{States: len(t.States()), Rules: t.Len()}

	visited := map[domain.State]bool{t.Start(): true}
	queue := []domain.State{t.Start()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, r := range t.RulesFrom(current) {
			if !visited[r.Next] {
				visited[r.Next] = true
				queue = append(queue, r.Next)
			}
		}
	}

	report.AcceptReachable = visited[t.Accept()]
	for _, s := range t.States() {
		if !visited[s] {
			report.Unreachable = append(report.Unreachable, s)
		}
		if s != t.Accept() && len(t.RulesFrom(s)) == 0 {
			report.DeadEnds = append(report.DeadEnds, s)
		}
	}
	return report
}

// ValidateTable fails when the accepting state cannot be reached or when some
// declared state is unreachable.
func ValidateTable(t *table.Table) error {
	report := InspectTable(t)

	var errs []error
	if !report.AcceptReachable {
		errs = append(errs, fmt.Errorf("accepting state %s is unreachable from %s", t.Accept(), t.Start()))
	}
	if len(report.Unreachable) > 0 {
		names := make([]string, len(report.Unreachable))
		for i, s := range report.Unreachable {
			names[i] = string(s)
		}
		errs = append(errs, fmt.Errorf("unreachable states: %s", strings.Join(names, ", ")))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidTable, errors.Join(errs...))
}
