package tui

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// Verdict renders a one-line summary of res, colored by verdict when the
// terminal supports it.
func Verdict(res *domain.RunResult) string {
	p := termenv.ColorProfile()

	color := "#c0392b"
	label := "REJECTED"
	switch res.Verdict {
	case domain.VerdictAccepted:
		color, label = "#0a7f3a", "ACCEPTED"
	case domain.VerdictInconclusive:
		color, label = "#d68910", "INCONCLUSIVE"
	}

	head := termenv.String(label).Foreground(p.Color(color)).Bold()
	line := fmt.Sprintf("%s %s", head, res.Reason)
	if !res.Prechecked {
		line += fmt.Sprintf(" (state %s, %d steps)", res.FinalState, res.Steps)
	}
	return line
}
