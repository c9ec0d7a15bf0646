package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// View selects how much of a history is shown.
type View string

const (
	// ViewFull shows every configuration.
	ViewFull View = "full"
	// ViewWindow shows the first and last N configurations.
	ViewWindow View = "window"
)

// DefaultWindow is the number of configurations kept at each end in ViewWindow.
const DefaultWindow = 3

// ParseView accepts full and window.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewFull:
		return ViewFull, nil
	case ViewWindow:
		return ViewWindow, nil
	}
	return "", fmt.Errorf("unknown view %q (want full or window)", s)
}

// Elision is the marker that replaces the middle of a windowed history.
func Elision(omitted int) string {
	return fmt.Sprintf("... (%d configurations omitted)", omitted)
}

// Window applies v to history. In ViewWindow, histories longer than 2n keep
// their first n and last n entries around an Elision marker.
func Window(history []string, v View, n int) []string {
	if n <= 0 {
		n = DefaultWindow
	}
	if v != ViewWindow || len(history) <= 2*n {
		return append([]string(nil), history...)
	}

	out := make([]string, 0, 2*n+1)
	out = append(out, history[:n]...)
	out = append(out, Elision(len(history)-2*n))
	return append(out, history[len(history)-n:]...)
}

// Steps renders history as a numbered list, one configuration per line,
// applying v the same way Window does. Numbers are positions in the full
// history; the elision marker and the step limit sentinel are unnumbered.
func Steps(history []string, v View, n int) string {
	if n <= 0 {
		n = DefaultWindow
	}
	elide := v == ViewWindow && len(history) > 2*n

	var sb strings.Builder
	for i, c := range history {
		if elide && i == n {
			fmt.Fprintf(&sb, "      %s\n", Elision(len(history)-2*n))
		}
		if elide && i >= n && i < len(history)-n {
			continue
		}
		if c == domain.LimitSentinel {
			fmt.Fprintf(&sb, "      %s\n", c)
			continue
		}
		fmt.Fprintf(&sb, "%5d %s\n", i, c)
	}
	return sb.String()
}
