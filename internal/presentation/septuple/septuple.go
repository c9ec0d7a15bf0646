// Package septuple renders a transition table in the formal notation
// M={Q,Σ,Γ,δ,q0,F,B} and as a rule listing.
//
// Everything here is derived from the table alone; no run is needed.
package septuple

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Describe returns the septuple header followed by the Q, Σ, Γ and δ sets,
// one per line.
func Describe(t *table.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "M={Q,Σ,Γ,δ,%s,%s,%s}\n", t.Start(), t.Accept(), t.Blank())

	states := make([]string, 0, len(t.States()))
	for _, s := range t.States() {
		states = append(states, string(s))
	}
	fmt.Fprintf(&sb, "Q={%s}\n", strings.Join(states, ","))
	fmt.Fprintf(&sb, "Σ={%s}\n", joinSymbols(t.InputAlphabet()))
	fmt.Fprintf(&sb, "Γ={%s}\n", joinSymbols(t.TapeAlphabet()))

	rules := make([]string, 0, t.Len())
	for _, r := range t.Rules() {
		rules = append(rules, r.String())
	}
	fmt.Fprintf(&sb, "δ={ %s }\n", strings.Join(rules, ", "))
	return sb.String()
}

// Header is the column set of the rule listing.
var Header = []string{"State", "Symbol", "Next state", "Write", "Direction"}

// Listing renders the rules as an aligned plain text table.
func Listing(t *table.Table) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(Header, "\t"))
	for _, r := range t.Rules() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.From, r.Read, r.Next, r.Write, r.Move)
	}
	_ = w.Flush()
	return sb.String()
}

// Markdown renders the septuple and the rule listing as a markdown document.
func Markdown(t *table.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", t.Name())

	sb.WriteString("```\n")
	sb.WriteString(Describe(t))
	sb.WriteString("```\n\n")

	sb.WriteString("| " + strings.Join(Header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(Header)) + "\n")
	for _, r := range t.Rules() {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			r.From, cell(r.Read), r.Next, cell(r.Write), r.Move)
	}
	return sb.String()
}

func joinSymbols(symbols []domain.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// cell wraps a symbol in a code span so | _ # and friends survive markdown.
func cell(s domain.Symbol) string {
	if s == '|' {
		return "`\\|`"
	}
	return "`" + s.String() + "`"
}
