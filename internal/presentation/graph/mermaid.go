package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// GenerateMermaid produces a Mermaid flowchart of the state diagram of t.
// It applies semantic styling:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Default: [Rectangle]
// Rules sharing the same source and target are merged into one edge whose
// label lists "read/write,move" items.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(t *table.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range t.States() {
		opener, closer := "[", "]"
		switch s {
		case t.Start():
			opener, closer = "((", "))"
		case t.Accept():
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(s), opener, s, closer))
	}

	type edge struct{ from, to domain.State }
	var order []edge
	labels := make(map[edge][]string)
	for _, r := range t.Rules() {
		e := edge{r.From, r.Next}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
		}
		labels[e] = append(labels[e], fmt.Sprintf("%s/%s,%s", r.Read, r.Write, r.Move))
	}

	for _, e := range order {
		label := escapeLabel(strings.Join(labels[e], "<br/>"))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", sanitizeMermaidID(e.from), label, sanitizeMermaidID(e.to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			id := sanitizeMermaidID(s)
			if !visited[id] && id != "" && s != overlay.CurrentState {
				visited[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}

		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// escapeLabel uses Mermaid entity codes for characters that break quoted labels.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "#", "#35;")
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func sanitizeMermaidID(s domain.State) string {
	id := string(s)
	id = strings.ReplaceAll(id, ".", "_")
	id = strings.ReplaceAll(id, "-", "_")
	id = strings.ReplaceAll(id, "/", "_")
	id = strings.ReplaceAll(id, " ", "_")
	return id
}
