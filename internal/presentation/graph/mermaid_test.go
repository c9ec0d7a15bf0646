package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	small, err := table.NewBuilder("small").
		State("A").
		On('0', "A", '0', domain.Right).
		On('1', "A", '1', domain.Right).
		On(domain.Blank, "go-back", domain.Blank, domain.Left).
		State("go-back").
		On('#', "H", '#', domain.Stay).
		Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		table    *table.Table
		contains []string
	}{
		{
			name:  "State Shapes",
			table: small,
			contains: []string{
				`A(("A"))`,
				`H((("H")))`,
				`go_back["go-back"]`,
			},
		},
		{
			name:  "Merged Edge Labels",
			table: small,
			contains: []string{
				`A -- "0/0,R<br/>1/1,R" --> A`,
				`A -- "_/_,L" --> go_back`,
			},
		},
		{
			name:  "Escaped Hash",
			table: small,
			contains: []string{
				`go_back -- "#35;/#35;,S" --> H`,
			},
		},
		{
			name:  "Canonical Table",
			table: table.Canonical(),
			contains: []string{
				"graph LR",
				`O["O"]`,
				`O -- "0/1,R" --> O`,
				`G -- "_/_,S" --> H`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.table, nil)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(table.Canonical(), &graph.GraphOverlay{
		VisitedStates: []domain.State{"A", "B", "A", "M"},
		CurrentState:  "M",
	})

	assert.Contains(t, got, "classDef visited")
	assert.Equal(t, 1, strings.Count(got, "class A visited;"))
	assert.Contains(t, got, "class B visited;")
	assert.NotContains(t, got, "class M visited;")
	assert.Contains(t, got, "class M current;")
}

func TestTrace(t *testing.T) {
	tbl := table.Canonical()

	t.Run("Replays The Run", func(t *testing.T) {
		overlay := graph.Trace(tbl, &domain.RunResult{Input: "0-1"}, domain.DefaultStepLimit)
		require.NotNil(t, overlay)

		assert.Equal(t, []domain.State{"A", "A", "A", "A", "B", "I", "K"}, overlay.VisitedStates)
		assert.Equal(t, domain.State("M"), overlay.CurrentState)
	})

	t.Run("Prechecked Run Has No Overlay", func(t *testing.T) {
		assert.Nil(t, graph.Trace(tbl, &domain.RunResult{Input: "0-1", Prechecked: true}, domain.DefaultStepLimit))
	})
}
