package septuple_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/septuple"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	got := septuple.Describe(table.Canonical())
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "M={Q,Σ,Γ,δ,A,H,_}", lines[0])
	assert.Equal(t, "Q={A,B,C,D,E,F,G,H,I,J,K,M,N,O,P}", lines[1])
	assert.Equal(t, "Σ={0,1,-,y,c,|,%,#,&,x}", lines[2])
	assert.Equal(t, "Γ={_,0,1,-,y,c,|,%,#,&,x}", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "δ={ (A,0) = (A,0,R), (A,1) = (A,1,R)"))
	assert.True(t, strings.HasSuffix(lines[4], " }"))
	assert.Equal(t, 76, strings.Count(lines[4], ") = ("))
}

func TestDescribe_MachineNeverRun(t *testing.T) {
	tbl := table.Canonical()
	m := runtime.NewMachine("0-0", tbl)

	assert.NotEmpty(t, septuple.Describe(tbl))
	assert.Equal(t, 0, m.Steps(), "describing the table does not touch the machine")
	assert.Equal(t, []string{"A0-0_"}, m.History())
}

func TestListing(t *testing.T) {
	got := septuple.Listing(table.Canonical())
	lines := strings.Split(strings.TrimSpace(got), "\n")

	require.Len(t, lines, 77)
	assert.Equal(t, []string{"State", "Symbol", "Next", "state", "Write", "Direction"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"A", "0", "A", "0", "R"}, strings.Fields(lines[1]))
}

func TestMarkdown(t *testing.T) {
	got := septuple.Markdown(table.Canonical())

	assert.Contains(t, got, "# binary-subtraction")
	assert.Contains(t, got, "| State | Symbol | Next state | Write | Direction |")
	assert.Contains(t, got, "| G | `_` | H | `_` | S |")
	assert.Contains(t, got, "| K | `1` | J | `\\|` | R |")
}
