package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		raw     string
		want    Symbol
		wantErr bool
	}{
		{"0", '0', false},
		{"_", Blank, false},
		{"%", '%', false},
		{"", 0, true},
		{"ab", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSymbol(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSymbol_JSON(t *testing.T) {
	rule := Rule{From: "A", Read: '0', Transition: Transition{Next: "B", Write: 'y', Move: Left}}

	data, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"A","read":"0","next":"B","write":"y","move":"L"}`, string(data))

	var back Rule
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rule, back)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, 1, Right.Offset())
	assert.Equal(t, -1, Left.Offset())
	assert.Equal(t, 0, Stay.Offset())

	d, err := ParseDirection("left")
	require.NoError(t, err)
	assert.Equal(t, Left, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}

func TestRule_String(t *testing.T) {
	rule := Rule{From: "G", Read: Blank, Transition: Transition{Next: "H", Write: Blank, Move: Stay}}
	assert.Equal(t, "(G,_) = (H,_,S)", rule.String())
}

func TestRunResult_CloneAndTranscript(t *testing.T) {
	r := &RunResult{History: []string{"A0_", "0A_"}}
	c := r.Clone()
	c.History[0] = "changed"

	assert.Equal(t, "A0_", r.History[0], "clone must not alias history")
	assert.Equal(t, "A0_ |- 0A_", r.Transcript())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{
		OnRunStart: func(context.Context, *RunEvent) { calls = append(calls, "a-start") },
	}
	b := LifecycleHooks{
		OnRunStart: func(context.Context, *RunEvent) { calls = append(calls, "b-start") },
		OnStep:     func(context.Context, *StepEvent) { calls = append(calls, "b-step") },
	}

	merged := a.Merge(b)
	merged.OnRunStart(context.Background(), &RunEvent{})
	merged.OnStep(context.Background(), &StepEvent{})

	assert.Nil(t, merged.OnRunFinish)
	assert.Equal(t, []string{"a-start", "b-start", "b-step"}, calls)
}
