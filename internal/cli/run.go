package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/presentation/septuple"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/table"
)

// Samples are the inputs offered by "turing run --sample".
var Samples = []string{"1010-0011", "1-1", "0-0", "1-0", "0-1", "1000-0111"}

// Simulator is the part of the engine the run command drives.
type Simulator interface {
	Simulate(ctx context.Context, input string) (*domain.RunResult, error)
	Run(ctx context.Context, input string) (*domain.RunResult, error)
	Table() *table.Table
	HasStore() bool
}

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Inputs   []string
	View     tui.View
	Window   int
	Raw      bool // skip the A-B precheck
	JSON     bool // one RunResult per line
	Describe bool // print the septuple before the runs
	Rich     bool // colors and markdown; usually set when stdout is a terminal
}

// Execute runs every input and writes the report to w.
// It stops at the first malformed input and returns its error.
func Execute(ctx context.Context, sim Simulator, opts RunOptions, w io.Writer) error {
	if opts.Describe && !opts.JSON {
		if err := describe(w, sim.Table(), opts.Rich); err != nil {
			return err
		}
	}

	run := sim.Simulate
	if opts.Raw {
		run = sim.Run
	}

	enc := json.NewEncoder(w)
	for _, input := range opts.Inputs {
		res, err := run(ctx, input)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}

		if opts.JSON {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}
		printResult(w, res, opts, sim.HasStore())
	}
	return nil
}

func describe(w io.Writer, t *table.Table, rich bool) error {
	if !rich {
		fmt.Fprintln(w, septuple.Describe(t))
		fmt.Fprintln(w, septuple.Listing(t))
		return nil
	}

	out, err := tui.NewRenderer()(septuple.Markdown(t))
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

// printResult writes one run. The run ID is only shown when it can be looked
// up again.
func printResult(w io.Writer, res *domain.RunResult, opts RunOptions, stored bool) {
	fmt.Fprintf(w, "Input: %s\n", res.Input)
	if opts.Rich {
		fmt.Fprintln(w, tui.Verdict(res))
	} else {
		fmt.Fprintf(w, "Verdict: %s (%s)\n", res.Verdict, res.Reason)
	}

	if len(res.History) > 0 {
		history := tui.Window(res.History, opts.View, opts.Window)
		fmt.Fprintf(w, "ID: %s\n", domain.JoinHistory(history))
		fmt.Fprint(w, tui.Steps(res.History, opts.View, opts.Window))
	}
	if stored && res.ID != "" {
		fmt.Fprintf(w, "Run: %s\n", res.ID)
	}
	fmt.Fprintln(w)
}
