// Package gate provides the confirmation step that paces the sequencer.
// The interactive implementation blocks on a single keypress; the auto
// implementation waves every command through for batch runs and tests.
package gate

import "context"

type Decision int

const (
	DecisionProceed Decision = iota
	DecisionAbort
)

func (d Decision) String() string {
	switch d {
	case DecisionProceed:
		return "proceed"
	case DecisionAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Gate is asked before every command whether the run should continue.
type Gate interface {
	Confirm(ctx context.Context, prompt string) (Decision, error)
}

// AutoGate proceeds without blocking. Used for --yes runs.
type AutoGate struct{}

func NewAutoGate() *AutoGate {
	return &AutoGate{}
}

func (g *AutoGate) Confirm(ctx context.Context, prompt string) (Decision, error) {
	select {
	case <-ctx.Done():
		return DecisionAbort, ctx.Err()
	default:
		return DecisionProceed, nil
	}
}
