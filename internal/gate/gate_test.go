package gate

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecision_String(t *testing.T) {
	tests := []struct {
		decision Decision
		expected string
	}{
		{DecisionProceed, "proceed"},
		{DecisionAbort, "abort"},
		{Decision(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.decision.String())
		})
	}
}

func TestAutoGate_Proceeds(t *testing.T) {
	g := NewAutoGate()

	decision, err := g.Confirm(context.Background(), "next? ")
	require.NoError(t, err)
	assert.Equal(t, DecisionProceed, decision)
}

func TestAutoGate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewAutoGate()
	decision, err := g.Confirm(ctx, "next? ")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, DecisionAbort, decision)
}

func TestKeypressGate_LineInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Decision
	}{
		{"enter proceeds", "\n", DecisionProceed},
		{"letter proceeds", "y\n", DecisionProceed},
		{"space proceeds", " \n", DecisionProceed},
		{"q aborts", "q\n", DecisionAbort},
		{"uppercase Q aborts", "Q\n", DecisionAbort},
		{"escape aborts", "\x1b\n", DecisionAbort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			g := NewKeypressGate(strings.NewReader(tt.input), &out)

			decision, err := g.Confirm(context.Background(), "press a key... ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
			assert.Contains(t, out.String(), "press a key... ")
		})
	}
}

func TestKeypressGate_ConsumesOneLinePerConfirm(t *testing.T) {
	var out bytes.Buffer
	g := NewKeypressGate(strings.NewReader("\n\nq\n"), &out)

	for _, want := range []Decision{DecisionProceed, DecisionProceed, DecisionAbort} {
		decision, err := g.Confirm(context.Background(), "> ")
		require.NoError(t, err)
		assert.Equal(t, want, decision)
	}
}

func TestKeypressGate_EOFAbortsCleanly(t *testing.T) {
	var out bytes.Buffer
	g := NewKeypressGate(strings.NewReader(""), &out)

	decision, err := g.Confirm(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, DecisionAbort, decision)
}

func TestKeypressGate_ContextCancelDuringWait(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	g := NewKeypressGate(pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	decision, err := g.Confirm(ctx, "> ")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, DecisionAbort, decision)
}
