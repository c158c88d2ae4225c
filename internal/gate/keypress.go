package gate

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"
)

// fdReader is satisfied by *os.File and lets the gate detect a real terminal.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

// KeypressGate prompts and blocks until the operator presses a key. On a
// terminal the key is read raw: no echo, no Enter required. When input is not
// a terminal (piped stdin, tests) it falls back to reading a line and judging
// its first byte, so scripted runs still work.
type KeypressGate struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func NewKeypressGate(in io.Reader, out io.Writer) *KeypressGate {
	return &KeypressGate{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Confirm prints the prompt and waits for one keypress. q, Q, Esc and Ctrl-C
// abort the run; any other key proceeds. Context cancellation aborts the wait.
func (g *KeypressGate) Confirm(ctx context.Context, prompt string) (Decision, error) {
	fmt.Fprint(g.out, prompt)

	type keyResult struct {
		key byte
		err error
	}
	resultCh := make(chan keyResult, 1)

	go func() {
		key, err := g.readKey()
		resultCh <- keyResult{key: key, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(g.out)
		return DecisionAbort, ctx.Err()
	case res := <-resultCh:
		fmt.Fprintln(g.out)
		if res.err != nil {
			if res.err == io.EOF {
				// Input exhausted: nothing left to confirm with, stop cleanly.
				return DecisionAbort, nil
			}
			return DecisionAbort, fmt.Errorf("failed to read keypress: %w", res.err)
		}
		return decisionForKey(res.key), nil
	}
}

func (g *KeypressGate) readKey() (byte, error) {
	if f, ok := g.in.(fdReader); ok && term.IsTerminal(int(f.Fd())) {
		return g.readRawKey(int(f.Fd()))
	}

	// Non-terminal input: consume a whole line, decide on its first byte.
	line, err := g.reader.ReadString('\n')
	if len(line) == 0 {
		if err != nil {
			return 0, err
		}
		return '\n', nil
	}
	return line[0], nil
}

func (g *KeypressGate) readRawKey(fd int) (byte, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	if _, err := g.in.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func decisionForKey(key byte) Decision {
	switch key {
	case 'q', 'Q', 0x1b, 0x03: // q, Q, Esc, Ctrl-C
		return DecisionAbort
	default:
		return DecisionProceed
	}
}
