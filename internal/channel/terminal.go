package channel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Terminal is the plain stdio surface: unstyled output and a line-oriented
// listener standing in for speech capture.
type Terminal struct {
	out    io.Writer
	reader *bufio.Reader
	prompt string
}

// NewTerminal creates a terminal surface reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		out:    out,
		reader: bufio.NewReader(in),
		prompt: "❯ ",
	}
}

// Render prints the text as one line.
func (t *Terminal) Render(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

// Listen blocks for one line of input, standing in for a captured utterance.
// EOF surfaces as io.EOF so the caller can shut the loop down.
func (t *Terminal) Listen(ctx context.Context) (string, error) {
	fmt.Fprint(t.out, t.prompt)

	type lineResult struct {
		line string
		err  error
	}
	ch := make(chan lineResult, 1)
	go func() {
		line, err := t.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
