package channel

import (
	"context"
	"io"
)

// Queue is an in-memory listener fed by a UI. The TUI submits typed
// utterances; the scheduler consumes them as if they were captured speech.
type Queue struct {
	ch chan string
}

// NewQueue creates a listener queue.
func NewQueue() *Queue {
	return &Queue{ch: make(chan string, 8)}
}

// Submit enqueues one utterance. A full queue drops the utterance rather
// than blocking the UI.
func (q *Queue) Submit(utterance string) {
	select {
	case q.ch <- utterance:
	default:
	}
}

// Listen blocks for the next utterance. A closed queue surfaces as io.EOF.
func (q *Queue) Listen(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case utterance, ok := <-q.ch:
		if !ok {
			return "", io.EOF
		}
		return utterance, nil
	}
}

// Close shuts the queue; pending Listen calls return io.EOF.
func (q *Queue) Close() {
	close(q.ch)
}
