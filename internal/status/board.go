// Package status holds the shared state slots that the scheduler loop and the
// render surface coordinate through. There is no queue: every slot is
// last-write-wins, and pollers are allowed to miss intermediate values.
package status

import "sync"

// State is the assistant's coarse activity state.
type State int

const (
	StateIdle State = iota
	StateListening
	StateThinking
	StateSearching
	StateGenerating
	StateAnswering
	StateError
)

// String returns the user-facing label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Available..."
	case StateListening:
		return "Listening..."
	case StateThinking:
		return "Thinking..."
	case StateSearching:
		return "Searching..."
	case StateGenerating:
		return "Generating..."
	case StateAnswering:
		return "Answering..."
	case StateError:
		return "Error!"
	default:
		return "Unknown"
	}
}

// Snapshot is a consistent read of all slots.
type Snapshot struct {
	MicArmed bool
	State    State
	LastText string
}

// Board holds the three named slots. Writer roles, by convention:
// the UI writes MicArmed on user toggle, the dispatcher and scheduler write it
// back; only the dispatcher and scheduler write State; only the dispatcher
// writes LastText. Writes are total overwrites, so write-write races between
// the two MicArmed writers are benign resets to a known value.
type Board struct {
	mu       sync.Mutex
	micArmed bool
	state    State
	lastText string

	// wake carries at most one pending arm signal; sends never block.
	wake chan struct{}
}

// NewBoard creates a board with all slots at their defaults.
func NewBoard() *Board {
	return &Board{
		wake: make(chan struct{}, 1),
	}
}

// ArmMic sets the microphone-armed flag. Arming also posts a wake signal so
// the scheduler loop notices without waiting for its next poll tick.
func (b *Board) ArmMic(armed bool) {
	b.mu.Lock()
	b.micArmed = armed
	b.mu.Unlock()

	if armed {
		select {
		case b.wake <- struct{}{}:
		default:
		}
	}
}

// MicArmed reports whether the microphone is armed.
func (b *Board) MicArmed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.micArmed
}

// SetState overwrites the assistant state slot.
func (b *Board) SetState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// State returns the last fully written assistant state.
func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetText overwrites the last-rendered-text slot. Text is replaced wholesale,
// never appended.
func (b *Board) SetText(text string) {
	b.mu.Lock()
	b.lastText = text
	b.mu.Unlock()
}

// Text returns the last rendered text.
func (b *Board) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastText
}

// Snapshot returns a consistent view of all slots for pollers.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		MicArmed: b.micArmed,
		State:    b.state,
		LastText: b.lastText,
	}
}

// Wake returns the arm-signal channel. The channel is bounded at one pending
// signal; a burst of toggles coalesces, which is fine because the receiver
// re-reads MicArmed before acting.
func (b *Board) Wake() <-chan struct{} {
	return b.wake
}
