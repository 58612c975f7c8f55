// Package channel provides the render and speech surfaces a dispatcher
// publishes answers through, plus the terminal listener used when no real
// speech-to-text collaborator is attached.
package channel

import "context"

// Renderer shows one line of finalized text to the user.
type Renderer interface {
	Render(ctx context.Context, text string) error
}

// Speaker forwards finalized text to a text-to-speech collaborator.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// NullSpeaker discards speech. Used when no TTS collaborator is attached.
type NullSpeaker struct{}

func (NullSpeaker) Speak(ctx context.Context, text string) error { return nil }

// NullRenderer discards renders. Used when a board poller (the TUI) is the
// only display surface.
type NullRenderer struct{}

func (NullRenderer) Render(ctx context.Context, text string) error { return nil }
