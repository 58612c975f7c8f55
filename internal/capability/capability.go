// Package capability defines the collaborator surfaces the dispatcher invokes
// and ships the default HTTP/LLM-backed implementations.
//
// Every capability is a single call-and-return; none of them stream back to
// the dispatcher. Network-backed implementations carry their own client
// timeouts, and a timeout surfaces as an ordinary error.
package capability

import (
	"context"
	"strings"
)

// Chat produces a conversational answer.
type Chat interface {
	Chat(ctx context.Context, query string) (string, error)
}

// Search produces an answer backed by live data.
type Search interface {
	Search(ctx context.Context, query string) (string, error)
}

// Weather reports current conditions for a location.
type Weather interface {
	Current(ctx context.Context, location string) (string, error)
}

// News reports headlines for a topic.
type News interface {
	Headlines(ctx context.Context, topic string) (string, error)
}

// Cricket reports match scores; query may be empty.
type Cricket interface {
	Scores(ctx context.Context, query string) (string, error)
}

// Stocks reports a quote for a symbol.
type Stocks interface {
	Quote(ctx context.Context, symbol string) (string, error)
}

// Trending reports currently trending topics.
type Trending interface {
	Topics(ctx context.Context) (string, error)
}

// Automation hands a decision batch to the OS automation collaborator.
// Fire-and-forget from the dispatcher's perspective.
type Automation interface {
	Run(ctx context.Context, batch []string) error
}

// ImageGenerator generates an image from the raw decision entry.
type ImageGenerator interface {
	Generate(ctx context.Context, rawQuery string) error
}

// VideoGenerator generates a video from the stripped query.
type VideoGenerator interface {
	Generate(ctx context.Context, query string) error
}

// Set bundles the collaborators one dispatcher needs.
type Set struct {
	Chat       Chat
	Search     Search
	Automation Automation
	Image      ImageGenerator
	Video      VideoGenerator
}

// AnswerModifier removes blank lines from an answer before it is rendered.
func AnswerModifier(answer string) string {
	var lines []string
	for _, line := range strings.Split(answer, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
