// Package provider defines the LLM provider interface and types.
package provider

import "context"

// Provider is any LLM backend that can generate chat completions.
type Provider interface {
	// Chat sends a request and returns the complete response.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Stream sends a request and returns a channel of streaming events.
	Stream(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error)

	// Name returns the provider name (e.g., "groq", "anthropic").
	Name() string

	// Models returns the list of available model IDs.
	Models() []string
}

// ChatRequest represents a chat completion request.
type ChatRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// ChatResponse represents a complete chat response.
type ChatResponse struct {
	ID         string
	Text       string
	StopReason string
	Usage      Usage
}

// Usage tracks token usage.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// StreamEvent represents an event in a streaming response.
type StreamEvent struct {
	Type  string // "text", "stop", "error"
	Text  string // For text events
	Error error  // For error events
}

// CollectText drains a stream and concatenates its text events. The first
// error event aborts the collection.
func CollectText(events <-chan StreamEvent) (string, error) {
	var text string
	for event := range events {
		switch event.Type {
		case "text":
			text += event.Text
		case "error":
			return text, event.Error
		}
	}
	return text, nil
}
