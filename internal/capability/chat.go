package capability

import (
	"context"
	"fmt"
	"time"

	"github.com/ariahq/aria/internal/provider"
	"github.com/ariahq/aria/internal/transcript"
)

// Chatbot answers conversational queries with the full transcript as context.
type Chatbot struct {
	provider  provider.Provider
	model     string
	log       *transcript.Log
	username  string
	assistant string
}

// NewChatbot creates the conversational capability.
func NewChatbot(p provider.Provider, model string, log *transcript.Log, username, assistant string) *Chatbot {
	return &Chatbot{
		provider:  p,
		model:     model,
		log:       log,
		username:  username,
		assistant: assistant,
	}
}

func (b *Chatbot) systemPrompt() string {
	return fmt.Sprintf(`Hello, I am %s. You are a very accurate and advanced AI assistant named %s with real-time up-to-date information from the internet.
*** Do not tell the time unless asked. Do not talk too much, just answer the question. ***
*** Reply in only English, even if the question is in another language. ***
*** Do not mention your training data or provide notes in the output, just answer the question. ***`,
		b.username, b.assistant)
}

// Chat answers the query, appends the exchange to the transcript, and returns
// the blank-line-stripped answer.
func (b *Chatbot) Chat(ctx context.Context, query string) (string, error) {
	entries, err := b.log.Read()
	if err != nil {
		return "", fmt.Errorf("chat: failed to read transcript: %w", err)
	}

	messages := make([]provider.Message, 0, len(entries)+1)
	for _, e := range entries {
		messages = append(messages, provider.Message{Role: e.Role, Content: e.Content})
	}
	messages = append(messages, provider.Message{Role: "user", Content: query})

	resp, err := b.provider.Chat(ctx, &provider.ChatRequest{
		Model:       b.model,
		System:      b.systemPrompt() + "\n" + RealtimeInformation(time.Now()),
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	answer := AnswerModifier(resp.Text)
	if err := b.log.Append(query, answer); err != nil {
		return "", fmt.Errorf("chat: failed to append transcript: %w", err)
	}
	return answer, nil
}
