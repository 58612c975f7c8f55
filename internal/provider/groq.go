package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Groq implements the Provider interface against Groq's OpenAI-compatible API.
type Groq struct {
	client *openai.Client
	model  string
}

// GroqConfig holds configuration for the Groq provider.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewGroq creates a new Groq provider.
func NewGroq(cfg GroqConfig) (*Groq, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	)

	model := cfg.Model
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	return &Groq{
		client: &client,
		model:  model,
	}, nil
}

func (p *Groq) Name() string {
	return "groq"
}

func (p *Groq) Models() []string {
	return []string{
		"llama-3.1-8b-instant",
		"llama-3.3-70b-versatile",
		"mixtral-8x7b-32768",
		"gemma2-9b-it",
	}
}

// Chat sends a non-streaming request.
func (p *Groq) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: p.buildMessages(req),
	}
	params.MaxTokens = openai.Int(int64(maxTokens))
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("groq chat failed: %w", err)
	}

	return p.parseResponse(resp), nil
}

// Stream sends a request and emits events.
func (p *Groq) Stream(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error) {
	events := make(chan StreamEvent, 100)

	go func() {
		defer close(events)

		resp, err := p.Chat(ctx, req)
		if err != nil {
			events <- StreamEvent{
				Type:  "error",
				Error: err,
			}
			return
		}

		if resp.Text != "" {
			events <- StreamEvent{
				Type: "text",
				Text: resp.Text,
			}
		}
		events <- StreamEvent{Type: "stop"}
	}()

	return events, nil
}

func (p *Groq) buildMessages(req *ChatRequest) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion

	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return messages
}

func (p *Groq) parseResponse(resp *openai.ChatCompletion) *ChatResponse {
	result := &ChatResponse{
		ID:         resp.ID,
		StopReason: "end_turn",
	}

	if len(resp.Choices) == 0 {
		return result
	}

	choice := resp.Choices[0]
	result.Text = choice.Message.Content
	if choice.FinishReason != "" {
		result.StopReason = choice.FinishReason
	}
	result.Usage = Usage{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}

	return result
}
