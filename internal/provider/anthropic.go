package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic implements the Provider interface for Claude models.
type Anthropic struct {
	client *anthropic.Client
	model  string
}

// AnthropicConfig holds configuration for the Anthropic provider.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewAnthropic creates a new Anthropic provider.
func NewAnthropic(cfg AnthropicConfig) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}

	return &Anthropic{
		client: client,
		model:  model,
	}, nil
}

func (a *Anthropic) Name() string {
	return "anthropic"
}

func (a *Anthropic) Models() []string {
	return []string{
		"claude-sonnet-4-20250514",
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
	}
}

func (a *Anthropic) buildParams(req *ChatRequest) anthropic.MessageNewParams {
	model := req.Model
	if model == "" {
		model = a.model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(model)),
		MaxTokens: anthropic.F(int64(maxTokens)),
		Messages:  anthropic.F(a.buildMessages(req.Messages)),
	}

	if req.System != "" {
		params.System = anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(req.System),
		})
	}

	if req.Temperature > 0 {
		params.Temperature = anthropic.F(req.Temperature)
	}

	return params
}

// Chat sends a non-streaming request.
func (a *Anthropic) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	resp, err := a.client.Messages.New(ctx, a.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic chat failed: %w", err)
	}

	return a.parseResponse(resp), nil
}

// Stream sends a streaming request.
func (a *Anthropic) Stream(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error) {
	stream := a.client.Messages.NewStreaming(ctx, a.buildParams(req))

	events := make(chan StreamEvent, 100)

	go func() {
		defer close(events)
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()

			switch event.Type {
			case anthropic.MessageStreamEventTypeContentBlockDelta:
				if delta, ok := event.Delta.(anthropic.ContentBlockDeltaEventDelta); ok {
					if delta.Type == "text_delta" && delta.Text != "" {
						events <- StreamEvent{
							Type: "text",
							Text: delta.Text,
						}
					}
				}

			case anthropic.MessageStreamEventTypeMessageStop:
				events <- StreamEvent{Type: "stop"}
			}
		}

		if err := stream.Err(); err != nil {
			events <- StreamEvent{
				Type:  "error",
				Error: err,
			}
		}
	}()

	return events, nil
}

func (a *Anthropic) buildMessages(msgs []Message) []anthropic.MessageParam {
	var result []anthropic.MessageParam

	for _, msg := range msgs {
		role := anthropic.MessageParamRoleUser
		if msg.Role == "assistant" {
			role = anthropic.MessageParamRoleAssistant
		}

		result = append(result, anthropic.MessageParam{
			Role: anthropic.F(role),
			Content: anthropic.F([]anthropic.ContentBlockParamUnion{
				anthropic.TextBlockParam{
					Type: anthropic.F(anthropic.TextBlockParamTypeText),
					Text: anthropic.F(msg.Content),
				},
			}),
		})
	}

	return result
}

func (a *Anthropic) parseResponse(resp *anthropic.Message) *ChatResponse {
	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text += block.Text
		}
	}

	return &ChatResponse{
		ID:         resp.ID,
		Text:       text,
		StopReason: string(resp.StopReason),
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}
}
