package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ariahq/aria/internal/provider"
)

const fallbackSystem = `You classify user requests for a voice assistant.
Return ONLY JSON: {"intent": "weather"|"news"|"cricket"|"stocks"|"trending"|"none", "parameter": "string"|null}
No prose, no markdown fences, nothing but the JSON object.`

var validTags = map[Tag]bool{
	TagWeather:  true,
	TagNews:     true,
	TagCricket:  true,
	TagStocks:   true,
	TagTrending: true,
	TagNone:     true,
}

// LLMFallback classifies via an LLM provider, constrained to the six tags.
type LLMFallback struct {
	provider provider.Provider
	model    string
}

// NewLLMFallback creates the provider-backed fallback. model may be empty to
// use the provider default.
func NewLLMFallback(p provider.Provider, model string) *LLMFallback {
	return &LLMFallback{provider: p, model: model}
}

// Classify asks the provider for a tag and parameter. Malformed output is an
// error; the caller degrades it to TagNone.
func (f *LLMFallback) Classify(ctx context.Context, utterance string) (Intent, error) {
	resp, err := f.provider.Chat(ctx, &provider.ChatRequest{
		Model:  f.model,
		System: fallbackSystem,
		Messages: []provider.Message{
			{Role: "user", Content: utterance},
		},
		MaxTokens: 50,
	})
	if err != nil {
		return None, err
	}

	return parseFallback(resp.Text)
}

func parseFallback(text string) (Intent, error) {
	// Tolerate stray prose around the object.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return None, fmt.Errorf("no JSON object in fallback output: %q", text)
	}

	var out struct {
		Intent    string  `json:"intent"`
		Parameter *string `json:"parameter"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return None, fmt.Errorf("malformed fallback output: %w", err)
	}

	tag := Tag(strings.ToLower(strings.TrimSpace(out.Intent)))
	if !validTags[tag] {
		return None, fmt.Errorf("fallback returned unknown tag %q", out.Intent)
	}

	result := Intent{Tag: tag}
	if out.Parameter != nil {
		result.Parameter = strings.TrimSpace(*out.Parameter)
	}
	return result, nil
}
