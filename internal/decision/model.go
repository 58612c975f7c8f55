package decision

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ariahq/aria/internal/provider"
)

// Model is the upstream first-layer classifier: it labels one utterance with
// the coarse categories the dispatcher routes on.
type Model interface {
	Decide(ctx context.Context, utterance string) ([]string, error)
}

const modelSystem = `You are a very accurate decision-making model for a voice assistant.
Classify the user's query into one or more labeled entries, comma separated.
Labels:
- "general <query>" for questions a chatbot can answer without live data.
- "realtime <query>" for questions that need up-to-date information.
- "open <app or site>", "close <app>", "play <song>", "system <action>", "content <topic>", "google search <topic>", "youtube search <topic>" for automation tasks.
- "generate image <prompt>" for image generation requests.
- "generate video <prompt>" for video generation requests.
- "exit" when the user is saying goodbye.
A combined query may produce several entries, e.g. "open chrome, general tell me about mahatma gandhi".
Respond with ONLY the comma-separated entries, nothing else.`

var validLabels = append([]string{
	"general", "realtime", "generate image", "generate video", "exit",
}, AutomationVerbs...)

// LLMModel labels utterances with an LLM provider. On any failure it degrades
// to a single general entry so the cycle can still produce an answer.
type LLMModel struct {
	provider provider.Provider
	model    string
	logger   *zap.Logger
}

// NewLLMModel creates the provider-backed decision model.
func NewLLMModel(p provider.Provider, model string, logger *zap.Logger) *LLMModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMModel{provider: p, model: model, logger: logger}
}

// Decide labels the utterance. The returned list preserves the model's entry
// order; entries with unknown labels are dropped.
func (m *LLMModel) Decide(ctx context.Context, utterance string) ([]string, error) {
	resp, err := m.provider.Chat(ctx, &provider.ChatRequest{
		Model:  m.model,
		System: modelSystem,
		Messages: []provider.Message{
			{Role: "user", Content: utterance},
		},
		MaxTokens: 200,
	})
	if err != nil {
		m.logger.Warn("decision model failed, degrading to general", zap.Error(err))
		return []string{"general " + utterance}, nil
	}

	entries := parseEntries(resp.Text)
	if len(entries) == 0 {
		m.logger.Warn("decision model returned no usable entries",
			zap.String("output", resp.Text))
		return []string{"general " + utterance}, nil
	}
	return entries, nil
}

func parseEntries(text string) []string {
	var entries []string
	for _, part := range strings.Split(text, ",") {
		entry := strings.ToLower(strings.TrimSpace(part))
		if entry == "" {
			continue
		}
		for _, label := range validLabels {
			if entry == label || strings.HasPrefix(entry, label+" ") {
				entries = append(entries, entry)
				break
			}
		}
	}
	return entries
}

// StaticModel returns a fixed decision list. Used in tests and by the
// `aria ask --label` flow.
type StaticModel []string

func (m StaticModel) Decide(ctx context.Context, utterance string) ([]string, error) {
	return m, nil
}
