package capability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ariahq/aria/internal/intent"
	"github.com/ariahq/aria/internal/provider"
	"github.com/ariahq/aria/internal/transcript"
)

// Engine answers real-time queries. It routes classified intents to the
// dedicated API clients and falls back to web search plus the answering model
// for everything else. Every answer is appended to the transcript so the
// conversational capability sees it as history.
type Engine struct {
	classifier *intent.Classifier
	weather    Weather
	news       News
	cricket    Cricket
	stocks     Stocks
	trending   Trending
	scraper    *WebScraper
	provider   provider.Provider
	model      string
	log        *transcript.Log
	username   string
	assistant  string
	logger     *zap.Logger
}

// EngineConfig wires an Engine.
type EngineConfig struct {
	Classifier *intent.Classifier
	Weather    Weather
	News       News
	Cricket    Cricket
	Stocks     Stocks
	Trending   Trending
	Scraper    *WebScraper
	Provider   provider.Provider
	Model      string
	Log        *transcript.Log
	Username   string
	Assistant  string
	Logger     *zap.Logger
}

// NewEngine creates the real-time capability.
func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		classifier: cfg.Classifier,
		weather:    cfg.Weather,
		news:       cfg.News,
		cricket:    cfg.Cricket,
		stocks:     cfg.Stocks,
		trending:   cfg.Trending,
		scraper:    cfg.Scraper,
		provider:   cfg.Provider,
		model:      cfg.Model,
		log:        cfg.Log,
		username:   cfg.Username,
		assistant:  cfg.Assistant,
		logger:     logger,
	}
}

// Search answers the query with live data.
func (e *Engine) Search(ctx context.Context, query string) (string, error) {
	// "What's happening in the world" combines trending topics with world
	// headlines instead of a single API.
	if strings.Contains(strings.ToLower(query), "happening in the world") {
		if answer, ok := e.worldBriefing(ctx, query); ok {
			return answer, nil
		}
	}

	if it := e.classifier.Classify(ctx, query); it.Tag != intent.TagNone {
		answer, err := e.invoke(ctx, it)
		if err == nil {
			if err := e.log.Append(query, answer); err != nil {
				return "", fmt.Errorf("realtime: failed to append transcript: %w", err)
			}
			return answer, nil
		}
		e.logger.Warn("realtime API failed, degrading to web search",
			zap.String("intent", string(it.Tag)), zap.Error(err))
	}

	return e.searchAnswer(ctx, query)
}

// invoke routes one classified intent to its API client.
func (e *Engine) invoke(ctx context.Context, it intent.Intent) (string, error) {
	switch it.Tag {
	case intent.TagWeather:
		return e.weather.Current(ctx, it.Parameter)
	case intent.TagNews:
		return e.news.Headlines(ctx, it.Parameter)
	case intent.TagCricket:
		return e.cricket.Scores(ctx, it.Parameter)
	case intent.TagStocks:
		return e.stocks.Quote(ctx, it.Parameter)
	case intent.TagTrending:
		return e.trending.Topics(ctx)
	default:
		return "", fmt.Errorf("realtime: no capability for intent %q", it.Tag)
	}
}

// worldBriefing combines trending topics and world headlines. Either half is
// optional; ok is false only when both fail.
func (e *Engine) worldBriefing(ctx context.Context, query string) (string, bool) {
	var parts []string

	if topics, err := e.trending.Topics(ctx); err == nil {
		parts = append(parts, topics)
	} else {
		e.logger.Warn("world briefing: trending failed", zap.Error(err))
	}

	if headlines, err := e.news.Headlines(ctx, "world"); err == nil {
		parts = append(parts, headlines)
	} else {
		e.logger.Warn("world briefing: news failed", zap.Error(err))
	}

	if len(parts) == 0 {
		return "", false
	}

	answer := strings.Join(parts, "\n\n")
	if err := e.log.Append(query, answer); err != nil {
		e.logger.Warn("world briefing: transcript append failed", zap.Error(err))
	}
	return answer, true
}

func (e *Engine) systemPrompt() string {
	return fmt.Sprintf(`Hello, I am %s. You are a very accurate and advanced AI assistant named %s with real-time up-to-date information from the internet.
*** Provide answers in a professional way, with proper grammar and punctuation. ***
*** Answer the question using the provided search results, and mention nothing about the search itself. ***`,
		e.username, e.assistant)
}

// searchAnswer is the fallback path: scrape the web, then let the model
// answer over the results and the transcript history.
func (e *Engine) searchAnswer(ctx context.Context, query string) (string, error) {
	results, err := e.scraper.Search(ctx, query)
	if err != nil {
		return "", err
	}

	entries, err := e.log.Read()
	if err != nil {
		return "", fmt.Errorf("realtime: failed to read transcript: %w", err)
	}

	messages := make([]provider.Message, 0, len(entries)+1)
	for _, entry := range entries {
		messages = append(messages, provider.Message{Role: entry.Role, Content: entry.Content})
	}
	messages = append(messages, provider.Message{Role: "user", Content: query})

	resp, err := e.provider.Chat(ctx, &provider.ChatRequest{
		Model: e.model,
		System: e.systemPrompt() + "\n" + RealtimeInformation(time.Now()) +
			"\n" + results,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("realtime: %w", err)
	}

	answer := AnswerModifier(resp.Text)
	if err := e.log.Append(query, answer); err != nil {
		return "", fmt.Errorf("realtime: failed to append transcript: %w", err)
	}
	return answer, nil
}
