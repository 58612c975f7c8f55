package commands

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ariahq/aria/internal/capability"
	"github.com/ariahq/aria/internal/channel"
	"github.com/ariahq/aria/internal/config"
	"github.com/ariahq/aria/internal/decision"
	"github.com/ariahq/aria/internal/dispatcher"
	"github.com/ariahq/aria/internal/intent"
	"github.com/ariahq/aria/internal/logging"
	"github.com/ariahq/aria/internal/provider"
	"github.com/ariahq/aria/internal/status"
	"github.com/ariahq/aria/internal/transcript"
)

// Render modes for buildRuntime.
const (
	renderPlain  = "plain"
	renderStyled = "styled"
	renderNull   = "null"
)

// runtime is one fully wired assistant: board, dispatcher, and everything
// underneath them.
type runtime struct {
	cfg        *config.Config
	logger     *zap.Logger
	board      *status.Board
	dispatcher *dispatcher.Dispatcher
}

// buildRuntime wires the assistant from config. mode selects the render
// surface; model overrides the decision model when non-nil (used by
// `aria ask --label`). The returned terminal doubles as the stdio listener.
func buildRuntime(mode string, model decision.Model, in io.Reader, out io.Writer) (*runtime, *channel.Terminal, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := config.EnsureDirs(); err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Logging.File)
	if err != nil {
		return nil, nil, err
	}

	p, modelID, err := buildProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	board := status.NewBoard()
	log := transcript.NewLog(config.TranscriptPath())

	username := cfg.Identity.Username
	assistant := cfg.Identity.Assistant

	classifier := intent.NewClassifier(intent.NewLLMFallback(p, modelID), logger)
	engine := capability.NewEngine(capability.EngineConfig{
		Classifier: classifier,
		Weather:    capability.NewOpenWeatherClient(cfg.Capability.OpenWeatherMapKey),
		News:       capability.NewGNewsClient(cfg.Capability.GNewsKey),
		Cricket:    capability.NewCricAPIClient(cfg.Capability.CricAPIKey),
		Stocks:     capability.NewAlphaVantageClient(cfg.Capability.AlphaVantageKey),
		Trending:   capability.NewGoogleTrendsClient(""),
		Scraper:    capability.NewWebScraper(),
		Provider:   p,
		Model:      modelID,
		Log:        log,
		Username:   username,
		Assistant:  assistant,
		Logger:     logger,
	})

	caps := capability.Set{
		Chat:       capability.NewChatbot(p, modelID, log, username, assistant),
		Search:     engine,
		Automation: capability.NewFileAutomation(config.HandoffDir(), logger),
		Image: capability.NewHFImageClient(cfg.Capability.HuggingFaceToken, "",
			config.DataDir(), config.HandoffDir(), logger),
		Video: capability.NewFileVideo(config.HandoffDir(), logger),
	}

	terminal := channel.NewTerminal(in, out)

	var renderer channel.Renderer
	switch mode {
	case renderStyled:
		renderer = channel.NewStyled(out, username, assistant)
	case renderNull:
		renderer = channel.NullRenderer{}
	default:
		renderer = terminal
	}

	if model == nil {
		model = decision.NewLLMModel(p, modelID, logger)
	}

	d := dispatcher.New(
		model, caps, board, renderer, channel.NullSpeaker{},
		username, assistant, logger,
	)

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		board:      board,
		dispatcher: d,
	}, terminal, nil
}

// buildProvider picks the first configured provider, Groq before Anthropic.
func buildProvider(cfg *config.Config) (provider.Provider, string, error) {
	if groq := cfg.Provider["groq"]; groq.APIKey != "" {
		p, err := provider.NewGroq(provider.GroqConfig{
			APIKey:  groq.APIKey,
			BaseURL: groq.BaseURL,
			Model:   groq.Model,
		})
		if err != nil {
			return nil, "", err
		}
		return p, groq.Model, nil
	}

	if anth := cfg.Provider["anthropic"]; anth.APIKey != "" {
		p, err := provider.NewAnthropic(provider.AnthropicConfig{
			APIKey:  anth.APIKey,
			BaseURL: anth.BaseURL,
			Model:   anth.Model,
		})
		if err != nil {
			return nil, "", err
		}
		return p, anth.Model, nil
	}

	return nil, "", fmt.Errorf("no provider configured: set GROQ_API_KEY or ANTHROPIC_API_KEY")
}
