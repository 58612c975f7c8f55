// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the aria configuration.
type Config struct {
	Identity   IdentityConfig            `toml:"identity"`
	Provider   map[string]ProviderConfig `toml:"provider"`
	Capability CapabilityConfig          `toml:"capability"`
	Scheduler  SchedulerConfig           `toml:"scheduler"`
	Logging    LoggingConfig             `toml:"logging"`
}

// IdentityConfig names the two parties of the conversation.
type IdentityConfig struct {
	Username  string `toml:"username"`
	Assistant string `toml:"assistant"`
}

// ProviderConfig holds LLM provider settings.
type ProviderConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// CapabilityConfig holds API keys for the real-time data capabilities.
type CapabilityConfig struct {
	OpenWeatherMapKey string `toml:"openweathermap_key"`
	GNewsKey          string `toml:"gnews_key"`
	CricAPIKey        string `toml:"cricapi_key"`
	AlphaVantageKey   string `toml:"alphavantage_key"`
	HuggingFaceToken  string `toml:"huggingface_token"`
}

// SchedulerConfig holds cycle loop settings.
type SchedulerConfig struct {
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// Interval returns the scheduler poll interval.
func (s SchedulerConfig) Interval() time.Duration {
	if s.PollIntervalMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(s.PollIntervalMS) * time.Millisecond
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := ConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.expandPaths()

	return cfg, nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if p := os.Getenv("ARIA_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(StateDir(), "config.toml")
}

// StateDir returns the aria state directory.
func StateDir() string {
	if p := os.Getenv("ARIA_STATE_DIR"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aria")
}

// DataDir returns the directory for generated artifacts (transcript, images).
func DataDir() string {
	return filepath.Join(StateDir(), "data")
}

// HandoffDir returns the directory for automation hand-off files.
func HandoffDir() string {
	return filepath.Join(StateDir(), "handoff")
}

// LogsDir returns the logs directory.
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}

// TranscriptPath returns the path of the chat transcript log.
func TranscriptPath() string {
	return filepath.Join(DataDir(), "chatlog.json")
}

func defaultConfig() *Config {
	return &Config{
		Identity: IdentityConfig{
			Username:  "User",
			Assistant: "Aria",
		},
		Provider: make(map[string]ProviderConfig),
		Scheduler: SchedulerConfig{
			PollIntervalMS: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c *Config) applyEnv() {
	// Groq
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		p := c.Provider["groq"]
		p.APIKey = key
		c.Provider["groq"] = p
	}

	// Anthropic
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		p := c.Provider["anthropic"]
		p.APIKey = key
		c.Provider["anthropic"] = p
	}

	// Capability keys
	if key := os.Getenv("OPENWEATHERMAP_API_KEY"); key != "" {
		c.Capability.OpenWeatherMapKey = key
	}
	if key := os.Getenv("GNEWS_API_KEY"); key != "" {
		c.Capability.GNewsKey = key
	}
	if key := os.Getenv("CRICAPI_KEY"); key != "" {
		c.Capability.CricAPIKey = key
	}
	if key := os.Getenv("ALPHAVANTAGE_API_KEY"); key != "" {
		c.Capability.AlphaVantageKey = key
	}
	if key := os.Getenv("HF_TOKEN"); key != "" {
		c.Capability.HuggingFaceToken = key
	}

	// Model override
	if model := os.Getenv("ARIA_MODEL"); model != "" {
		p := c.Provider["groq"]
		p.Model = model
		c.Provider["groq"] = p
	}
}

func (c *Config) expandPaths() {
	home, _ := os.UserHomeDir()

	expand := func(p string) string {
		if strings.HasPrefix(p, "~/") {
			return filepath.Join(home, p[2:])
		}
		if strings.HasPrefix(p, "$HOME/") {
			return filepath.Join(home, p[6:])
		}
		return p
	}

	c.Logging.File = expand(c.Logging.File)
}

// Save writes the config to file.
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// EnsureDirs creates necessary directories.
func EnsureDirs() error {
	dirs := []string{
		StateDir(),
		DataDir(),
		HandoffDir(),
		LogsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return nil
}
