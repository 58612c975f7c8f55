package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ARIA_STATE_DIR", t.TempDir())
	t.Setenv("ARIA_CONFIG", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Identity.Username != "User" || cfg.Identity.Assistant != "Aria" {
		t.Errorf("identity defaults = %+v", cfg.Identity)
	}
	if got := cfg.Scheduler.Interval(); got != 100*time.Millisecond {
		t.Errorf("default interval = %v, want 100ms", got)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logging.Level)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[identity]
username = "Sam"
assistant = "Jeeves"

[provider.groq]
api_key = "from-file"
model = "file-model"

[scheduler]
poll_interval_ms = 250
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ARIA_STATE_DIR", dir)
	t.Setenv("ARIA_CONFIG", path)
	t.Setenv("GROQ_API_KEY", "from-env")
	t.Setenv("ARIA_MODEL", "env-model")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Identity.Username != "Sam" || cfg.Identity.Assistant != "Jeeves" {
		t.Errorf("identity = %+v", cfg.Identity)
	}
	if got := cfg.Scheduler.Interval(); got != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", got)
	}

	// Environment wins over the file.
	groq := cfg.Provider["groq"]
	if groq.APIKey != "from-env" {
		t.Errorf("groq api key = %q, want env override", groq.APIKey)
	}
	if groq.Model != "env-model" {
		t.Errorf("groq model = %q, want env override", groq.Model)
	}
}

func TestStateDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ARIA_STATE_DIR", dir)

	if got := StateDir(); got != dir {
		t.Errorf("StateDir() = %q, want %q", got, dir)
	}
	if got := TranscriptPath(); got != filepath.Join(dir, "data", "chatlog.json") {
		t.Errorf("TranscriptPath() = %q", got)
	}
}
