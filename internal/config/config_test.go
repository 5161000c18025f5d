package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: 0.0.0.0
  port: 9090
storage:
  database_path: ./data/inkwell.db
ai:
  model: gpt-4o
  max_retries: 5
prompts:
  dir: ./prompts
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.AI.Model != "gpt-4o" || cfg.AI.MaxRetries != 5 {
		t.Errorf("ai config: got %+v", cfg.AI)
	}
	// Defaults fill unset fields.
	if cfg.AI.BaseURL == "" || cfg.AI.MaxTokens == 0 {
		t.Errorf("defaults not applied: %+v", cfg.AI)
	}
	if cfg.Analysis.LongSentenceWords != 25 {
		t.Errorf("analysis defaults: got %+v", cfg.Analysis)
	}
	// ./-relative paths resolve against the config directory.
	if cfg.Storage.DatabasePath != filepath.Join(dir, "data/inkwell.db") {
		t.Errorf("database path: got %s", cfg.Storage.DatabasePath)
	}
	if cfg.Prompts.Dir != filepath.Join(dir, "prompts") {
		t.Errorf("prompts dir: got %s", cfg.Prompts.Dir)
	}
	if !cfg.Prompts.WatchOrDefault() {
		t.Error("watch should default to true when a prompts dir is set")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("server: [not a map"), 0600)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.AI.MaxRetries != 3 || cfg.AI.RetryBackoffSeconds != 2 {
		t.Errorf("retry defaults: %+v", cfg.AI)
	}
	if cfg.AI.APIKeyEnv != "INKWELL_API_KEY" {
		t.Errorf("api key env default: %q", cfg.AI.APIKeyEnv)
	}
	if cfg.Samples.TTLSeconds != 300 {
		t.Errorf("samples ttl default: %d", cfg.Samples.TTLSeconds)
	}
	if cfg.Prompts.WatchOrDefault() {
		t.Error("watch should default to false without a prompts dir")
	}
}
