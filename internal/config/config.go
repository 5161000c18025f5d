// Package config provides configuration loading and structs for the Inkwell server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	AI       AIConfig       `yaml:"ai"`
	Prompts  PromptsConfig  `yaml:"prompts"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Samples  SamplesConfig  `yaml:"samples"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds paths for the database and the archive index.
type StorageConfig struct {
	DatabasePath   string `yaml:"database_path"`
	BleveIndexPath string `yaml:"bleve_index_path"`
}

// AIConfig holds settings for the hosted language-model API. The API key
// itself is never stored in the config file; APIKeyEnv names the
// environment variable that carries it.
type AIConfig struct {
	BaseURL             string  `yaml:"base_url"`
	Model               string  `yaml:"model"`
	APIKeyEnv           string  `yaml:"api_key_env"`
	Temperature         float64 `yaml:"temperature"`
	MaxTokens           int     `yaml:"max_tokens"`
	MaxRetries          int     `yaml:"max_retries"`
	RetryBackoffSeconds int     `yaml:"retry_backoff_seconds"`
	TimeoutSeconds      int     `yaml:"timeout_seconds"`
}

// PromptsConfig holds prompt template settings.
type PromptsConfig struct {
	Dir   string `yaml:"dir"`
	Watch *bool  `yaml:"watch"`
}

// WatchOrDefault returns whether to hot-reload templates; defaults to true
// when a prompts directory is configured.
func (p *PromptsConfig) WatchOrDefault() bool {
	if p.Watch != nil {
		return *p.Watch
	}
	return p.Dir != ""
}

// AnalysisConfig holds readability-analysis thresholds.
type AnalysisConfig struct {
	LongSentenceWords int `yaml:"long_sentence_words"`
	MaxLongSentences  int `yaml:"max_long_sentences"`
}

// SamplesConfig holds settings for the sample-text store.
type SamplesConfig struct {
	Dir        string `yaml:"dir"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Storage.BleveIndexPath = expandPath(cfg.Storage.BleveIndexPath, configDir)
	if cfg.Prompts.Dir != "" {
		cfg.Prompts.Dir = expandPath(cfg.Prompts.Dir, configDir)
	}
	if cfg.Samples.Dir != "" {
		cfg.Samples.Dir = expandPath(cfg.Samples.Dir, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
