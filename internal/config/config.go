// Package config provides configuration loading and validation for the engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the engine configuration. It can be loaded from a JSON
// file and overlaid with environment variables; missing values use defaults.
type Config struct {
	// Collaborators
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (required)
	RedisURL    string `json:"redis_url,omitempty"`    // Optional hot-cache; empty disables Redis

	// Narrative generation
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`  // Empty disables the narrative path
	Model          string `json:"model,omitempty"`           // Override the default model
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Narrative call timeout

	// Scoring
	MetroCities []string `json:"metro_cities,omitempty"` // City-tier list for location scoring

	// Behavior
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding
	Verbose bool `json:"verbose,omitempty"`  // Debug-level logging
}

// Load reads configuration from an optional JSON file and then applies
// environment variable overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Env values win
// over file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("MATCH_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("MATCH_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = seconds
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required (or set DATABASE_URL)")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}
