// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Chat
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key for the support chat
	ChatModel string `json:"chat_model,omitempty"` // Gemini model name

	// Catalog overlays
	ExtraBooks string `json:"extra_books,omitempty"` // Path to an additional book catalog JSON file
	ExtraMusic string `json:"extra_music,omitempty"` // Path to an additional music catalog JSON file

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.ExtraBooks != "" {
		if _, err := os.Stat(c.ExtraBooks); os.IsNotExist(err) {
			return fmt.Errorf("config error: extra book catalog not found: %s", c.ExtraBooks)
		}
	}
	if c.ExtraMusic != "" {
		if _, err := os.Stat(c.ExtraMusic); os.IsNotExist(err) {
			return fmt.Errorf("config error: extra music catalog not found: %s", c.ExtraMusic)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ChatModel == "" {
		result.ChatModel = defaults.ChatModel
	}
	if result.ExtraBooks == "" {
		result.ExtraBooks = defaults.ExtraBooks
	}
	if result.ExtraMusic == "" {
		result.ExtraMusic = defaults.ExtraMusic
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields cannot distinguish unset from false, so they are not
	// merged; CLI flags always win for bools.

	return result
}
