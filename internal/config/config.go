// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Sources
	Profiles    string `json:"profiles,omitempty"`     // Path to the profile bank JSON file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Ranking
	MinScore int `json:"min_score,omitempty"` // Lowest overall score kept in ranked output
	Limit    int `json:"limit,omitempty"`     // Maximum matches returned (0 = all)
	Workers  int `json:"workers,omitempty"`   // Parallel scoring goroutines (0 or 1 = sequential)

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Logging
	Debug    bool `json:"debug,omitempty"`     // Enable debug-level logs
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON logs instead of console output
}

// DefaultPort is used by serve when neither flag nor config sets a port
const DefaultPort = 8080

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
// Required fields are left to CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Profiles != "" {
		if _, err := os.Stat(c.Profiles); os.IsNotExist(err) {
			return fmt.Errorf("config error: profiles file not found: %s", c.Profiles)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profiles == "" {
		result.Profiles = defaults.Profiles
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bools cannot distinguish unset from false; CLI flags always win
	return result
}
