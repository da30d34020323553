// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"fertcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// LLM contains generation-service configuration
	LLM LLMConfig `json:"llm"`

	// Pricing contains price lookup configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// LLMConfig contains settings for the generative-model service
type LLMConfig struct {
	// Model is the model identifier sent to the service
	Model string `json:"model"`

	// Temperature controls output randomness (low favors consistency)
	Temperature float64 `json:"temperature"`

	// CandidateCount is the number of candidates requested
	CandidateCount int `json:"candidate_count"`

	// TimeoutSeconds bounds the generation round trip
	TimeoutSeconds int `json:"timeout_seconds"`

	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `json:"api_key_env"`
}

// Timeout returns the generation timeout as a duration
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PricingConfig contains price-lookup settings
type PricingConfig struct {
	// Currency is the quote currency
	Currency string `json:"currency"`

	// DefaultRegion is used when a lookup omits the region
	DefaultRegion string `json:"default_region"`

	// CacheEnabled wraps the price source with a TTL cache
	CacheEnabled bool `json:"cache_enabled"`

	// CacheTTLSeconds is how long to cache quotes
	CacheTTLSeconds int `json:"cache_ttl_seconds"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowMeta includes the _meta block in CLI output
	ShowMeta bool `json:"show_meta"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		LLM: LLMConfig{
			Model:          "gemini-1.5-flash",
			Temperature:    0.4,
			CandidateCount: 1,
			TimeoutSeconds: 60,
			APIKeyEnv:      "GEMINI_API_KEY",
		},
		Pricing: PricingConfig{
			Currency:        "INR",
			DefaultRegion:   "",
			CacheEnabled:    false,
			CacheTTLSeconds: 3600,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowMeta:      false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
