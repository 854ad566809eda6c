// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from the environment.
type Config struct {
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON     bool   `json:"log_json,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	Scoring    ScoringConfig    `json:"scoring"`
	Search     SearchConfig     `json:"search"`
	Extraction ExtractionConfig `json:"extraction"`
}

// ScoringConfig configures the scoring engine
type ScoringConfig struct {
	Weights          *types.CategoryWeights `json:"weights,omitempty"`
	NormalizeWeights bool                   `json:"normalize_weights,omitempty"`
	Workers          int                    `json:"workers,omitempty" validate:"gte=0"` // concurrent batch scorers
}

// SearchConfig configures profile search
type SearchConfig struct {
	DefaultLimit   int `json:"default_limit,omitempty" validate:"gte=0"`
	MaxSuggestions int `json:"max_suggestions,omitempty" validate:"gte=0"`
	FacetLimit     int `json:"facet_limit,omitempty" validate:"gte=0"`
}

// ExtractionConfig configures skill extraction
type ExtractionConfig struct {
	ContextWindow      int    `json:"context_window,omitempty" validate:"gte=0"` // characters kept around a mention
	MaxSuggestions     int    `json:"max_suggestions,omitempty" validate:"gte=0"`
	EnableAugmentation bool   `json:"enable_augmentation,omitempty"`
	Model              string `json:"model,omitempty"` // overrides the augmentation model
}

// Default returns the configuration used when no file or environment overrides it
func Default() Config {
	return Config{
		LogLevel: "info",
		Scoring: ScoringConfig{
			Workers: 4,
		},
		Search: SearchConfig{
			DefaultLimit:   50,
			MaxSuggestions: 8,
			FacetLimit:     10,
		},
		Extraction: ExtractionConfig{
			ContextWindow:  50,
			MaxSuggestions: 5,
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// envOverlay lists the environment variables that override file configuration
type envOverlay struct {
	LogLevel         string `env:"TALENT_LOG_LEVEL"`
	LogJSON          *bool  `env:"TALENT_LOG_JSON"`
	DatabaseURL      string `env:"DATABASE_URL"`
	APIKey           string `env:"GEMINI_API_KEY"`
	NormalizeWeights *bool  `env:"TALENT_NORMALIZE_WEIGHTS"`
	SearchLimit      *int   `env:"TALENT_SEARCH_LIMIT"`
}

// ApplyEnv overlays environment variables onto the configuration. Variables
// that are unset leave the current values alone.
func (c *Config) ApplyEnv() error {
	var overlay envOverlay
	if err := env.Parse(&overlay); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if overlay.LogJSON != nil {
		c.LogJSON = *overlay.LogJSON
	}
	if overlay.DatabaseURL != "" {
		c.DatabaseURL = overlay.DatabaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.NormalizeWeights != nil {
		c.Scoring.NormalizeWeights = *overlay.NormalizeWeights
	}
	if overlay.SearchLimit != nil {
		c.Search.DefaultLimit = *overlay.SearchLimit
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Scoring.Weights != nil {
		if err := c.Scoring.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: scoring weights: %w", err)
		}
		if c.Scoring.Weights.Sum() == 0 {
			return fmt.Errorf("config error: scoring weights must not all be zero")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.Scoring.Weights == nil && defaults.Scoring.Weights != nil {
		w := *defaults.Scoring.Weights
		result.Scoring.Weights = &w
	}

	// Int fields: use default if zero
	if result.Scoring.Workers == 0 {
		result.Scoring.Workers = defaults.Scoring.Workers
	}
	if result.Search.DefaultLimit == 0 {
		result.Search.DefaultLimit = defaults.Search.DefaultLimit
	}
	if result.Search.MaxSuggestions == 0 {
		result.Search.MaxSuggestions = defaults.Search.MaxSuggestions
	}
	if result.Search.FacetLimit == 0 {
		result.Search.FacetLimit = defaults.Search.FacetLimit
	}
	if result.Extraction.ContextWindow == 0 {
		result.Extraction.ContextWindow = defaults.Extraction.ContextWindow
	}
	if result.Extraction.MaxSuggestions == 0 {
		result.Extraction.MaxSuggestions = defaults.Extraction.MaxSuggestions
	}
	if result.Extraction.Model == "" {
		result.Extraction.Model = defaults.Extraction.Model
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (flags and environment win for bools)

	return result
}
