package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"log_level": "debug",
		"database_url": "postgres://localhost/talent",
		"scoring": {
			"weights": {"technical": 0.5, "communication": 0.2, "experience": 0.2, "cultural": 0.05, "behavioral": 0.05, "education": 0},
			"normalize_weights": true,
			"workers": 8
		},
		"search": {"default_limit": 25},
		"extraction": {"context_window": 80, "enable_augmentation": true, "model": "gemini-2.5-flash"}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://localhost/talent", cfg.DatabaseURL)
	require.NotNil(t, cfg.Scoring.Weights)
	assert.InDelta(t, 0.5, cfg.Scoring.Weights.Technical, 1e-9)
	assert.True(t, cfg.Scoring.NormalizeWeights)
	assert.Equal(t, 8, cfg.Scoring.Workers)
	assert.Equal(t, 25, cfg.Search.DefaultLimit)
	assert.Equal(t, 80, cfg.Extraction.ContextWindow)
	assert.True(t, cfg.Extraction.EnableAugmentation)
	assert.Equal(t, "gemini-2.5-flash", cfg.Extraction.Model)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Default()},
		{name: "unknown log level", cfg: Config{LogLevel: "loud"}, wantErr: "config error"},
		{name: "negative limit", cfg: Config{Search: SearchConfig{DefaultLimit: -1}}, wantErr: "config error"},
		{name: "negative workers", cfg: Config{Scoring: ScoringConfig{Workers: -2}}, wantErr: "config error"},
		{
			name:    "negative weight",
			cfg:     Config{Scoring: ScoringConfig{Weights: &types.CategoryWeights{Technical: -0.1}}},
			wantErr: "Technical",
		},
		{
			name:    "zero weights",
			cfg:     Config{Scoring: ScoringConfig{Weights: &types.CategoryWeights{}}},
			wantErr: "must not all be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TALENT_LOG_LEVEL", "warn")
	t.Setenv("TALENT_LOG_JSON", "true")
	t.Setenv("DATABASE_URL", "postgres://env/talent")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("TALENT_NORMALIZE_WEIGHTS", "true")
	t.Setenv("TALENT_SEARCH_LIMIT", "20")

	cfg := Config{LogLevel: "debug", APIKey: "file-key"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "postgres://env/talent", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.True(t, cfg.Scoring.NormalizeWeights)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	for _, key := range []string{"TALENT_LOG_LEVEL", "TALENT_LOG_JSON", "DATABASE_URL", "GEMINI_API_KEY", "TALENT_NORMALIZE_WEIGHTS", "TALENT_SEARCH_LIMIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Config{LogLevel: "debug", LogJSON: true, APIKey: "file-key", Search: SearchConfig{DefaultLimit: 10}}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("TALENT_SEARCH_LIMIT", "lots")

	cfg := Default()
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestMergeWithDefaults(t *testing.T) {
	weights := types.CategoryWeights{Technical: 1}
	defaults := Default()
	defaults.Scoring.Weights = &weights

	cfg := Config{LogLevel: "error", Search: SearchConfig{DefaultLimit: 5}}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "error", merged.LogLevel)
	assert.Equal(t, 5, merged.Search.DefaultLimit)
	assert.Equal(t, 8, merged.Search.MaxSuggestions)
	assert.Equal(t, 10, merged.Search.FacetLimit)
	assert.Equal(t, 4, merged.Scoring.Workers)
	assert.Equal(t, 50, merged.Extraction.ContextWindow)
	assert.Equal(t, 5, merged.Extraction.MaxSuggestions)
	require.NotNil(t, merged.Scoring.Weights)
	assert.Equal(t, weights, *merged.Scoring.Weights)

	// The merged weights are a copy
	merged.Scoring.Weights.Technical = 2
	assert.InDelta(t, 1.0, weights.Technical, 1e-9)

	// The receiver is untouched
	assert.Equal(t, 0, cfg.Search.MaxSuggestions)
}
