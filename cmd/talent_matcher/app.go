package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/logging"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/store"
)

// app bundles what every subcommand needs
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	engine  *scoring.Engine
	printer *observability.Printer
}

// loadApp resolves configuration (file, then environment, then defaults) and
// builds the logger and scoring engine.
func loadApp() (*app, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg = cfg.MergeWithDefaults(config.Default())
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		engine: scoring.NewEngine(scoring.Options{NormalizeWeights: cfg.Scoring.NormalizeWeights}, nil, logger),
	}
	if verbose {
		a.printer = observability.NewPrinter(os.Stderr)
	}
	return a, nil
}

func (a *app) newStore() *store.Store {
	return store.New(store.Config{
		DefaultLimit:   a.cfg.Search.DefaultLimit,
		MaxSuggestions: a.cfg.Search.MaxSuggestions,
		FacetLimit:     a.cfg.Search.FacetLimit,
	}, a.engine, a.logger)
}

// openPool loads the pool file into a fresh store. A missing file yields an
// empty store when allowMissing is set.
func (a *app) openPool(allowMissing bool) (*store.Store, error) {
	s := a.newStore()

	data, err := os.ReadFile(poolPath)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			a.logger.Debug("pool file not found, starting empty", zap.String("path", poolPath))
			return s, nil
		}
		return nil, fmt.Errorf("failed to read pool file %s: %w", poolPath, err)
	}

	n, err := s.ImportProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load pool %s: %w", poolPath, err)
	}
	a.logger.Debug("pool loaded", zap.String("path", poolPath), zap.Int("profiles", n))
	return s, nil
}

// savePool writes the store back to the pool file as a JSON export
func (a *app) savePool(s *store.Store) error {
	data, err := s.ExportProfiles(store.FormatJSON)
	if err != nil {
		return err
	}
	if err := writeFile(poolPath, data); err != nil {
		return err
	}
	a.logger.Debug("pool saved", zap.String("path", poolPath), zap.Int("profiles", s.Count()))
	return nil
}

// emitJSON writes v as indented JSON to out, or stdout when out is empty
func emitJSON(v any, out string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	return emit(append(data, '\n'), out)
}

func emit(data []byte, out string) error {
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return writeFile(out, data)
}

func writeFile(path string, data []byte) error {
	// Ensure output directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readJSONFile decodes a JSON file into v
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
