package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from interview text",
	Long:  "Maps free text onto canonical skills with proficiency, confidence and tenure. With --profile-id the extracted skills are merged into that profile in the pool.",
	RunE:  runExtract,
}

var (
	extractText      string
	extractFile      string
	extractRole      string
	extractProfileID string
	extractOutput    string
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Text to analyse")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text file to analyse")
	extractCmd.Flags().StringVar(&extractRole, "role", skills.RoleCandidate, "Speaker role of the text (candidate or interviewer)")
	extractCmd.Flags().StringVar(&extractProfileID, "profile-id", "", "Merge the extracted skills into this pool profile")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output ExtractionResult JSON (default stdout)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := extractInput()
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ctx := context.Background()
	augmenter, closeClient, err := a.augmenter(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	extractor := skills.NewExtractor(nil, augmenter, skills.Options{
		ContextWindow:  a.cfg.Extraction.ContextWindow,
		MaxSuggestions: a.cfg.Extraction.MaxSuggestions,
	}, a.logger)

	result := extractor.ExtractFromMessage(ctx, text, extractRole)
	a.logger.Info("extraction complete", zap.Int("skills", len(result.Skills)), zap.Float64("confidence", result.Confidence))
	if a.printer != nil {
		a.printer.PrintExtraction(result)
	}

	if extractProfileID != "" {
		if err := mergeIntoProfile(a, extractProfileID, result.Skills); err != nil {
			return err
		}
	}

	return emitJSON(result, extractOutput)
}

func extractInput() (string, error) {
	switch {
	case extractText != "" && extractFile != "":
		return "", fmt.Errorf("use only one of --text and --file")
	case extractText != "":
		return extractText, nil
	case extractFile != "":
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %s: %w", extractFile, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("one of --text or --file is required")
	}
}

// augmenter returns the LLM augmenter when augmentation is enabled and an API key
// is configured. The returned close function is always safe to call.
func (a *app) augmenter(ctx context.Context) (skills.Augmenter, func(), error) {
	noop := func() {}
	if !a.cfg.Extraction.EnableAugmentation {
		return nil, noop, nil
	}
	if strings.TrimSpace(a.cfg.APIKey) == "" {
		a.logger.Warn("skill augmentation enabled but no API key configured, skipping")
		return nil, noop, nil
	}

	client, err := llm.NewClient(ctx, a.llmConfig(), a.cfg.APIKey)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return skills.NewLLMAugmenter(client, ""), func() { _ = client.Close() }, nil
}

// llmConfig returns the model configuration for augmentation, applying the
// configured model override to the tier the augmenter uses
func (a *app) llmConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if model := strings.TrimSpace(a.cfg.Extraction.Model); model != "" {
		cfg = cfg.WithModel(llm.TierLite, model)
	}
	return cfg
}

// mergeIntoProfile folds extracted skills into a pool profile and saves the pool
func mergeIntoProfile(a *app, id string, extracted []types.Skill) error {
	s, err := a.openPool(false)
	if err != nil {
		return err
	}
	profile, err := s.GetProfile(id)
	if err != nil {
		return err
	}

	profile.Skills = skills.MergeSkills(profile.Skills, extracted)
	if _, err := s.UpdateProfile(profile); err != nil {
		return err
	}
	a.logger.Info("skills merged into profile", zap.String("profile_id", id), zap.Int("skills", len(profile.Skills)))
	return a.savePool(s)
}
