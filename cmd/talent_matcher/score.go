package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score pool profiles against a job requirement",
	Long:  "Scores one profile (--profile-id) or every profile (--all) in the pool against a job requirement and stores the results back into the pool.",
	RunE:  runScore,
}

var (
	scoreProfileID   string
	scoreAll         bool
	scoreRequirement string
	scoreRole        string
	scoreLevel       string
	scoreWeights     string
	scoreOutput      string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreProfileID, "profile-id", "", "ID of the profile to score")
	scoreCmd.Flags().BoolVar(&scoreAll, "all", false, "Score every profile in the pool")
	scoreCmd.Flags().StringVarP(&scoreRequirement, "requirement", "r", "", "Path to a JobRequirement JSON file")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "", "Role template used when no requirement file is given")
	scoreCmd.Flags().StringVar(&scoreLevel, "level", "", "Seniority level used with --role")
	scoreCmd.Flags().StringVarP(&scoreWeights, "weights", "w", "", "Path to a CategoryWeights JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoringResult JSON (default stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if (scoreProfileID == "") == !scoreAll {
		return fmt.Errorf("exactly one of --profile-id and --all is required")
	}

	req, err := resolveRequirement(scoreRequirement, scoreRole, scoreLevel)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	weights, err := a.weights(scoreWeights)
	if err != nil {
		return err
	}

	s, err := a.openPool(false)
	if err != nil {
		return err
	}

	if scoreAll {
		results, err := scoreAllProfiles(a, s, req, weights)
		if err != nil {
			return err
		}
		if err := a.savePool(s); err != nil {
			return err
		}
		return emitJSON(results, scoreOutput)
	}

	result, err := s.ScoreProfile(scoreProfileID, req, weights)
	if err != nil {
		return err
	}
	a.logger.Info("profile scored",
		zap.String("profile_id", scoreProfileID),
		zap.Float64("overall", result.OverallScore),
		zap.Float64("confidence", result.Confidence))
	if a.printer != nil {
		a.printer.PrintScoringResult(result)
	}

	if err := a.savePool(s); err != nil {
		return err
	}
	return emitJSON(result, scoreOutput)
}

func scoreAllProfiles(a *app, s storeWriter, req *types.JobRequirement, weights *types.CategoryWeights) ([]*types.ScoringResult, error) {
	profiles := s.List()
	results, err := a.engine.ScoreBatch(context.Background(), profiles, req, weights, a.cfg.Scoring.Workers)
	if err != nil {
		return nil, err
	}
	for i, r := range results {
		if err := s.StoreScoringResult(profiles[i].ID, r); err != nil {
			return nil, err
		}
	}
	a.logger.Info("pool scored", zap.Int("profiles", len(results)), zap.Int("workers", a.cfg.Scoring.Workers))
	return results, nil
}

// storeWriter is the part of the store batch scoring needs
type storeWriter interface {
	List() []*types.CandidateProfile
	StoreScoringResult(id string, result *types.ScoringResult) error
}

// weights returns the weights from path, then from configuration, else nil for the defaults
func (a *app) weights(path string) (*types.CategoryWeights, error) {
	if path == "" {
		return a.cfg.Scoring.Weights, nil
	}
	var w types.CategoryWeights
	if err := readJSONFile(path, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
