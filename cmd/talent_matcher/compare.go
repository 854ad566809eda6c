package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare pool profiles side by side",
	Long:  "Ranks two or more pool profiles by their stored overall score and reports a skill matrix, differentiators and recommendations. Unknown IDs are skipped.",
	RunE:  runCompare,
}

var (
	compareIDs    []string
	compareOutput string
)

func init() {
	compareCmd.Flags().StringSliceVar(&compareIDs, "ids", nil, "Comma-separated profile IDs to compare (required)")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to output ProfileComparisonResult JSON (default stdout)")

	if err := compareCmd.MarkFlagRequired("ids"); err != nil {
		panic(fmt.Sprintf("failed to mark ids flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s, err := a.openPool(false)
	if err != nil {
		return err
	}

	result, err := s.CompareProfiles(compareIDs)
	if err != nil {
		return err
	}
	a.logger.Info("comparison complete", zap.Int("profiles", len(result.Profiles)))
	if a.printer != nil {
		a.printer.PrintComparison(result)
	}
	return emitJSON(result, compareOutput)
}
