package main

import (
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarise the profile pool",
	RunE:  runAnalytics,
}

var analyticsOutput string

func init() {
	analyticsCmd.Flags().StringVarP(&analyticsOutput, "out", "o", "", "Path to output ProfileAnalytics JSON (default stdout)")

	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s, err := a.openPool(true)
	if err != nil {
		return err
	}

	analytics := s.Analytics()
	if a.printer != nil {
		a.printer.PrintAnalytics(&analytics)
	}
	return emitJSON(analytics, analyticsOutput)
}
