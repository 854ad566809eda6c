package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the profile pool as JSON or CSV",
	RunE:  runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", store.FormatJSON, "Export format: json or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s, err := a.openPool(false)
	if err != nil {
		return err
	}

	data, err := s.ExportProfiles(exportFormat)
	if err != nil {
		return err
	}
	a.logger.Info("pool exported", zap.String("format", exportFormat), zap.Int("profiles", s.Count()))
	return emit(data, exportOutput)
}
