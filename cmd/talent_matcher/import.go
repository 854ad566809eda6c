package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON export into the profile pool",
	Long:  "Validates a JSON export against the export schema and merges it into the pool, replacing profiles with the same IDs. With --persist the merged pool is also written to PostgreSQL.",
	RunE:  runImport,
}

var (
	importFile    string
	importPersist bool
)

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to the JSON export to import (required)")
	importCmd.Flags().BoolVar(&importPersist, "persist", false, "Also sync the merged pool to the database")

	if err := importCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read import file %s: %w", importFile, err)
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s, err := a.openPool(true)
	if err != nil {
		return err
	}

	n, err := s.ImportProfiles(data)
	if err != nil {
		return err
	}
	if err := a.savePool(s); err != nil {
		return err
	}
	a.logger.Info("profiles imported", zap.String("file", importFile), zap.Int("profiles", n), zap.Int("pool_size", s.Count()))

	if importPersist {
		if _, err := pushPool(context.Background(), a, s); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Imported %d profiles into %s (%d total)\n", n, poolPath, s.Count())
	return nil
}
