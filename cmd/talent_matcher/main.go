// Package main provides the entry point for the talent_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_matcher",
	Short: "Candidate skill extraction, scoring and search",
	Long:  "talent_matcher extracts skills from interview text, scores candidate profiles against job requirements and searches, compares and exports a pool of profiles.",
	// Usage output hides the actual error on failures that are not flag errors
	SilenceUsage: true,
}

var (
	configPath string
	poolPath   string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVarP(&poolPath, "pool", "p", "pool.json", "Path to the profile pool (a JSON export)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable summary to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
