package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
	rootschemas "github.com/jonathan/talent-matcher/schemas"
)

var requirementCmd = &cobra.Command{
	Use:   "requirement",
	Short: "Generate a job requirement from a role template",
	Long:  fmt.Sprintf("Builds a JobRequirement JSON from a role template and seniority level.\nRoles: %s\nLevels: %s", strings.Join(scoring.Roles(), ", "), strings.Join(scoring.Levels(), ", ")),
	RunE:  runRequirement,
}

var (
	requirementRole   string
	requirementLevel  string
	requirementOutput string
)

func init() {
	requirementCmd.Flags().StringVarP(&requirementRole, "role", "r", "", "Role template (required)")
	requirementCmd.Flags().StringVarP(&requirementLevel, "level", "l", "", "Seniority level (required)")
	requirementCmd.Flags().StringVarP(&requirementOutput, "out", "o", "", "Path to output JobRequirement JSON (default stdout)")

	if err := requirementCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := requirementCmd.MarkFlagRequired("level"); err != nil {
		panic(fmt.Sprintf("failed to mark level flag as required: %v", err))
	}

	rootCmd.AddCommand(requirementCmd)
}

func runRequirement(_ *cobra.Command, _ []string) error {
	req, err := scoring.GenerateJobRequirement(requirementRole, requirementLevel)
	if err != nil {
		return err
	}
	if verbose {
		a, err := loadApp()
		if err != nil {
			return err
		}
		a.printer.PrintJobRequirement(req)
	}
	return emitJSON(req, requirementOutput)
}

// loadRequirement reads a JobRequirement file, checking it against the
// requirement schema before decoding
func loadRequirement(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement file %s: %w", path, err)
	}
	if err := schemas.ValidateDocument(rootschemas.JobRequirement, data); err != nil {
		return nil, fmt.Errorf("requirement file %s is invalid: %w", path, err)
	}

	var req types.JobRequirement
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse requirement file %s: %w", path, err)
	}
	return &req, nil
}

// resolveRequirement loads the requirement from a file or generates it from a
// role template
func resolveRequirement(path, role, level string) (*types.JobRequirement, error) {
	switch {
	case path != "":
		return loadRequirement(path)
	case role != "" && level != "":
		return scoring.GenerateJobRequirement(role, level)
	default:
		return nil, fmt.Errorf("either --requirement or both --role and --level are required")
	}
}
