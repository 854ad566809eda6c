package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

// resetFlags points the CLI at a fresh pool file and clears every command flag
func resetFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	configPath = ""
	poolPath = filepath.Join(dir, "pool.json")
	verbose = false

	extractText, extractFile, extractRole, extractProfileID, extractOutput = "", "", "candidate", "", ""
	scoreProfileID, scoreAll, scoreRequirement, scoreRole, scoreLevel, scoreWeights, scoreOutput = "", false, "", "", "", "", ""
	requirementRole, requirementLevel, requirementOutput = "", "", ""
	searchQueryFile, searchOutput = "", ""
	compareIDs, compareOutput = nil, ""
	exportFormat, exportOutput = store.FormatJSON, ""
	importFile, importPersist = "", false
	analyticsOutput = ""
	syncPull, syncList, syncOutput = false, false, ""

	return dir
}

func testProfile(id, name string, years float64, company string, skills ...types.Skill) *types.CandidateProfile {
	return &types.CandidateProfile{
		ID: id,
		PersonalInfo: types.PersonalInfo{
			Name:              name,
			Title:             "Backend Engineer",
			YearsOfExperience: years,
			CurrentCompany:    company,
			Location:          "Berlin",
		},
		Skills: skills,
		Experiences: []types.Experience{{
			Company:        company,
			Title:          "Backend Engineer",
			DurationYears:  years,
			Technologies:   []string{"PostgreSQL", "Docker"},
			RelevanceScore: 0.8,
			Confidence:     0.8,
		}},
		Communication: types.CommunicationAssessment{
			Clarity: 0.7, Articulation: 0.7, Structure: 0.7, Professionalism: 0.7, TechnicalExplanation: 0.7,
		},
		Behavioral: types.BehavioralTraits{
			Leadership: 0.5, Teamwork: 0.7, ProblemSolving: 0.7, Communication: 0.7, Adaptability: 0.6, Initiative: 0.6,
		},
		Confidence:   0.8,
		Completeness: 0.7,
	}
}

// writeExport writes a JSON export of the given profiles and returns its path
func writeExport(t *testing.T, dir string, profiles ...*types.CandidateProfile) string {
	t.Helper()
	s := store.New(store.Config{}, nil, nil)
	for _, p := range profiles {
		_, err := s.StoreProfile(p)
		require.NoError(t, err)
	}
	data, err := s.ExportProfiles(store.FormatJSON)
	require.NoError(t, err)

	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// seedPool imports two backend profiles into the current pool file
func seedPool(t *testing.T, dir string) {
	t.Helper()
	importFile = writeExport(t, dir,
		testProfile("p-strong", "Sam Strong", 8, "Acme",
			types.Skill{Name: "SQL", Category: types.CategoryProgramming, Proficiency: types.ProficiencyExpert, Confidence: 0.9},
			types.Skill{Name: "PostgreSQL", Category: types.CategoryDatabase, Proficiency: types.ProficiencyAdvanced, Confidence: 0.9},
			types.Skill{Name: "REST APIs", Category: types.CategoryBackend, Proficiency: types.ProficiencyAdvanced, Confidence: 0.8},
			types.Skill{Name: "Docker", Category: types.CategoryDevOps, Proficiency: types.ProficiencyAdvanced, Confidence: 0.8}),
		testProfile("p-junior", "Jo Junior", 1, "Initech",
			types.Skill{Name: "SQL", Category: types.CategoryProgramming, Proficiency: types.ProficiencyBeginner, Confidence: 0.6}),
	)
	require.NoError(t, runImport(nil, nil))
	importFile = ""
}

func readJSON[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

// loadPool opens the current pool file the way the commands do
func loadPool(t *testing.T) *store.Store {
	t.Helper()
	a, err := loadApp()
	require.NoError(t, err)
	s, err := a.openPool(false)
	require.NoError(t, err)
	return s
}
