package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

func TestRequirementCommand(t *testing.T) {
	dir := resetFlags(t)
	requirementRole = "backend"
	requirementLevel = "senior"
	requirementOutput = filepath.Join(dir, "out", "requirement.json")

	require.NoError(t, runRequirement(nil, nil))

	req := readJSON[types.JobRequirement](t, requirementOutput)
	assert.Equal(t, "Senior Backend Engineer", req.Title)
	assert.NotEmpty(t, req.RequiredSkills)
	assert.NoError(t, req.Validate())
}

func TestRequirementCommand_UnknownRole(t *testing.T) {
	resetFlags(t)
	requirementRole = "astronaut"
	requirementLevel = "senior"

	err := runRequirement(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestImportAndExport(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	s := loadPool(t)
	assert.Equal(t, 2, s.Count())

	exportFormat = "csv"
	exportOutput = filepath.Join(dir, "pool.csv")
	require.NoError(t, runExport(nil, nil))

	f, err := os.Open(exportOutput)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "p-junior", rows[1][0])
	assert.Equal(t, "p-strong", rows[2][0])
}

func TestImport_ReplacesExistingIDs(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	renamed := testProfile("p-junior", "Jo Renamed", 1.5, "Initech")
	importFile = writeExport(t, t.TempDir(), renamed)
	require.NoError(t, runImport(nil, nil))

	s := loadPool(t)
	assert.Equal(t, 2, s.Count())
	p, err := s.GetProfile("p-junior")
	require.NoError(t, err)
	assert.Equal(t, "Jo Renamed", p.PersonalInfo.Name)
}

func TestImport_InvalidFile(t *testing.T) {
	dir := resetFlags(t)
	importFile = filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(importFile, []byte(`{"profiles": [{"id": "x"}]}`), 0644))

	err := runImport(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, statErr := os.Stat(poolPath)
	assert.True(t, os.IsNotExist(statErr), "a failed import must not create the pool")
}

func TestScoreCommand_SingleProfile(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	scoreProfileID = "p-strong"
	scoreRole = "backend"
	scoreLevel = "senior"
	scoreOutput = filepath.Join(dir, "score.json")
	require.NoError(t, runScore(nil, nil))

	result := readJSON[types.ScoringResult](t, scoreOutput)
	assert.Equal(t, "p-strong", result.ProfileID)
	assert.Greater(t, result.OverallScore, 0.0)

	stored, err := loadPool(t).GetScoringResult("p-strong")
	require.NoError(t, err)
	assert.InDelta(t, result.OverallScore, stored.OverallScore, 1e-9)
}

func TestScoreCommand_All(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	scoreAll = true
	scoreRole = "backend"
	scoreLevel = "senior"
	scoreOutput = filepath.Join(dir, "scores.json")
	require.NoError(t, runScore(nil, nil))

	results := readJSON[[]types.ScoringResult](t, scoreOutput)
	require.Len(t, results, 2)
	// results follow pool order (by ID)
	assert.Equal(t, "p-junior", results[0].ProfileID)
	assert.Equal(t, "p-strong", results[1].ProfileID)
	assert.Greater(t, results[1].OverallScore, results[0].OverallScore)

	s := loadPool(t)
	for _, id := range []string{"p-junior", "p-strong"} {
		_, err := s.GetScoringResult(id)
		assert.NoError(t, err, id)
	}
}

func TestScoreCommand_RequirementFile(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	requirementRole, requirementLevel = "backend", "mid"
	requirementOutput = filepath.Join(dir, "req.json")
	require.NoError(t, runRequirement(nil, nil))

	scoreProfileID = "p-strong"
	scoreRequirement = requirementOutput
	scoreOutput = filepath.Join(dir, "score.json")
	require.NoError(t, runScore(nil, nil))

	result := readJSON[types.ScoringResult](t, scoreOutput)
	assert.Equal(t, "Backend Engineer", result.Metadata.RequirementTitle)
}

func TestScoreCommand_Errors(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	tests := []struct {
		name    string
		setup   func()
		wantErr string
	}{
		{
			name:    "no target",
			setup:   func() { scoreRole, scoreLevel = "backend", "senior" },
			wantErr: "exactly one of --profile-id and --all",
		},
		{
			name:    "both targets",
			setup:   func() { scoreProfileID, scoreAll, scoreRole, scoreLevel = "p-strong", true, "backend", "senior" },
			wantErr: "exactly one of --profile-id and --all",
		},
		{
			name:    "no requirement",
			setup:   func() { scoreProfileID = "p-strong" },
			wantErr: "--requirement",
		},
		{
			name:    "unknown profile",
			setup:   func() { scoreProfileID, scoreRole, scoreLevel = "p-missing", "backend", "senior" },
			wantErr: "not found",
		},
		{
			name: "invalid requirement file",
			setup: func() {
				scoreProfileID = "p-strong"
				scoreRequirement = filepath.Join(dir, "bad-req.json")
				_ = os.WriteFile(scoreRequirement, []byte(`{"title": 42}`), 0644)
			},
			wantErr: "is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoreProfileID, scoreAll, scoreRequirement, scoreRole, scoreLevel = "", false, "", "", ""
			tt.setup()

			err := runScore(nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	resetFlags(t)
	flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
	addSearchFlags(flags)

	require.NoError(t, flags.Parse([]string{
		"--skill", "Go,PostgreSQL",
		"--category", "database",
		"--min-years", "2",
		"--max-score", "0.9",
		"--sort", "score",
		"--order", "desc",
		"--limit", "5",
	}))

	q, err := buildSearchQuery(flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, q.Skills)
	assert.Equal(t, []types.SkillCategory{types.CategoryDatabase}, q.SkillCategories)
	require.NotNil(t, q.ExperienceRange)
	require.NotNil(t, q.ExperienceRange.Min)
	assert.Equal(t, 2.0, *q.ExperienceRange.Min)
	assert.Nil(t, q.ExperienceRange.Max)
	require.NotNil(t, q.Scores)
	assert.Nil(t, q.Scores.Overall.Min)
	assert.Equal(t, 0.9, *q.Scores.Overall.Max)
	assert.Equal(t, types.SortByScore, q.SortBy)
	assert.Equal(t, types.SortDescending, q.SortOrder)
	assert.Equal(t, 5, q.Limit)
	assert.Zero(t, q.Offset)
}

func TestBuildSearchQuery_FlagsOverrideFile(t *testing.T) {
	dir := resetFlags(t)
	searchQueryFile = filepath.Join(dir, "query.json")
	require.NoError(t, os.WriteFile(searchQueryFile, []byte(`{"skills": ["Rust"], "companies": ["Acme"], "limit": 3}`), 0644))

	flags := pflag.NewFlagSet("search", pflag.ContinueOnError)
	addSearchFlags(flags)
	require.NoError(t, flags.Parse([]string{"--query", searchQueryFile, "--skill", "Go"}))

	q, err := buildSearchQuery(flags)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, q.Skills)
	assert.Equal(t, []string{"Acme"}, q.Companies)
	assert.Equal(t, 3, q.Limit)
	assert.Nil(t, q.ExperienceRange)
	assert.Nil(t, q.Scores)
}

func TestSearchCommand(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	searchQueryFile = filepath.Join(dir, "query.json")
	require.NoError(t, os.WriteFile(searchQueryFile, []byte(`{"skills": ["postgresql"]}`), 0644))
	searchOutput = filepath.Join(dir, "search.json")
	require.NoError(t, runSearch(searchCmd, nil))

	result := readJSON[types.ProfileSearchResult](t, searchOutput)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Profiles, 1)
	assert.Equal(t, "p-strong", result.Profiles[0].ID)
}

func TestSearchCommand_EmptyPool(t *testing.T) {
	dir := resetFlags(t)
	searchOutput = filepath.Join(dir, "search.json")

	require.NoError(t, runSearch(searchCmd, nil))

	result := readJSON[types.ProfileSearchResult](t, searchOutput)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Profiles)
}

func TestCompareCommand(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	scoreAll, scoreRole, scoreLevel = true, "backend", "senior"
	scoreOutput = filepath.Join(dir, "scores.json")
	require.NoError(t, runScore(nil, nil))

	compareIDs = []string{"p-junior", "p-strong", "p-missing"}
	compareOutput = filepath.Join(dir, "compare.json")
	require.NoError(t, runCompare(nil, nil))

	result := readJSON[types.ProfileComparisonResult](t, compareOutput)
	require.Len(t, result.Profiles, 2)
	require.Len(t, result.Rankings, 2)
	assert.Equal(t, "p-strong", result.Rankings[0].ProfileID)
	assert.Equal(t, 1, result.Rankings[0].Rank)
}

func TestCompareCommand_TooFew(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	compareIDs = []string{"p-strong", "p-missing"}
	compareOutput = filepath.Join(dir, "compare.json")

	err := runCompare(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestAnalyticsCommand(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	analyticsOutput = filepath.Join(dir, "analytics.json")
	require.NoError(t, runAnalytics(nil, nil))

	analytics := readJSON[types.ProfileAnalytics](t, analyticsOutput)
	assert.Equal(t, 2, analytics.TotalProfiles)
}

func TestExtractCommand(t *testing.T) {
	dir := resetFlags(t)
	extractText = "I have 5 years of experience with Go and we deploy everything on Kubernetes"
	extractOutput = filepath.Join(dir, "extraction.json")

	require.NoError(t, runExtract(nil, nil))

	result := readJSON[types.ExtractionResult](t, extractOutput)
	names := make([]string, 0, len(result.Skills))
	for _, s := range result.Skills {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "Kubernetes")
}

func TestExtractCommand_InterviewerRole(t *testing.T) {
	dir := resetFlags(t)
	extractText = "Tell me about your Kubernetes experience"
	extractRole = "interviewer"
	extractOutput = filepath.Join(dir, "extraction.json")

	require.NoError(t, runExtract(nil, nil))

	result := readJSON[types.ExtractionResult](t, extractOutput)
	assert.Empty(t, result.Skills)
}

func TestExtractCommand_MergesIntoProfile(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)

	extractFile = filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(extractFile, []byte("We deploy everything on Kubernetes"), 0644))
	extractProfileID = "p-junior"
	extractOutput = filepath.Join(dir, "extraction.json")

	require.NoError(t, runExtract(nil, nil))

	p, err := loadPool(t).GetProfile("p-junior")
	require.NoError(t, err)
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	require.NotEmpty(t, names)
	assert.Equal(t, "SQL", names[0])
	assert.Contains(t, names, "Kubernetes")
}

func TestExtractInput(t *testing.T) {
	dir := resetFlags(t)

	_, err := extractInput()
	assert.Error(t, err)

	extractText = "Go"
	extractFile = filepath.Join(dir, "in.txt")
	_, err = extractInput()
	assert.Error(t, err)

	extractText = ""
	_, err = extractInput()
	assert.Error(t, err, "missing file")

	require.NoError(t, os.WriteFile(extractFile, []byte("Rust and Go"), 0644))
	text, err := extractInput()
	require.NoError(t, err)
	assert.Equal(t, "Rust and Go", text)
}

func TestSyncCommand_RequiresDatabase(t *testing.T) {
	dir := resetFlags(t)
	seedPool(t, dir)
	t.Setenv("DATABASE_URL", "")

	err := runSync(nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no database configured"))
}

func TestSyncCommand_ListRequiresDatabase(t *testing.T) {
	resetFlags(t)
	t.Setenv("DATABASE_URL", "")
	syncList = true

	err := runSync(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database configured")
}

func TestLLMConfig_ModelOverride(t *testing.T) {
	dir := resetFlags(t)
	a, err := loadApp()
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), a.llmConfig().GetModel(llm.TierLite))

	configPath = filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"extraction": {"model": "gemini-2.5-flash"}}`), 0644))
	a, err = loadApp()
	require.NoError(t, err)

	cfg := a.llmConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(llm.TierLite))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierAdvanced), cfg.GetModel(llm.TierAdvanced))
}

func TestLoadApp_ConfigFile(t *testing.T) {
	dir := resetFlags(t)
	t.Setenv("TALENT_LOG_LEVEL", "")
	configPath = filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"log_level": "warn", "search": {"default_limit": 7}}`), 0644))

	a, err := loadApp()
	require.NoError(t, err)
	assert.Equal(t, "warn", a.cfg.LogLevel)
	assert.Equal(t, 7, a.cfg.Search.DefaultLimit)
	assert.Equal(t, 8, a.cfg.Search.MaxSuggestions)
	assert.Nil(t, a.printer)
}

func TestLoadApp_InvalidConfig(t *testing.T) {
	dir := resetFlags(t)
	t.Setenv("TALENT_LOG_LEVEL", "")
	configPath = filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"log_level": "loud"}`), 0644))

	_, err := loadApp()
	require.Error(t, err)
}

func TestWeights(t *testing.T) {
	dir := resetFlags(t)
	a, err := loadApp()
	require.NoError(t, err)

	w, err := a.weights("")
	require.NoError(t, err)
	assert.Nil(t, w)

	path := filepath.Join(dir, "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"technical": 1}`), 0644))
	w, err = a.weights(path)
	require.NoError(t, err)
	assert.Equal(t, &types.CategoryWeights{Technical: 1}, w)
}
