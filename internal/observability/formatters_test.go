package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtraction(&types.ExtractionResult{
		Skills: []types.Skill{
			{Name: "Go", Category: types.CategoryProgramming, Proficiency: types.ProficiencyExpert, Confidence: 0.95},
			{Name: "Kubernetes", Category: types.CategoryDevOps, Proficiency: types.ProficiencyIntermediate, Confidence: 0.8},
		},
		Confidence:  0.77,
		Suggestions: []types.SkillSuggestion{{Name: "Docker"}, {Name: "gRPC"}},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED SKILLS")
	assert.Contains(t, output, "Skills found: 2 (confidence 0.77)")
	assert.Contains(t, output, "Go [programming] expert 0.95")
	assert.Contains(t, output, "Ask about: Docker, gRPC")
}

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(&types.JobRequirement{
		Title:        "Senior Backend Engineer",
		MinimumYears: 5,
		RequiredSkills: []types.RequiredSkill{
			{Name: "Go", Proficiency: types.ProficiencyExpert, Importance: types.ImportanceCritical},
			{Name: "Kubernetes"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENT")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "5+")
	assert.Contains(t, output, "Go (expert) critical")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintScoringResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoringResult(&types.ScoringResult{
		ProfileID:      "cand-1",
		OverallScore:   0.72,
		Confidence:     0.6,
		CategoryScores: types.CategoryScores{Technical: 0.9, Communication: 0.4},
		Strengths:      []string{"Strong technical skills"},
		Weaknesses:     []string{"Communication needs work"},
	})
	output := buf.String()

	assert.Contains(t, output, "SCORING RESULT")
	assert.Contains(t, output, "cand-1")
	assert.Contains(t, output, "0.72 (confidence 0.60)")
	assert.Contains(t, output, "Technical      0.90 █████████░")
	assert.Contains(t, output, "✓ Strong technical skills")
	assert.Contains(t, output, "⚠ Communication needs work")
}

func TestPrintSearchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSearchResult(&types.ProfileSearchResult{
		Total: 12,
		Profiles: []types.ProfileSummary{
			{ID: "p-1", Name: "Ada", YearsOfExperience: 6, TopSkills: []types.SkillSummary{{Name: "Go"}, {Name: "Rust"}}, Score: &types.ScoreSnapshot{Overall: 0.81}},
			{ID: "p-2", Name: "Bob", YearsOfExperience: 2},
		},
		Suggestions: []string{"Go", "Acme Corp"},
	})
	output := buf.String()

	assert.Contains(t, output, "PROFILE SEARCH")
	assert.Contains(t, output, "Matches: 12 (showing 2 from offset 0)")
	assert.Contains(t, output, "p-1  Ada")
	assert.Contains(t, output, "6.0 yrs  score 0.81")
	assert.Contains(t, output, "Skills: Go, Rust")
	assert.Contains(t, output, "Try: Go, Acme Corp")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparison(&types.ProfileComparisonResult{
		Rankings: []types.CandidateRanking{
			{ProfileID: "a", Name: "Ada", Rank: 1, OverallScore: 0.8, Scored: true},
			{ProfileID: "b", Rank: 2},
		},
		Summary: types.ComparisonSummary{
			TopCandidate:       "a",
			KeyDifferentiators: []string{"Experience ranges from 1.0 to 6.0 years"},
			Similarities:       []string{"All candidates worked at Acme"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE COMPARISON")
	assert.Contains(t, output, "#1  a (Ada)  0.80")
	assert.Contains(t, output, "#2  b  not scored")
	assert.Contains(t, output, "Experience ranges from 1.0 to 6.0 years")
	assert.Contains(t, output, "All candidates worked at Acme")
}

func TestPrintAnalytics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalytics(&types.ProfileAnalytics{
		TotalProfiles:  10,
		ScoredProfiles: 4,
		AverageScore:   0.65,
		TopSkills:      []types.FacetCount{{Value: "Go", Count: 7}},
	})
	output := buf.String()

	assert.Contains(t, output, "POOL ANALYTICS")
	assert.Contains(t, output, "10 (4 scored, 0 flagged)")
	assert.Contains(t, output, "Go (7)")
}

func TestPrint_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtraction(nil)
	p.PrintJobRequirement(nil)
	p.PrintScoringResult(nil)
	p.PrintSearchResult(nil)
	p.PrintComparison(nil)
	p.PrintAnalytics(nil)

	assert.Empty(t, buf.String())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", bar(0))
	assert.Equal(t, "█████░░░░░", bar(0.5))
	assert.Equal(t, "██████████", bar(1.3))
	assert.Equal(t, "░░░░░░░░░░", bar(-0.2))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
