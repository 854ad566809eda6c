package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/talent-matcher/internal/types"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// newTestStore returns a store whose clock advances one minute per reading
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(Config{}, nil, nil)
	tick := 0
	s.now = func() time.Time {
		tick++
		return baseTime.Add(time.Duration(tick) * time.Minute)
	}
	return s
}

func skill(name string, category types.SkillCategory, level types.ProficiencyLevel, confidence float64) types.Skill {
	return types.Skill{Name: name, Category: category, Proficiency: level, Confidence: confidence}
}

func profile(id, name string, years float64, company, location string, skills ...types.Skill) *types.CandidateProfile {
	return &types.CandidateProfile{
		ID: id,
		PersonalInfo: types.PersonalInfo{
			Name:              name,
			Title:             "Software Engineer",
			YearsOfExperience: years,
			CurrentCompany:    company,
			Location:          location,
		},
		Skills: skills,
		Experiences: []types.Experience{{
			Company:          company,
			Title:            "Software Engineer",
			DurationYears:    years,
			Responsibilities: []string{"built services"},
			Technologies:     []string{"Linux"},
			RelevanceScore:   0.8,
			Confidence:       0.8,
		}},
		Communication: types.CommunicationAssessment{
			Clarity: 0.7, Articulation: 0.7, Structure: 0.7, Professionalism: 0.7, TechnicalExplanation: 0.7,
			ResponseLength: types.ResponseAppropriate,
		},
		Behavioral: types.BehavioralTraits{
			Leadership: 0.6, Teamwork: 0.7, ProblemSolving: 0.7, Communication: 0.7, Adaptability: 0.6, Initiative: 0.6,
		},
		Confidence:   0.8,
		Completeness: 0.7,
	}
}

// seedPool stores a small, varied pool
func seedPool(t *testing.T, s *Store) {
	t.Helper()
	pool := []*types.CandidateProfile{
		profile("p-ada", "Ada", 0.5, "Acme Corp", "Berlin",
			skill("Go", types.CategoryProgramming, types.ProficiencyBeginner, 0.7)),
		profile("p-bob", "Bob", 2, "Globex", "San Francisco, CA",
			skill("React", types.CategoryFrontend, types.ProficiencyIntermediate, 0.8),
			skill("TypeScript", types.CategoryProgramming, types.ProficiencyIntermediate, 0.8)),
		profile("p-cyd", "Cyd", 4, "Acme Corp", "London",
			skill("Go", types.CategoryProgramming, types.ProficiencyAdvanced, 0.9),
			skill("Kubernetes", types.CategoryDevOps, types.ProficiencyIntermediate, 0.7)),
		profile("p-dee", "Dee", 7, "Initech", "Berlin",
			skill("Python", types.CategoryProgramming, types.ProficiencyExpert, 0.95),
			skill("PostgreSQL", types.CategoryDatabase, types.ProficiencyAdvanced, 0.8)),
		profile("p-eve", "Eve", 12, "Globex", "San Francisco, CA",
			skill("Go", types.CategoryProgramming, types.ProficiencyExpert, 0.9),
			skill("React", types.CategoryFrontend, types.ProficiencyAdvanced, 0.85)),
	}
	for _, p := range pool {
		if _, err := s.StoreProfile(p); err != nil {
			t.Fatalf("store %s: %v", p.ID, err)
		}
	}
}

func seedMany(t *testing.T, s *Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		p := profile(fmt.Sprintf("p-%03d", i), fmt.Sprintf("Candidate %d", i), float64(i%15), "Acme Corp", "Remote",
			skill("Go", types.CategoryProgramming, types.ProficiencyIntermediate, 0.8))
		if _, err := s.StoreProfile(p); err != nil {
			t.Fatalf("store %s: %v", p.ID, err)
		}
	}
}

func ids(summaries []types.ProfileSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}
