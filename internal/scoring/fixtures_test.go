package scoring

import (
	"time"

	"github.com/jonathan/talent-matcher/internal/types"
)

func ptr[T any](v T) *T { return &v }

// backendProfile is a fully populated profile whose scores are worked out by hand in the tests
func backendProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID: "cand-1",
		PersonalInfo: types.PersonalInfo{
			Name:               "Dana Reyes",
			YearsOfExperience:  6,
			CurrentCompany:     "Acme",
			Location:           "Berlin",
			PreferredWorkStyle: types.WorkStyleHybrid,
		},
		Skills: []types.Skill{
			{Name: "Go", Category: types.CategoryProgramming, Proficiency: types.ProficiencyAdvanced, Confidence: 0.9},
			{Name: "Docker", Category: types.CategoryDevOps, Proficiency: types.ProficiencyIntermediate, Confidence: 0.8},
		},
		Experiences: []types.Experience{
			{
				Company:          "Acme",
				Title:            "Senior Engineer",
				DurationYears:    4,
				Responsibilities: []string{"built billing services", "took ownership of on-call", "reviewed designs"},
				Achievements:     []string{"Improved performance of the billing API"},
				Technologies:     []string{"Go", "Docker", "Kubernetes", "PostgreSQL"},
				TeamSize:         8,
				ReportingLevel:   "lead",
				RelevanceScore:   0.8,
				Confidence:       0.9,
			},
			{
				Company:          "Initech",
				Title:            "Engineer",
				DurationYears:    2,
				Responsibilities: []string{"maintained reports", "fixed bugs"},
				RelevanceScore:   0.5,
				Confidence:       0.7,
			},
		},
		Education: []types.Education{
			{Institution: "TU Berlin", Degree: "BSc", Field: "Computer Science", Honors: []string{"cum laude"}, Relevant: true},
		},
		Achievements: []types.Achievement{{Description: "Speaker at GopherCon"}},
		Communication: types.CommunicationAssessment{
			Clarity:              0.8,
			Articulation:         0.7,
			Structure:            0.6,
			Professionalism:      0.9,
			TechnicalExplanation: 0.7,
			ResponseLength:       types.ResponseTooLong,
			GrammarQuality:       ptr(0.5),
		},
		Behavioral: types.BehavioralTraits{
			Leadership:     0.9,
			Teamwork:       0.8,
			ProblemSolving: 0.85,
			Communication:  0.7,
			Adaptability:   0.6,
			Initiative:     0.5,
		},
		Technical: types.TechnicalCompetency{Score: 0.7},
		Flags: []types.Flag{
			{Type: types.FlagInconsistency, Severity: types.SeverityHigh, Description: "dates do not line up"},
			{Type: types.FlagConcern, Severity: types.SeverityLow, Description: "short tenure at Initech"},
		},
		Confidence:   0.9,
		Completeness: 0.8,
		LastUpdated:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func backendRequirement() *types.JobRequirement {
	return &types.JobRequirement{
		Title: "Backend Engineer",
		RequiredSkills: []types.RequiredSkill{
			{Name: "golang", Proficiency: types.ProficiencyAdvanced, Importance: types.ImportanceCritical, Weight: 1},
			{Name: "Kubernetes", Proficiency: types.ProficiencyIntermediate, Importance: types.ImportanceNiceToHave, Weight: 0.5},
			{Name: "Python", Proficiency: types.ProficiencyAdvanced, Importance: types.ImportanceImportant, Weight: 1},
		},
		MinimumYears:         4,
		CommunicationTarget:  0.7,
		LeadershipRequired:   true,
		LeadershipImportance: 0.5,
		CulturalValues:       []string{"ownership", "mentoring"},
		WorkStyle:            types.WorkStyleRemote,
	}
}

// reactProfiles returns a strong and a weak React candidate for the same requirement
func reactProfiles() (a, b *types.CandidateProfile, req *types.JobRequirement) {
	a = &types.CandidateProfile{
		ID:           "a",
		PersonalInfo: types.PersonalInfo{Name: "Avery", YearsOfExperience: 5},
		Skills: []types.Skill{
			{Name: "React", Category: types.CategoryFrontend, Proficiency: types.ProficiencyAdvanced, Confidence: 0.9, YearsOfExperience: ptr(5.0)},
		},
		Confidence:   0.8,
		Completeness: 0.7,
	}
	b = &types.CandidateProfile{
		ID:           "b",
		PersonalInfo: types.PersonalInfo{Name: "Blake", YearsOfExperience: 1},
		Skills: []types.Skill{
			{Name: "React", Category: types.CategoryFrontend, Proficiency: types.ProficiencyBeginner, Confidence: 0.6, YearsOfExperience: ptr(1.0)},
		},
		Confidence:   0.8,
		Completeness: 0.7,
	}
	req = &types.JobRequirement{
		Title: "Frontend Engineer",
		RequiredSkills: []types.RequiredSkill{
			{Name: "React", Proficiency: types.ProficiencyAdvanced, Importance: types.ImportanceImportant, Weight: 1.0},
		},
		MinimumYears: 3,
	}
	return a, b, req
}
