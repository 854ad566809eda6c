// Package ranking compares candidates side by side and ranks them by score.
package ranking

import (
	"sort"

	"github.com/jonathan/talent-matcher/internal/types"
)

// topSkillCount is the number of skills shown in a summary
const topSkillCount = 5

// Summarize projects a profile and its optional scoring result into a listing
// summary. Only red flags and concerns are carried over.
func Summarize(p *types.CandidateProfile, result *types.ScoringResult) types.ProfileSummary {
	summary := types.ProfileSummary{
		ID:                p.ID,
		Name:              p.PersonalInfo.Name,
		Title:             p.PersonalInfo.Title,
		Company:           p.PersonalInfo.CurrentCompany,
		Location:          p.PersonalInfo.Location,
		YearsOfExperience: p.TotalYears(),
		TopSkills:         topSkills(p.Skills, topSkillCount),
		Flags:             []types.Flag{},
		Completeness:      p.Completeness,
		LastUpdated:       p.LastUpdated,
	}

	for _, f := range p.Flags {
		if f.Type == types.FlagRedFlag || f.Type == types.FlagConcern {
			summary.Flags = append(summary.Flags, f)
		}
	}

	if result != nil {
		summary.Score = &types.ScoreSnapshot{
			Overall:       result.OverallScore,
			Technical:     result.CategoryScores.Technical,
			Communication: result.CategoryScores.Communication,
			Experience:    result.CategoryScores.Experience,
			Confidence:    result.Confidence,
		}
	}

	return summary
}

// topSkills returns the n most confident skills, ties in profile order
func topSkills(skills []types.Skill, n int) []types.SkillSummary {
	sorted := make([]types.Skill, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]types.SkillSummary, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, types.SkillSummary{Name: s.Name, Proficiency: s.Proficiency, Confidence: s.Confidence})
	}
	return out
}
