package scoring

import (
	"fmt"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	maxRecommendations = 8

	technicalImprovementBelow = 0.7
	communicationConcernBelow = 0.6
	experienceConcernBelow    = 0.5
	technicalStrengthAbove    = 0.8
	leadershipStrengthAbove   = 0.8
	expertVerificationBelow   = 0.8
)

func recommendations(p *types.CandidateProfile, c types.CategoryScores, d types.DetailedScores) []types.Recommendation {
	recs := make([]types.Recommendation, 0, maxRecommendations)
	add := func(r types.Recommendation) {
		if len(recs) < maxRecommendations {
			recs = append(recs, r)
		}
	}

	if c.Technical < technicalImprovementBelow {
		add(types.Recommendation{
			Type:       types.RecommendationImprovement,
			Category:   "technical",
			Message:    "Technical fit is below target; run a focused technical interview on the required skills",
			Impact:     types.ImpactHigh,
			Actionable: true,
		})
	}
	if c.Communication < communicationConcernBelow {
		add(types.Recommendation{
			Type:       types.RecommendationConcern,
			Category:   "communication",
			Message:    "Communication scored low; assess clarity in a follow-up conversation",
			Impact:     types.ImpactMedium,
			Actionable: true,
		})
	}
	if c.Experience < experienceConcernBelow {
		add(types.Recommendation{
			Type:     types.RecommendationConcern,
			Category: "experience",
			Message:  "Experience is limited for this role",
			Impact:   types.ImpactHigh,
		})
	}
	if c.Technical > technicalStrengthAbove {
		add(types.Recommendation{
			Type:     types.RecommendationStrength,
			Category: "technical",
			Message:  "Strong technical match for the role",
			Impact:   types.ImpactHigh,
		})
	}
	if d.Leadership > leadershipStrengthAbove {
		add(types.Recommendation{
			Type:     types.RecommendationStrength,
			Category: "behavioral",
			Message:  "Demonstrated leadership",
			Impact:   types.ImpactMedium,
		})
	}
	for _, skill := range p.Skills {
		if skill.Proficiency == types.ProficiencyExpert && skill.Confidence < expertVerificationBelow {
			add(types.Recommendation{
				Type:       types.RecommendationVerification,
				Category:   "technical",
				Message:    fmt.Sprintf("Verify the expert-level claim for %s", skill.Name),
				Impact:     types.ImpactMedium,
				Actionable: true,
			})
		}
	}

	return recs
}
