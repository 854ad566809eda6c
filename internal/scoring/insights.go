package scoring

import "github.com/jonathan/talent-matcher/internal/types"

const (
	maxInsights = 5

	strengthAbove = 0.8
	weaknessBelow = 0.5

	completenessWeaknessBelow = 0.6
	consistencyWeaknessBelow  = 0.7
)

type categoryPhrase struct {
	score    float64
	strength string
	weakness string
}

// insights lists strength and weakness phrases, category phrases first
func insights(c types.CategoryScores, d types.DetailedScores) (strengths, weaknesses []string) {
	strengths = make([]string, 0, maxInsights)
	weaknesses = make([]string, 0, maxInsights)
	addStrength := func(s string) {
		if len(strengths) < maxInsights {
			strengths = append(strengths, s)
		}
	}
	addWeakness := func(s string) {
		if len(weaknesses) < maxInsights {
			weaknesses = append(weaknesses, s)
		}
	}

	for _, cp := range []categoryPhrase{
		{c.Technical, "Strong technical skills", "Technical skills below requirements"},
		{c.Communication, "Excellent communication", "Communication needs improvement"},
		{c.Experience, "Highly relevant experience", "Limited relevant experience"},
		{c.Cultural, "Strong cultural fit", "Potential cultural misalignment"},
		{c.Behavioral, "Strong behavioral traits", "Behavioral traits below expectations"},
		{c.Education, "Strong educational background", "Limited educational background"},
	} {
		switch {
		case cp.score > strengthAbove:
			addStrength(cp.strength)
		case cp.score < weaknessBelow:
			addWeakness(cp.weakness)
		}
	}

	if d.SkillRelevance > strengthAbove {
		addStrength("Skills closely match the role")
	}
	if d.CommunicationClarity > strengthAbove {
		addStrength("Explains ideas clearly")
	}
	if d.ProblemSolving > strengthAbove {
		addStrength("Strong problem solver")
	}
	if d.ResponseCompleteness < completenessWeaknessBelow {
		addWeakness("Incomplete interview responses")
	}
	if d.Consistency < consistencyWeaknessBelow {
		addWeakness("Inconsistencies across answers")
	}

	return strengths, weaknesses
}
