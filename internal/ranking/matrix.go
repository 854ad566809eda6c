package ranking

import (
	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// buildMatrix lays out every candidate's skills, tenure, communication and scores
// side by side. Skill names are canonicalized so aliases share a row.
func buildMatrix(candidates []Candidate) types.ComparisonMatrix {
	m := types.ComparisonMatrix{
		Skills:        make(map[string]map[string]types.SkillCell),
		Experience:    make(map[string]float64, len(candidates)),
		Communication: make(map[string]float64, len(candidates)),
		Scores:        make(map[string]types.CategoryScores, len(candidates)),
	}

	for _, c := range candidates {
		id := c.Profile.ID
		for _, s := range c.Profile.Skills {
			name := skills.NormalizeSkillName(s.Name)
			if name == "" {
				continue
			}
			row, ok := m.Skills[name]
			if !ok {
				row = make(map[string]types.SkillCell)
				m.Skills[name] = row
			}
			if existing, dup := row[id]; dup && existing.Confidence >= s.Confidence {
				continue
			}
			row[id] = types.SkillCell{Proficiency: s.Proficiency, Confidence: s.Confidence}
		}

		m.Experience[id] = c.Profile.TotalYears()
		m.Communication[id] = c.Profile.Communication.Mean()
		if c.Result != nil {
			m.Scores[id] = c.Result.CategoryScores
		}
	}

	return m
}
