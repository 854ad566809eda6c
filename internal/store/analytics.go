package store

import (
	"github.com/jonathan/talent-matcher/internal/types"
)

// Analytics summarizes the whole stored population
func (s *Store) Analytics() types.ProfileAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := types.ProfileAnalytics{
		TotalProfiles:     len(s.profiles),
		ScoredProfiles:    len(s.scores),
		TopSkills:         topCounts(s.index.counts(dimSkills), s.cfg.FacetLimit),
		CategoryBreakdown: sortByCount(s.categoryCounts()),
		TopCompanies:      topCounts(s.index.counts(dimCompanies), s.cfg.FacetLimit),
	}
	if len(s.profiles) == 0 {
		return a
	}

	var completeness, confidence, years float64
	for _, p := range s.profiles {
		completeness += p.Completeness
		confidence += p.Confidence
		years += p.TotalYears()
		for _, f := range p.Flags {
			if f.Type == types.FlagRedFlag || f.Type == types.FlagConcern {
				a.FlaggedProfiles++
				break
			}
		}
	}
	n := float64(len(s.profiles))
	a.AverageCompleteness = completeness / n
	a.AverageConfidence = confidence / n
	a.AverageYears = years / n

	if len(s.scores) > 0 {
		total := 0.0
		for _, r := range s.scores {
			total += r.OverallScore
		}
		a.AverageScore = total / float64(len(s.scores))
	}

	return a
}
