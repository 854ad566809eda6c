package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	yearsShare     = 0.4
	relevanceShare = 0.4
	depthShare     = 0.2

	// tenure of minimum×1.5 is needed for full years adequacy
	yearsHeadroom = 1.5
)

// seniorReportingLevels mark roles with people responsibility
var seniorReportingLevels = []string{"lead", "manager", "director", "head", "vp"}

func (s *scorer) experience(d *types.DetailedScores) float64 {
	if len(s.profile.Experiences) == 0 {
		s.note("no experience records")
	}

	d.ExperienceYears = yearsAdequacy(s.profile.TotalYears(), s.req.MinimumYears)
	d.ExperienceRelevance = meanRelevance(s.profile.Experiences)
	d.ExperienceDepth = careerDepth(s.profile)

	return d.ExperienceYears*yearsShare + d.ExperienceRelevance*relevanceShare + d.ExperienceDepth*depthShare
}

// yearsAdequacy scores tenure against a minimum. Meeting the minimum exactly
// scores 2/3; full marks need 50% headroom.
func yearsAdequacy(total, minimum float64) float64 {
	if minimum <= 0 {
		return 1.0
	}
	if total >= minimum {
		return min(1, total/(minimum*yearsHeadroom))
	}
	return max(0, total/minimum)
}

func meanRelevance(experiences []types.Experience) float64 {
	if len(experiences) == 0 {
		return 0
	}
	sum := 0.0
	for _, exp := range experiences {
		sum += exp.RelevanceScore
	}
	return sum / float64(len(experiences))
}

// careerDepth is a 0.5-based heuristic over the whole career
func careerDepth(p *types.CandidateProfile) float64 {
	responsibilities, achievements := 0, len(p.Achievements)
	largeTeam, seniorRole := false, false
	for _, exp := range p.Experiences {
		responsibilities += len(exp.Responsibilities)
		achievements += len(exp.Achievements)
		if exp.TeamSize > 5 {
			largeTeam = true
		}
		level := strings.ToLower(exp.ReportingLevel)
		for _, senior := range seniorReportingLevels {
			if strings.Contains(level, senior) {
				seniorRole = true
			}
		}
	}

	depth := 0.5
	depth += min(0.1, 0.02*float64(responsibilities))
	depth += min(0.15, 0.05*float64(achievements))
	if largeTeam {
		depth += 0.1
	}
	if seniorRole {
		depth += 0.15
	}
	return min(1, depth)
}
