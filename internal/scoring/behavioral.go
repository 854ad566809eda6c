package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// Fixed trait weights; leadership and teamwork come from the requirement
const (
	defaultLeadershipImportance = 1.0
	defaultTeamworkImportance   = 0.7
	problemSolvingWeight        = 1.0
	communicationTraitWeight    = 0.9
	adaptabilityWeight          = 0.8
	initiativeWeight            = 0.8
)

func (s *scorer) behavioral(d *types.DetailedScores) float64 {
	b := s.profile.Behavioral
	d.Leadership = b.Leadership
	d.Teamwork = b.Teamwork
	d.ProblemSolving = b.ProblemSolving
	d.Adaptability = b.Adaptability

	if b == (types.BehavioralTraits{}) {
		s.note("behavioral traits not assessed")
	}

	terms := make([]float64, 0, 6)
	if s.req.LeadershipRequired {
		importance := s.req.LeadershipImportance
		if importance <= 0 {
			importance = defaultLeadershipImportance
		}
		terms = append(terms, b.Leadership*importance)
	}
	teamwork := s.req.TeamworkImportance
	if teamwork <= 0 {
		teamwork = defaultTeamworkImportance
	}
	terms = append(terms,
		b.Teamwork*teamwork,
		b.ProblemSolving*problemSolvingWeight,
		b.Communication*communicationTraitWeight,
		b.Adaptability*adaptabilityWeight,
		b.Initiative*initiativeWeight,
	)

	sum := 0.0
	for _, t := range terms {
		sum += t
	}
	return clamp01(sum / float64(len(terms)))
}
