package scoring

import (
	"fmt"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	seriousFlagPenalty  = 0.2
	minFlagMultiplier   = 0.3
	inconsistencyCost   = 0.2
	incompleteThreshold = 0.5
)

// confidence is how far the score can be trusted, not how good the candidate is.
// It also returns the number of serious flags found.
func (s *scorer) confidence() (float64, int) {
	p := s.profile

	serious := 0
	for _, f := range p.Flags {
		if f.IsSerious() {
			serious++
		}
	}

	if p.Confidence <= 0 {
		s.note("profile confidence not set")
	}
	if p.Completeness < incompleteThreshold {
		s.note("profile incomplete")
	}
	if serious > 0 {
		s.note(fmt.Sprintf("%d serious flag(s)", serious))
	}

	base := p.Confidence * p.Completeness * (0.5 + 0.5*p.Communication.Mean())
	multiplier := max(minFlagMultiplier, 1-seriousFlagPenalty*float64(serious))
	return clamp01(base * multiplier), serious
}

// consistency drops 0.2 for every inconsistency flag
func consistency(flags []types.Flag) float64 {
	n := 0
	for _, f := range flags {
		if f.Type == types.FlagInconsistency {
			n++
		}
	}
	return max(0, 1-inconsistencyCost*float64(n))
}
