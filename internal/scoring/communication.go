package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// communication blend
const (
	clarityShare              = 0.25
	articulationShare         = 0.20
	structureShare            = 0.20
	professionalismShare      = 0.15
	technicalExplanationShare = 0.20

	tooShortModifier    = 0.8
	tooLongModifier     = 0.9
	poorGrammarModifier = 0.85
	poorGrammarBelow    = 0.6
)

func (s *scorer) communication(d *types.DetailedScores) float64 {
	c := s.profile.Communication
	d.CommunicationClarity = c.Clarity
	d.Articulation = c.Articulation
	d.ResponseStructure = c.Structure
	d.Professionalism = c.Professionalism
	d.TechnicalExplanation = c.TechnicalExplanation

	if c.Mean() == 0 {
		s.note("communication not assessed")
	}

	score := c.Clarity*clarityShare +
		c.Articulation*articulationShare +
		c.Structure*structureShare +
		c.Professionalism*professionalismShare +
		c.TechnicalExplanation*technicalExplanationShare

	switch c.ResponseLength {
	case types.ResponseTooShort:
		score *= tooShortModifier
	case types.ResponseTooLong:
		score *= tooLongModifier
	}
	if c.GrammarQuality != nil && *c.GrammarQuality < poorGrammarBelow {
		score *= poorGrammarModifier
	}

	return clamp01(score)
}
