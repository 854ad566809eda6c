package scoring

import "github.com/jonathan/talent-matcher/internal/types"

// Default category weights
const (
	DefaultTechnicalWeight     = 0.35
	DefaultCommunicationWeight = 0.20
	DefaultExperienceWeight    = 0.25
	DefaultCulturalWeight      = 0.10
	DefaultBehavioralWeight    = 0.10
	DefaultEducationWeight     = 0.05
)

// DefaultWeights returns the default category weights. They sum to 1.05, so a
// perfect profile can score slightly above 1 unless normalization is enabled.
func DefaultWeights() types.CategoryWeights {
	return types.CategoryWeights{
		Technical:     DefaultTechnicalWeight,
		Communication: DefaultCommunicationWeight,
		Experience:    DefaultExperienceWeight,
		Cultural:      DefaultCulturalWeight,
		Behavioral:    DefaultBehavioralWeight,
		Education:     DefaultEducationWeight,
	}
}

func overall(scores types.CategoryScores, w types.CategoryWeights) float64 {
	return scores.Technical*w.Technical +
		scores.Communication*w.Communication +
		scores.Experience*w.Experience +
		scores.Cultural*w.Cultural +
		scores.Behavioral*w.Behavioral +
		scores.Education*w.Education
}
