// Package scoring turns a candidate profile and a job requirement into a weighted,
// explained assessment.
package scoring

import (
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Options configures an Engine
type Options struct {
	// NormalizeWeights rescales every weight set to sum to 1 before use
	NormalizeWeights bool
}

// Engine scores profiles. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	opts     Options
	taxonomy *skills.Taxonomy
	logger   *zap.Logger
}

// NewEngine creates a scoring engine. A nil taxonomy uses the default taxonomy and
// a nil logger discards logs.
func NewEngine(opts Options, taxonomy *skills.Taxonomy, logger *zap.Logger) *Engine {
	if taxonomy == nil {
		taxonomy = skills.DefaultTaxonomy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, taxonomy: taxonomy, logger: logger}
}

// Score assesses profile against req. weights may be nil for DefaultWeights.
// The result depends only on the arguments; missing profile data lowers the
// affected sub-scores and is listed in the result's confidence factors.
func (e *Engine) Score(profile *types.CandidateProfile, req *types.JobRequirement, weights *types.CategoryWeights) (*types.ScoringResult, error) {
	if profile == nil {
		return nil, &InputError{Message: "profile is required"}
	}
	if req == nil {
		return nil, &InputError{Message: "job requirement is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, &InputError{Message: "invalid job requirement", Cause: err}
	}

	w := DefaultWeights()
	if weights != nil {
		w = *weights
		if err := w.Validate(); err != nil {
			return nil, &InputError{Message: "invalid weights", Cause: err}
		}
	}
	if e.opts.NormalizeWeights {
		w = w.Normalized()
	}

	s := &scorer{profile: profile, req: req, taxonomy: e.taxonomy}

	var detailed types.DetailedScores
	categories := types.CategoryScores{
		Technical:     s.technical(&detailed),
		Communication: s.communication(&detailed),
		Experience:    s.experience(&detailed),
		Cultural:      s.cultural(&detailed),
		Behavioral:    s.behavioral(&detailed),
		Education:     s.education(),
	}
	detailed.ResponseCompleteness = profile.Completeness
	detailed.Consistency = consistency(profile.Flags)

	confidence, serious := s.confidence()

	result := &types.ScoringResult{
		ProfileID:       profile.ID,
		OverallScore:    overall(categories, w),
		CategoryScores:  categories,
		DetailedScores:  detailed,
		Recommendations: recommendations(profile, categories, detailed),
		Confidence:      confidence,
		Metadata: types.ScoringMetadata{
			WeightsUsed:         w,
			WeightSum:           w.Sum(),
			ProfileCompleteness: profile.Completeness,
			ConfidenceFactors:   s.factors,
			SeriousFlagCount:    serious,
			RequirementTitle:    req.Title,
		},
	}
	result.Strengths, result.Weaknesses = insights(categories, detailed)
	if result.Metadata.ConfidenceFactors == nil {
		result.Metadata.ConfidenceFactors = []string{}
	}

	e.logger.Debug("scored profile",
		zap.String("profile_id", profile.ID),
		zap.Float64("overall", result.OverallScore),
		zap.Float64("confidence", result.Confidence),
		zap.Int("factors", len(s.factors)))

	return result, nil
}

// scorer carries one Score invocation's inputs and the data gaps found along the way
type scorer struct {
	profile  *types.CandidateProfile
	req      *types.JobRequirement
	taxonomy *skills.Taxonomy
	factors  []string
}

func (s *scorer) note(factor string) {
	for _, f := range s.factors {
		if f == factor {
			return
		}
	}
	s.factors = append(s.factors, factor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
