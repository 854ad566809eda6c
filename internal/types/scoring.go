// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CategoryWeights weights the six category scores into the overall score
type CategoryWeights struct {
	Technical     float64 `json:"technical" validate:"gte=0"`
	Communication float64 `json:"communication" validate:"gte=0"`
	Experience    float64 `json:"experience" validate:"gte=0"`
	Cultural      float64 `json:"cultural" validate:"gte=0"`
	Behavioral    float64 `json:"behavioral" validate:"gte=0"`
	Education     float64 `json:"education" validate:"gte=0"`
}

// Sum returns the total of all weights
func (w CategoryWeights) Sum() float64 {
	return w.Technical + w.Communication + w.Experience + w.Cultural + w.Behavioral + w.Education
}

// Normalized returns a copy rescaled so the weights sum to 1. A zero-sum set is returned unchanged.
func (w CategoryWeights) Normalized() CategoryWeights {
	sum := w.Sum()
	if sum <= 0 {
		return w
	}
	return CategoryWeights{
		Technical:     w.Technical / sum,
		Communication: w.Communication / sum,
		Experience:    w.Experience / sum,
		Cultural:      w.Cultural / sum,
		Behavioral:    w.Behavioral / sum,
		Education:     w.Education / sum,
	}
}

// Validate validates the CategoryWeights using the validator.
func (w *CategoryWeights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid category weights: %w", err)
	}
	return nil
}

// CategoryScores holds the six category scores
type CategoryScores struct {
	Technical     float64 `json:"technical"`
	Communication float64 `json:"communication"`
	Experience    float64 `json:"experience"`
	Cultural      float64 `json:"cultural"`
	Behavioral    float64 `json:"behavioral"`
	Education     float64 `json:"education"`
}

// DetailedScores holds the sub-scores the category scores are built from
type DetailedScores struct {
	SkillRelevance       float64 `json:"skill_relevance"`
	SkillDepth           float64 `json:"skill_depth"`
	TechnicalExperience  float64 `json:"technical_experience"`
	TechnicalCompetency  float64 `json:"technical_competency"`
	CommunicationClarity float64 `json:"communication_clarity"`
	Articulation         float64 `json:"articulation"`
	ResponseStructure    float64 `json:"response_structure"`
	Professionalism      float64 `json:"professionalism"`
	TechnicalExplanation float64 `json:"technical_explanation"`
	ResponseCompleteness float64 `json:"response_completeness"`
	ExperienceYears      float64 `json:"experience_years"`
	ExperienceRelevance  float64 `json:"experience_relevance"`
	ExperienceDepth      float64 `json:"experience_depth"`
	WorkStyleAlignment   float64 `json:"work_style_alignment"`
	ValuesAlignment      float64 `json:"values_alignment"`
	Leadership           float64 `json:"leadership"`
	Teamwork             float64 `json:"teamwork"`
	ProblemSolving       float64 `json:"problem_solving"`
	Adaptability         float64 `json:"adaptability"`
	Consistency          float64 `json:"consistency"`
}

// RecommendationType classifies a recommendation
type RecommendationType string

// Recommendation types
const (
	RecommendationStrength     RecommendationType = "strength"
	RecommendationImprovement  RecommendationType = "improvement"
	RecommendationConcern      RecommendationType = "concern"
	RecommendationVerification RecommendationType = "verification"
)

// Impact of a recommendation
type Impact string

// Impacts
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Recommendation is a rule-triggered hiring note
type Recommendation struct {
	Type       RecommendationType `json:"type"`
	Category   string             `json:"category"`
	Message    string             `json:"message"`
	Impact     Impact             `json:"impact"`
	Actionable bool               `json:"actionable"`
}

// ScoringMetadata records the inputs and factors behind a scoring result
type ScoringMetadata struct {
	WeightsUsed         CategoryWeights `json:"weights_used"`
	WeightSum           float64         `json:"weight_sum"`
	ProfileCompleteness float64         `json:"profile_completeness"`
	ConfidenceFactors   []string        `json:"confidence_factors"`
	SeriousFlagCount    int             `json:"serious_flag_count"`
	RequirementTitle    string          `json:"requirement_title,omitempty"`
}

// ScoringResult is the assessment of one profile against one job requirement
type ScoringResult struct {
	ProfileID       string           `json:"profile_id"`
	OverallScore    float64          `json:"overall_score"`
	CategoryScores  CategoryScores   `json:"category_scores"`
	DetailedScores  DetailedScores   `json:"detailed_scores"`
	Recommendations []Recommendation `json:"recommendations"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Confidence      float64          `json:"confidence"`
	Metadata        ScoringMetadata  `json:"metadata"`
}
