// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCell is one candidate's entry in the cross-candidate skill table
type SkillCell struct {
	Proficiency ProficiencyLevel `json:"proficiency"`
	Confidence  float64          `json:"confidence"`
}

// ComparisonMatrix holds per-skill and per-candidate comparison data.
// The skill table maps skill name -> profile ID -> cell; candidates lacking a skill are absent.
type ComparisonMatrix struct {
	Skills        map[string]map[string]SkillCell `json:"skills"`
	Experience    map[string]float64              `json:"experience"`
	Communication map[string]float64              `json:"communication"`
	Scores        map[string]CategoryScores       `json:"scores"`
}

// CandidateRanking is one entry of the comparison ranking
type CandidateRanking struct {
	ProfileID    string  `json:"profile_id"`
	Name         string  `json:"name"`
	Rank         int     `json:"rank"`
	OverallScore float64 `json:"overall_score"`
	Scored       bool    `json:"scored"`
}

// Comparison recommendation types
const (
	ComparisonRanking   = "ranking"
	ComparisonStandout  = "standout"
	ComparisonTechnical = "technical_strength"
)

// ComparisonRecommendation is a derived insight about the compared candidates
type ComparisonRecommendation struct {
	Type       string   `json:"type"`
	Message    string   `json:"message"`
	ProfileIDs []string `json:"profile_ids"`
}

// ComparisonSummary holds the headline findings of a comparison
type ComparisonSummary struct {
	TopCandidate       string   `json:"top_candidate"`
	KeyDifferentiators []string `json:"key_differentiators"`
	Similarities       []string `json:"similarities"`
}

// ProfileComparisonResult is the output of a multi-candidate comparison
type ProfileComparisonResult struct {
	Profiles        []ProfileSummary           `json:"profiles"`
	Comparison      ComparisonMatrix           `json:"comparison"`
	Rankings        []CandidateRanking         `json:"rankings"`
	Recommendations []ComparisonRecommendation `json:"recommendations"`
	Summary         ComparisonSummary          `json:"summary"`
}
