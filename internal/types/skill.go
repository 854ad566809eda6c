// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ProficiencyLevel is an ordered skill mastery tier
type ProficiencyLevel string

// Proficiency levels, lowest to highest
const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

// ProficiencyLevels lists every level in ascending order
var ProficiencyLevels = []ProficiencyLevel{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
}

// Rank returns the position of the level on the ordered scale (1-4), or 0 if unknown.
func (p ProficiencyLevel) Rank() int {
	switch ProficiencyLevel(strings.ToLower(string(p))) {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 0
	}
}

// Valid reports whether the level is one of the four known tiers
func (p ProficiencyLevel) Valid() bool {
	return p.Rank() > 0
}

// AtLeast reports whether p is at or above other on the ordered scale
func (p ProficiencyLevel) AtLeast(other ProficiencyLevel) bool {
	return p.Rank() >= other.Rank()
}

// SkillCategory groups skills in the taxonomy
type SkillCategory string

// Skill categories known to the taxonomy
const (
	CategoryProgramming SkillCategory = "programming"
	CategoryFrontend    SkillCategory = "frontend"
	CategoryBackend     SkillCategory = "backend"
	CategoryDatabase    SkillCategory = "database"
	CategoryCloud       SkillCategory = "cloud"
	CategoryDevOps      SkillCategory = "devops"
	CategoryData        SkillCategory = "data"
	CategoryMobile      SkillCategory = "mobile"
	CategoryMethodology SkillCategory = "methodology"
	CategorySoftSkill   SkillCategory = "soft_skill"
)

// SkillCategories is the full category set, in display order
var SkillCategories = []SkillCategory{
	CategoryProgramming,
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryCloud,
	CategoryDevOps,
	CategoryData,
	CategoryMobile,
	CategoryMethodology,
	CategorySoftSkill,
}

// SkillDefinition is immutable taxonomy reference data for one skill
type SkillDefinition struct {
	Name          string                        `json:"name"`
	Aliases       []string                      `json:"aliases,omitempty"`
	Category      SkillCategory                 `json:"category"`
	RelatedSkills []string                      `json:"related_skills,omitempty"`
	Indicators    map[ProficiencyLevel][]string `json:"indicators,omitempty"`
}

// Skill sources
const (
	SkillSourceTaxonomy     = "taxonomy"
	SkillSourceInference    = "inference"
	SkillSourceAugmentation = "augmentation"
)

// Skill is a skill record, either freshly extracted from text or held on a profile
type Skill struct {
	Name              string           `json:"name"`
	Category          SkillCategory    `json:"category"`
	Proficiency       ProficiencyLevel `json:"proficiency"`
	Confidence        float64          `json:"confidence"`
	Contexts          []string         `json:"contexts,omitempty"`
	YearsOfExperience *float64         `json:"years_of_experience,omitempty"`
	Source            string           `json:"source,omitempty"`
}

// SkillSuggestion proposes a related skill worth probing for
type SkillSuggestion struct {
	Name        string  `json:"name"`
	Reason      string  `json:"reason"`
	SourceSkill string  `json:"source_skill"`
	Confidence  float64 `json:"confidence"`
}

// ExtractionResult is the output of one skill extraction call
type ExtractionResult struct {
	Skills            []Skill           `json:"skills"`
	Confidence        float64           `json:"confidence"`
	Suggestions       []SkillSuggestion `json:"suggestions"`
	MissingCategories []SkillCategory   `json:"missing_categories"`
}
