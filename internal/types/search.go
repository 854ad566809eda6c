// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SortField selects the ordering of search results
type SortField string

// Sort fields
const (
	SortByScore      SortField = "score"
	SortByExperience SortField = "experience"
	SortByName       SortField = "name"
	SortByDate       SortField = "date"
)

// SortOrder is ascending or descending
type SortOrder string

// Sort orders
const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Range is an inclusive numeric range; a nil bound is open
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the range
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// DateRange is an inclusive time range; a nil bound is open
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Contains reports whether t lies within the range
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// ScoreFilters constrains results by their stored scoring result
type ScoreFilters struct {
	Overall       *Range `json:"overall,omitempty"`
	Technical     *Range `json:"technical,omitempty"`
	Communication *Range `json:"communication,omitempty"`
	Experience    *Range `json:"experience,omitempty"`
}

// IsEmpty reports whether no score filter is set
func (f *ScoreFilters) IsEmpty() bool {
	return f == nil || (f.Overall == nil && f.Technical == nil && f.Communication == nil && f.Experience == nil)
}

// SearchQuery describes a filtered, sorted, paginated profile search.
// Filters combine with AND across filter types and OR within a filter list.
type SearchQuery struct {
	Skills            []string           `json:"skills,omitempty"`
	SkillCategories   []SkillCategory    `json:"skill_categories,omitempty"`
	ExperienceRange   *Range             `json:"experience_range,omitempty"`
	ProficiencyLevels []ProficiencyLevel `json:"proficiency_levels,omitempty" validate:"dive,oneof=beginner intermediate advanced expert"`
	Scores            *ScoreFilters      `json:"scores,omitempty"`
	Companies         []string           `json:"companies,omitempty"`
	Locations         []string           `json:"locations,omitempty"`
	CompletenessRange *Range             `json:"completeness_range,omitempty"`
	UpdatedRange      *DateRange         `json:"updated_range,omitempty"`
	SearchText        string             `json:"search_text,omitempty"`
	SortBy            SortField          `json:"sort_by,omitempty" validate:"omitempty,oneof=score experience name date"`
	SortOrder         SortOrder          `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
	Limit             int                `json:"limit,omitempty" validate:"gte=0"`
	Offset            int                `json:"offset,omitempty" validate:"gte=0"`
}

// Validate validates the SearchQuery using the validator.
func (q *SearchQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid search query: %w", err)
	}
	return nil
}

// SkillSummary is a compact view of one skill for listings
type SkillSummary struct {
	Name        string           `json:"name"`
	Proficiency ProficiencyLevel `json:"proficiency"`
	Confidence  float64          `json:"confidence"`
}

// ScoreSnapshot is a compact view of a stored scoring result
type ScoreSnapshot struct {
	Overall       float64 `json:"overall"`
	Technical     float64 `json:"technical"`
	Communication float64 `json:"communication"`
	Experience    float64 `json:"experience"`
	Confidence    float64 `json:"confidence"`
}

// ProfileSummary is a read-only listing projection of a profile
type ProfileSummary struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Title             string         `json:"title,omitempty"`
	Company           string         `json:"company,omitempty"`
	Location          string         `json:"location,omitempty"`
	YearsOfExperience float64        `json:"years_of_experience"`
	TopSkills         []SkillSummary `json:"top_skills"`
	Score             *ScoreSnapshot `json:"score,omitempty"`
	Flags             []Flag         `json:"flags"`
	Completeness      float64        `json:"completeness"`
	LastUpdated       time.Time      `json:"last_updated"`
}

// FacetCount is one bucket of a facet
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SearchFacets describes the whole stored population, independent of query filters
type SearchFacets struct {
	Skills           []FacetCount `json:"skills"`
	SkillCategories  []FacetCount `json:"skill_categories"`
	Companies        []FacetCount `json:"companies"`
	Locations        []FacetCount `json:"locations"`
	ExperienceRanges []FacetCount `json:"experience_ranges"`
	ScoreRanges      []FacetCount `json:"score_ranges"`
}

// ProfileSearchResult is the output of a profile search
type ProfileSearchResult struct {
	Profiles    []ProfileSummary `json:"profiles"`
	Total       int              `json:"total"`
	Limit       int              `json:"limit"`
	Offset      int              `json:"offset"`
	Facets      SearchFacets     `json:"facets"`
	Suggestions []string         `json:"suggestions"`
}

// ProfileAnalytics summarises the whole stored population
type ProfileAnalytics struct {
	TotalProfiles       int          `json:"total_profiles"`
	ScoredProfiles      int          `json:"scored_profiles"`
	AverageCompleteness float64      `json:"average_completeness"`
	AverageConfidence   float64      `json:"average_confidence"`
	AverageScore        float64      `json:"average_score"`
	AverageYears        float64      `json:"average_years"`
	TopSkills           []FacetCount `json:"top_skills"`
	CategoryBreakdown   []FacetCount `json:"category_breakdown"`
	TopCompanies        []FacetCount `json:"top_companies"`
	FlaggedProfiles     int          `json:"flagged_profiles"`
}
