// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// WorkStyle is a preferred or required working arrangement
type WorkStyle string

// Work styles
const (
	WorkStyleRemote   WorkStyle = "remote"
	WorkStyleHybrid   WorkStyle = "hybrid"
	WorkStyleOnsite   WorkStyle = "onsite"
	WorkStyleFlexible WorkStyle = "flexible"
)

// ResponseLength classifies how long a candidate's answers tend to be
type ResponseLength string

// Response lengths
const (
	ResponseTooShort    ResponseLength = "too_short"
	ResponseAppropriate ResponseLength = "appropriate"
	ResponseTooLong     ResponseLength = "too_long"
)

// FlagType classifies a profile flag
type FlagType string

// Flag types
const (
	FlagRedFlag       FlagType = "red_flag"
	FlagConcern       FlagType = "concern"
	FlagInconsistency FlagType = "inconsistency"
	FlagPositive      FlagType = "positive"
	FlagNote          FlagType = "note"
)

// Severity of a flag
type Severity string

// Severities
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// CandidateProfile is the aggregated, structured view of a candidate built from interview transcripts.
// Zero values mean "not assessed"; scoring substitutes documented neutral defaults for them.
type CandidateProfile struct {
	ID            string                  `json:"id"`
	PersonalInfo  PersonalInfo            `json:"personal_info"`
	Skills        []Skill                 `json:"skills"`
	Experiences   []Experience            `json:"experiences"`
	Education     []Education             `json:"education"`
	Projects      []Project               `json:"projects"`
	Achievements  []Achievement           `json:"achievements"`
	Communication CommunicationAssessment `json:"communication"`
	Behavioral    BehavioralTraits        `json:"behavioral"`
	Technical     TechnicalCompetency     `json:"technical"`
	Flags         []Flag                  `json:"flags"`
	Confidence    float64                 `json:"confidence"`
	Completeness  float64                 `json:"completeness"`
	CreatedAt     time.Time               `json:"created_at"`
	LastUpdated   time.Time               `json:"last_updated"`
}

// PersonalInfo holds identifying and preference data for a candidate
type PersonalInfo struct {
	Name               string    `json:"name"`
	Email              string    `json:"email,omitempty"`
	Title              string    `json:"title,omitempty"`
	YearsOfExperience  float64   `json:"years_of_experience"`
	CurrentCompany     string    `json:"current_company,omitempty"`
	Location           string    `json:"location,omitempty"`
	PreferredWorkStyle WorkStyle `json:"preferred_work_style,omitempty"`
}

// Experience is a single role held by the candidate
type Experience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	DurationYears    float64  `json:"duration_years"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	TeamSize         int      `json:"team_size,omitempty"`
	ReportingLevel   string   `json:"reporting_level,omitempty"` // individual, lead, manager, director
	RelevanceScore   float64  `json:"relevance_score"`
	Confidence       float64  `json:"confidence"`
}

// Education is a single degree or programme
type Education struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	Field          string   `json:"field,omitempty"`
	GraduationYear int      `json:"graduation_year,omitempty"`
	Honors         []string `json:"honors,omitempty"`
	Relevant       bool     `json:"relevant"`
}

// Project is a notable project the candidate described
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Role         string   `json:"role,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Outcome      string   `json:"outcome,omitempty"`
}

// Achievement is a notable accomplishment
type Achievement struct {
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Quantified  bool   `json:"quantified,omitempty"`
}

// CommunicationAssessment scores how the candidate communicates (each score 0-1)
type CommunicationAssessment struct {
	Clarity              float64        `json:"clarity"`
	Articulation         float64        `json:"articulation"`
	Structure            float64        `json:"structure"`
	Professionalism      float64        `json:"professionalism"`
	TechnicalExplanation float64        `json:"technical_explanation"`
	Enthusiasm           float64        `json:"enthusiasm"`
	ResponseLength       ResponseLength `json:"response_length,omitempty"`
	GrammarQuality       *float64       `json:"grammar_quality,omitempty"`
}

// Mean returns the average of the five core communication sub-scores
func (c CommunicationAssessment) Mean() float64 {
	return (c.Clarity + c.Articulation + c.Structure + c.Professionalism + c.TechnicalExplanation) / 5
}

// BehavioralTraits scores observed behaviours (each score 0-1)
type BehavioralTraits struct {
	Leadership      float64 `json:"leadership"`
	Teamwork        float64 `json:"teamwork"`
	ProblemSolving  float64 `json:"problem_solving"`
	Communication   float64 `json:"communication"`
	Adaptability    float64 `json:"adaptability"`
	Initiative      float64 `json:"initiative"`
	LearningAgility float64 `json:"learning_agility"`
}

// TechnicalCompetency is the interviewer-level view of technical ability
type TechnicalCompetency struct {
	Level           ProficiencyLevel `json:"level,omitempty"`
	Score           float64          `json:"score"`
	Depth           float64          `json:"depth,omitempty"`
	Breadth         float64          `json:"breadth,omitempty"`
	Specializations []string         `json:"specializations,omitempty"`
}

// Flag marks something notable about a profile
type Flag struct {
	Type        FlagType `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// IsSerious reports whether the flag is a red flag or a high-severity inconsistency
func (f Flag) IsSerious() bool {
	return f.Type == FlagRedFlag || (f.Type == FlagInconsistency && f.Severity == SeverityHigh)
}

// TotalYears returns the stated tenure, falling back to the sum of experience durations
func (p *CandidateProfile) TotalYears() float64 {
	if p.PersonalInfo.YearsOfExperience > 0 {
		return p.PersonalInfo.YearsOfExperience
	}
	total := 0.0
	for _, exp := range p.Experiences {
		total += exp.DurationYears
	}
	return total
}
