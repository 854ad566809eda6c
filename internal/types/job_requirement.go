// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Importance of a required skill
type Importance string

// Importance levels
const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice_to_have"
)

// JobRequirement describes what a role needs from a candidate
type JobRequirement struct {
	Title                string           `json:"title,omitempty"`
	Role                 string           `json:"role,omitempty"`
	Level                string           `json:"level,omitempty"`
	RequiredSkills       []RequiredSkill  `json:"required_skills" validate:"dive"`
	MinimumYears         float64          `json:"minimum_years" validate:"gte=0"`
	TargetProficiency    ProficiencyLevel `json:"target_proficiency,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	CommunicationTarget  float64          `json:"communication_target,omitempty" validate:"gte=0,lte=1"`
	LeadershipRequired   bool             `json:"leadership_required,omitempty"`
	LeadershipImportance float64          `json:"leadership_importance,omitempty" validate:"gte=0,lte=1"`
	TeamworkImportance   float64          `json:"teamwork_importance,omitempty" validate:"gte=0,lte=1"`
	CulturalValues       []string         `json:"cultural_values,omitempty"`
	WorkStyle            WorkStyle        `json:"work_style,omitempty" validate:"omitempty,oneof=remote hybrid onsite flexible"`
}

// RequiredSkill is one skill entry of a job requirement
type RequiredSkill struct {
	Name        string           `json:"name" validate:"required"`
	Category    SkillCategory    `json:"category,omitempty"`
	Proficiency ProficiencyLevel `json:"proficiency" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Importance  Importance       `json:"importance" validate:"omitempty,oneof=critical important nice_to_have"`
	Weight      float64          `json:"weight" validate:"gte=0"`
}

// EffectiveWeight returns the skill weight, treating an unset weight as 1.0
func (r RequiredSkill) EffectiveWeight() float64 {
	if r.Weight <= 0 {
		return 1.0
	}
	return r.Weight
}

// Validate validates the JobRequirement using the validator.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid job requirement: %w", err)
	}
	return nil
}
