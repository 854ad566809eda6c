// Package types provides type definitions for structured data used throughout the talent-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Clone returns a deep copy of the profile. Nothing in the copy shares memory with p.
func (p *CandidateProfile) Clone() *CandidateProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Skills = cloneSkills(p.Skills)
	if p.Experiences != nil {
		c.Experiences = make([]Experience, len(p.Experiences))
		for i, exp := range p.Experiences {
			exp.Responsibilities = cloneStrings(exp.Responsibilities)
			exp.Achievements = cloneStrings(exp.Achievements)
			exp.Technologies = cloneStrings(exp.Technologies)
			c.Experiences[i] = exp
		}
	}
	if p.Education != nil {
		c.Education = make([]Education, len(p.Education))
		for i, edu := range p.Education {
			edu.Honors = cloneStrings(edu.Honors)
			c.Education[i] = edu
		}
	}
	if p.Projects != nil {
		c.Projects = make([]Project, len(p.Projects))
		for i, proj := range p.Projects {
			proj.Technologies = cloneStrings(proj.Technologies)
			c.Projects[i] = proj
		}
	}
	c.Achievements = cloneSlice(p.Achievements)
	c.Flags = cloneSlice(p.Flags)
	if p.Communication.GrammarQuality != nil {
		g := *p.Communication.GrammarQuality
		c.Communication.GrammarQuality = &g
	}
	c.Technical.Specializations = cloneStrings(p.Technical.Specializations)
	return &c
}

// Clone returns a deep copy of the skill
func (s Skill) Clone() Skill {
	c := s
	c.Contexts = cloneStrings(s.Contexts)
	if s.YearsOfExperience != nil {
		y := *s.YearsOfExperience
		c.YearsOfExperience = &y
	}
	return c
}

// Clone returns a deep copy of the scoring result
func (r *ScoringResult) Clone() *ScoringResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Recommendations = cloneSlice(r.Recommendations)
	c.Strengths = cloneStrings(r.Strengths)
	c.Weaknesses = cloneStrings(r.Weaknesses)
	c.Metadata.ConfidenceFactors = cloneStrings(r.Metadata.ConfidenceFactors)
	return &c
}

func cloneSkills(skills []Skill) []Skill {
	if skills == nil {
		return nil
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = s.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	return cloneSlice(in)
}

// cloneSlice copies a slice of plain values, preserving nil
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
