package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	culturalBase       = 0.5
	workStyleShare     = 0.3
	communicationShare = 0.3
	valuesShare        = 0.4

	flexibleWorkStyle = 0.8
	workStyleMismatch = 0.3
)

// cultural is additive on a 0.5 base and clamped; the terms alone can reach 1.5
func (s *scorer) cultural(d *types.DetailedScores) float64 {
	d.WorkStyleAlignment = s.workStyleAlignment()
	d.ValuesAlignment = s.valuesAlignment()

	score := culturalBase +
		d.WorkStyleAlignment*workStyleShare +
		s.communicationFit()*communicationShare +
		d.ValuesAlignment*valuesShare
	return clamp01(score)
}

func (s *scorer) workStyleAlignment() float64 {
	wanted := s.req.WorkStyle
	preferred := s.profile.PersonalInfo.PreferredWorkStyle
	switch {
	case wanted == "":
		return neutralScore
	case preferred == "":
		s.note("work style preference unknown")
		return neutralScore
	case strings.EqualFold(string(wanted), string(preferred)):
		return 1.0
	case wanted == types.WorkStyleFlexible || preferred == types.WorkStyleFlexible:
		return flexibleWorkStyle
	default:
		return workStyleMismatch
	}
}

func (s *scorer) communicationFit() float64 {
	mean := s.profile.Communication.Mean()
	if s.req.CommunicationTarget <= 0 {
		return mean
	}
	return min(1, mean/s.req.CommunicationTarget)
}

// valuesAlignment is the share of cultural values the candidate's own words mention
func (s *scorer) valuesAlignment() float64 {
	if len(s.req.CulturalValues) == 0 {
		return neutralScore
	}

	text := narrativeText(s.profile)
	hits, total := 0, 0
	for _, v := range s.req.CulturalValues {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		total++
		if strings.Contains(text, v) {
			hits++
		}
	}
	if total == 0 {
		return neutralScore
	}
	return float64(hits) / float64(total)
}

// narrativeText is the lowercased free text a profile carries
func narrativeText(p *types.CandidateProfile) string {
	var sb strings.Builder
	write := func(parts ...string) {
		for _, part := range parts {
			if part != "" {
				sb.WriteString(strings.ToLower(part))
				sb.WriteByte(' ')
			}
		}
	}
	for _, exp := range p.Experiences {
		write(exp.Responsibilities...)
		write(exp.Achievements...)
	}
	for _, proj := range p.Projects {
		write(proj.Description, proj.Outcome)
	}
	for _, a := range p.Achievements {
		write(a.Description)
	}
	for _, f := range p.Flags {
		if f.Type == types.FlagPositive || f.Type == types.FlagNote {
			write(f.Description)
		}
	}
	return sb.String()
}
