package skills

import (
	"github.com/jonathan/talent-matcher/internal/types"
)

// Suggestion reasons
const (
	ReasonCoOccurrence  = "co-occurrence"
	ReasonCommonPairing = "common pairing"

	coOccurrenceConfidence = 0.5
	pairingConfidence      = 0.6
)

// suggest proposes related skills that were not mentioned, capped at MaxSuggestions.
// Skills are visited in the order given (highest confidence first).
func (e *Extractor) suggest(extracted []types.Skill) []types.SkillSuggestion {
	present := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		present[SkillKey(s.Name)] = true
	}

	suggestions := make([]types.SkillSuggestion, 0, e.opts.MaxSuggestions)
	seen := make(map[string]bool)
	add := func(name, reason, source string, confidence float64) bool {
		key := SkillKey(name)
		if present[key] || seen[key] {
			return false
		}
		seen[key] = true
		suggestions = append(suggestions, types.SkillSuggestion{
			Name:        name,
			Reason:      reason,
			SourceSkill: source,
			Confidence:  confidence,
		})
		return len(suggestions) >= e.opts.MaxSuggestions
	}

	for _, s := range extracted {
		if def, ok := e.taxonomy.Lookup(s.Name); ok {
			for _, related := range def.RelatedSkills {
				if add(related, ReasonCoOccurrence, s.Name, coOccurrenceConfidence) {
					return suggestions
				}
			}
		}
		for _, paired := range e.taxonomy.Pairings(s.Name) {
			if add(paired, ReasonCommonPairing, s.Name, pairingConfidence) {
				return suggestions
			}
		}
	}
	return suggestions
}
