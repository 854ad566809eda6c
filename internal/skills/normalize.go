package skills

import (
	"strings"
)

// NormalizeSkillName normalizes a skill name to its canonical taxonomy form.
// Names the taxonomy does not know keep their casing, except that all-lowercase
// or all-uppercase single words get a leading capital.
func (t *Taxonomy) NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	if def, ok := t.Lookup(normalized); ok {
		return def.Name
	}

	// Mixed case is taken as intentional
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	if strings.Contains(normalized, " ") {
		return normalized
	}

	return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
}

// NormalizeSkillName normalizes against the default taxonomy
func NormalizeSkillName(skillName string) string {
	return DefaultTaxonomy().NormalizeSkillName(skillName)
}

// SkillKey is the deduplication key for a skill name
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
