package skills

import (
	"github.com/jonathan/talent-matcher/internal/types"
)

// Deduplicate collapses skills sharing a case-insensitive name. The kept record is
// the one with the highest confidence (the first one on ties), with the contexts of
// every collapsed record merged into it. Order of first appearance is preserved.
func Deduplicate(skills []types.Skill) []types.Skill {
	if len(skills) == 0 {
		return []types.Skill{}
	}

	order := make([]string, 0, len(skills))
	kept := make(map[string]*types.Skill, len(skills))
	contexts := make(map[string][]string, len(skills))

	for _, s := range skills {
		key := SkillKey(s.Name)
		if key == "" {
			continue
		}

		existing, exists := kept[key]
		if !exists {
			c := s.Clone()
			kept[key] = &c
			order = append(order, key)
			contexts[key] = appendUnique(nil, s.Contexts...)
			continue
		}

		contexts[key] = appendUnique(contexts[key], s.Contexts...)
		if s.Confidence > existing.Confidence {
			c := s.Clone()
			kept[key] = &c
		}
	}

	out := make([]types.Skill, 0, len(order))
	for _, key := range order {
		s := kept[key]
		s.Contexts = contexts[key]
		out = append(out, *s)
	}
	return out
}

// MergeSkills merges freshly extracted skills into an existing skill list using
// the same rule as Deduplicate, additionally keeping the longest tenure seen for
// each skill. Neither input is modified.
func MergeSkills(existing, extracted []types.Skill) []types.Skill {
	all := make([]types.Skill, 0, len(existing)+len(extracted))
	all = append(all, existing...)
	all = append(all, extracted...)

	longest := make(map[string]float64)
	for _, s := range all {
		if s.YearsOfExperience == nil {
			continue
		}
		key := SkillKey(s.Name)
		if y, ok := longest[key]; !ok || *s.YearsOfExperience > y {
			longest[key] = *s.YearsOfExperience
		}
	}

	merged := Deduplicate(all)
	for i := range merged {
		if y, ok := longest[SkillKey(merged[i].Name)]; ok {
			merged[i].YearsOfExperience = &y
		}
	}
	return merged
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		found := false
		for _, d := range dst {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
