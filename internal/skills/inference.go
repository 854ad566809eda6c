package skills

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const inferredConfidence = 0.6

// compositeRule adds a composite skill when its phrases appear in the text or its
// predicate holds over the skills already matched.
type compositeRule struct {
	name     string
	category types.SkillCategory
	phrases  []string
	when     func(present map[string]bool, categories map[types.SkillCategory]int) bool
}

var compositeRules = []compositeRule{
	{
		name:     "Full Stack Development",
		category: types.CategoryBackend,
		phrases:  []string{"full stack", "full-stack", "fullstack"},
		when: func(_ map[string]bool, categories map[types.SkillCategory]int) bool {
			return categories[types.CategoryFrontend] > 0 && categories[types.CategoryBackend] > 0
		},
	},
	{
		name:     "Frontend Development",
		category: types.CategoryFrontend,
		phrases:  []string{"frontend", "front-end", "front end", "user interface", "ui development"},
		when: func(_ map[string]bool, categories map[types.SkillCategory]int) bool {
			return categories[types.CategoryFrontend] >= 2
		},
	},
	{
		name:     "Backend Development",
		category: types.CategoryBackend,
		phrases:  []string{"backend", "back-end", "back end", "server-side"},
		when: func(_ map[string]bool, categories map[types.SkillCategory]int) bool {
			return categories[types.CategoryBackend] >= 2
		},
	},
	{
		name:     "MERN Stack",
		category: types.CategoryBackend,
		phrases:  []string{"mern"},
		when: func(present map[string]bool, _ map[types.SkillCategory]int) bool {
			return present["mongodb"] && present["express"] && present["react"] && present["node.js"]
		},
	},
	{
		name:     "MEAN Stack",
		category: types.CategoryBackend,
		phrases:  []string{"mean stack"},
		when: func(present map[string]bool, _ map[types.SkillCategory]int) bool {
			return present["mongodb"] && present["express"] && present["angular"] && present["node.js"]
		},
	},
	{
		name:     "API Development",
		category: types.CategoryBackend,
		phrases:  []string{"api", "apis", "endpoints", "web services"},
		when: func(present map[string]bool, _ map[types.SkillCategory]int) bool {
			return present["rest apis"] || present["graphql"] || present["grpc"]
		},
	},
	{
		name:     "Database Design",
		category: types.CategoryDatabase,
		phrases:  []string{"database design", "schema design", "data modeling", "data model", "normalization"},
		when: func(_ map[string]bool, categories map[types.SkillCategory]int) bool {
			return categories[types.CategoryDatabase] >= 2
		},
	},
}

// inferCompositeSkills applies the contextual inference rules. Inferred skills are
// independent of the taxonomy and always intermediate at a fixed confidence.
func inferCompositeSkills(lower string, matched []types.Skill) []types.Skill {
	present := make(map[string]bool, len(matched))
	categories := make(map[types.SkillCategory]int)
	for _, s := range matched {
		key := SkillKey(s.Name)
		if !present[key] {
			categories[s.Category]++
		}
		present[key] = true
	}

	var inferred []types.Skill
	for _, rule := range compositeRules {
		phrase, ok := rule.matchPhrase(lower)
		if !ok && !rule.when(present, categories) {
			continue
		}
		context := "inferred from matched skills"
		if ok {
			context = phrase
		}
		inferred = append(inferred, types.Skill{
			Name:        rule.name,
			Category:    rule.category,
			Proficiency: types.ProficiencyIntermediate,
			Confidence:  inferredConfidence,
			Contexts:    []string{context},
			Source:      types.SkillSourceInference,
		})
	}
	return inferred
}

func (r compositeRule) matchPhrase(lower string) (string, bool) {
	for _, phrase := range r.phrases {
		for offset := 0; offset < len(lower); {
			idx := strings.Index(lower[offset:], phrase)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(phrase)
			if isBoundary(lower, start, end) {
				return phrase, true
			}
			offset = end
		}
	}
	return "", false
}
