package skills

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	baseMatchConfidence   = 0.8
	relevanceBoostPerWord = 0.05
	maxRelevanceBoost     = 0.2
	negationPenalty       = 0.3
)

// relevanceWords raise match confidence when they appear near a skill mention
var relevanceWords = []string{"experience", "skilled", "proficient", "expert", "years", "worked", "used"}

// negationWords cut match confidence when they appear near a skill mention
var negationWords = map[string]bool{"not": true, "never": true}

// levelCheckOrder is the order in which indicator lists are consulted
var levelCheckOrder = []types.ProficiencyLevel{
	types.ProficiencyExpert,
	types.ProficiencyAdvanced,
	types.ProficiencyIntermediate,
	types.ProficiencyBeginner,
}

// genericLevelWords are seniority words consulted when no skill-specific indicator matched
var genericLevelWords = []struct {
	level types.ProficiencyLevel
	words []string
}{
	{types.ProficiencyExpert, []string{"expert", "master", "architect"}},
	{types.ProficiencyAdvanced, []string{"senior", "advanced", "lead", "proficient"}},
	{types.ProficiencyBeginner, []string{"basic", "beginner", "learning"}},
}

// inferProficiency derives a proficiency level from the text surrounding a skill mention
func inferProficiency(def types.SkillDefinition, context string) types.ProficiencyLevel {
	lower := strings.ToLower(context)

	for _, level := range levelCheckOrder {
		for _, indicator := range def.Indicators[level] {
			if strings.Contains(lower, strings.ToLower(indicator)) {
				return level
			}
		}
	}

	words := wordSet(lower)
	for _, group := range genericLevelWords {
		for _, w := range group.words {
			if words[w] {
				return group.level
			}
		}
	}

	return types.ProficiencyIntermediate
}

// matchConfidence scores how much a skill mention should be trusted
func matchConfidence(context string) float64 {
	lower := strings.ToLower(context)

	boost := 0.0
	for _, w := range relevanceWords {
		if strings.Contains(lower, w) {
			boost += relevanceBoostPerWord
		}
	}
	if boost > maxRelevanceBoost {
		boost = maxRelevanceBoost
	}

	confidence := baseMatchConfidence + boost
	for w := range wordSet(lower) {
		if negationWords[w] {
			confidence *= negationPenalty
			break
		}
	}

	return clamp01(confidence)
}

// tenureMatcher extracts "years of experience" for one taxonomy term
type tenureMatcher struct {
	patterns []*regexp.Regexp
}

const yearsPattern = `(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)`

func newTenureMatcher(term string) tenureMatcher {
	quoted := regexp.QuoteMeta(term)
	exprs := []string{
		// "5 years of experience with go"; up to four filler words, so "with python and go" credits go too
		fmt.Sprintf(`%s\s+(?:of\s+)?(?:[a-z\-]+\s+){0,4}?(?:with\s+|in\s+|using\s+)?%s(?:[^a-z0-9]|$)`, yearsPattern, quoted),
		// "go for 5 years"
		fmt.Sprintf(`(?:^|[^a-z0-9])%s\s+for\s+(?:about\s+|over\s+|nearly\s+)?%s`, quoted, yearsPattern),
		// "5 years go"
		fmt.Sprintf(`%s\s+%s(?:[^a-z0-9]|$)`, yearsPattern, quoted),
	}
	m := tenureMatcher{patterns: make([]*regexp.Regexp, 0, len(exprs))}
	for _, expr := range exprs {
		m.patterns = append(m.patterns, regexp.MustCompile(expr))
	}
	return m
}

// find returns the first tenure found in lowercased text; the first pattern to match wins
func (m tenureMatcher) find(lowerText string) *float64 {
	for _, re := range m.patterns {
		match := re.FindStringSubmatch(lowerText)
		if match == nil {
			continue
		}
		years, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}

// wordSet splits text into lowercase word tokens; apostrophes stay inside words
func wordSet(lower string) map[string]bool {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'')
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
