package scoring

import "strings"

// technicalFields are degree or field keywords that count as a technical background
var technicalFields = []string{
	"computer science",
	"computer engineering",
	"software",
	"engineering",
	"information technology",
	"data science",
	"mathematics",
	"statistics",
	"physics",
	"informatics",
	"cs",
}

func (s *scorer) education() float64 {
	entries := s.profile.Education
	if len(entries) == 0 {
		s.note("no education records")
		return neutralScore
	}

	score := neutralScore
	technical, honors := false, false
	for _, e := range entries {
		if e.Relevant {
			score += 0.2
		}
		if isTechnicalField(e.Degree + " " + e.Field) {
			technical = true
		}
		if len(e.Honors) > 0 {
			honors = true
		}
	}
	if technical {
		score += 0.2
	}
	if honors {
		score += 0.1
	}
	return clamp01(score)
}

// isTechnicalField matches whole words so "physics" matches but "cs" does not match "economics"
func isTechnicalField(text string) bool {
	words := " " + strings.Join(strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}), " ") + " "
	for _, field := range technicalFields {
		if strings.Contains(words, " "+field+" ") {
			return true
		}
	}
	return false
}
