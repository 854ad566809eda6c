package scoring

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	skillMatchShare          = 0.4
	skillProficiencyShare    = 0.3
	technicalExperienceShare = 0.2
	technicalCompetencyShare = 0.1

	levelGapPenalty           = 0.25
	unmatchedNiceToHaveCredit = 0.5
	neutralScore              = 0.5

	relevantExperienceThreshold = 0.6
	technicalExperienceFloor    = 0.2
)

// levelScores maps proficiency to a 0-1 score. Unknown levels count as intermediate.
var levelScores = map[types.ProficiencyLevel]float64{
	types.ProficiencyExpert:       1.0,
	types.ProficiencyAdvanced:     0.8,
	types.ProficiencyIntermediate: 0.6,
	types.ProficiencyBeginner:     0.3,
}

func levelScore(level types.ProficiencyLevel) float64 {
	if v, ok := levelScores[types.ProficiencyLevel(strings.ToLower(string(level)))]; ok {
		return v
	}
	return levelScores[types.ProficiencyIntermediate]
}

// ProficiencyMatch scores how well a candidate level covers a required level.
// Meeting or exceeding the requirement scores 1; each level short costs 0.25 and
// a gap spanning the whole scale scores 0. An unset requirement is always met and
// an unset candidate level counts as intermediate.
func ProficiencyMatch(candidate, required types.ProficiencyLevel) float64 {
	r := required.Rank()
	if r == 0 {
		return 1.0
	}
	c := candidate.Rank()
	if c == 0 {
		c = types.ProficiencyIntermediate.Rank()
	}
	gap := r - c
	if gap <= 0 {
		return 1.0
	}
	if gap >= len(types.ProficiencyLevels)-1 {
		return 0
	}
	return max(0, 1-levelGapPenalty*float64(gap))
}

func (s *scorer) technical(d *types.DetailedScores) float64 {
	d.SkillRelevance = s.skillMatch()
	d.SkillDepth = s.skillProficiency()
	d.TechnicalExperience = s.technicalExperience()
	d.TechnicalCompetency = s.technicalCompetency()

	return clamp01(d.SkillRelevance*skillMatchShare +
		d.SkillDepth*skillProficiencyShare +
		d.TechnicalExperience*technicalExperienceShare +
		d.TechnicalCompetency*technicalCompetencyShare)
}

// skillMatch is the weighted share of required skills the candidate covers
func (s *scorer) skillMatch() float64 {
	if len(s.req.RequiredSkills) == 0 {
		s.note("no required skills specified")
		return neutralScore
	}
	if len(s.profile.Skills) == 0 {
		s.note("no skills recorded")
	}

	total, matched := 0.0, 0.0
	for _, rs := range s.req.RequiredSkills {
		weight := rs.EffectiveWeight()
		total += weight

		if best, ok := s.bestMatch(rs); ok {
			matched += weight * best
			continue
		}
		if rs.Importance == types.ImportanceNiceToHave {
			matched += weight * unmatchedNiceToHaveCredit
		}
	}

	if total <= 0 {
		return 0
	}
	return min(1, matched/total)
}

// bestMatch finds the candidate skill that best covers rs. Names match when equal
// after canonicalization or when either contains the other.
func (s *scorer) bestMatch(rs types.RequiredSkill) (float64, bool) {
	want := skills.SkillKey(s.taxonomy.NormalizeSkillName(rs.Name))
	if want == "" {
		return 0, false
	}
	required := rs.Proficiency
	if required == "" {
		required = s.req.TargetProficiency
	}

	best, found := 0.0, false
	for _, cs := range s.profile.Skills {
		have := skills.SkillKey(s.taxonomy.NormalizeSkillName(cs.Name))
		if have == "" {
			continue
		}
		if have != want && !strings.Contains(have, want) && !strings.Contains(want, have) {
			continue
		}
		score := ProficiencyMatch(cs.Proficiency, required) * cs.Confidence
		if !found || score > best {
			best, found = score, true
		}
	}
	return best, found
}

// skillProficiency is the mean confidence-weighted level score over candidate skills
func (s *scorer) skillProficiency() float64 {
	if len(s.profile.Skills) == 0 {
		return 0
	}
	sum := 0.0
	for _, cs := range s.profile.Skills {
		sum += levelScore(cs.Proficiency) * cs.Confidence
	}
	return sum / float64(len(s.profile.Skills))
}

func (s *scorer) technicalExperience() float64 {
	sum, n := 0.0, 0
	for _, exp := range s.profile.Experiences {
		if exp.RelevanceScore <= relevantExperienceThreshold {
			continue
		}
		sum += exp.RelevanceScore*0.4 + exp.Confidence*0.3 + experienceDepth(exp)*0.3
		n++
	}
	if n == 0 {
		s.note("no relevant technical experience")
		return technicalExperienceFloor
	}
	return sum / float64(n)
}

// experienceDepth rewards breadth of technologies, ambitious achievements and team size
func experienceDepth(exp types.Experience) float64 {
	depth := 0.5
	if len(exp.Technologies) > 3 {
		depth += 0.2
	}
	achievements := strings.ToLower(strings.Join(exp.Achievements, " "))
	for _, marker := range []string{"architect", "performance", "scal"} {
		if strings.Contains(achievements, marker) {
			depth += 0.1
		}
	}
	if exp.TeamSize > 5 {
		depth += 0.1
	}
	return min(1, depth)
}

func (s *scorer) technicalCompetency() float64 {
	tc := s.profile.Technical
	if tc.Score > 0 {
		return clamp01(tc.Score)
	}
	if tc.Level.Valid() {
		return levelScore(tc.Level)
	}
	s.note("technical competency not assessed")
	return neutralScore
}
