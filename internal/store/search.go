package store

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

// SearchProfiles filters, sorts and pages the stored profiles. Filters combine
// with AND across filter types and OR within one filter list. Total counts every
// match before paging; facets always describe the whole store.
func (s *Store) SearchProfiles(query types.SearchQuery) (*types.ProfileSearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, &InvalidArgumentError{Message: "invalid search query", Cause: err}
	}

	limit := query.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.filter(query)
	if terms := strings.Fields(strings.ToLower(query.SearchText)); len(terms) > 0 {
		matches = filterText(matches, terms)
	}
	s.sortProfiles(matches, query.SortBy, query.SortOrder)

	result := &types.ProfileSearchResult{
		Profiles:    []types.ProfileSummary{},
		Total:       len(matches),
		Limit:       limit,
		Offset:      query.Offset,
		Facets:      s.facets(),
		Suggestions: s.suggestions(query.SearchText),
	}

	if query.Offset < len(matches) {
		// limit may be close to MaxInt, so never add it to the offset unchecked
		end := len(matches)
		if limit < end-query.Offset {
			end = query.Offset + limit
		}
		for _, p := range matches[query.Offset:end] {
			result.Profiles = append(result.Profiles, ranking.Summarize(p.Clone(), s.scoreCopy(p.ID)))
		}
	}

	return result, nil
}

// filter applies the structural filters; the caller holds a read lock
func (s *Store) filter(q types.SearchQuery) []*types.CandidateProfile {
	var allowed []map[string]struct{}
	if len(q.Skills) > 0 {
		allowed = append(allowed, s.index.lookup(dimSkills, skillQueryKeys(q.Skills), false))
	}
	if len(q.Companies) > 0 {
		allowed = append(allowed, s.index.lookup(dimCompanies, q.Companies, true))
	}
	if len(q.Locations) > 0 {
		allowed = append(allowed, s.index.lookup(dimLocations, q.Locations, true))
	}

	out := make([]*types.CandidateProfile, 0, len(s.profiles))
	for _, id := range s.sortedIDs() {
		if !inAll(allowed, id) {
			continue
		}
		p := s.profiles[id]
		if !hasAnyCategory(p, q.SkillCategories) || !hasAnyProficiency(p, q.ProficiencyLevels) {
			continue
		}
		if !q.ExperienceRange.Contains(p.TotalYears()) ||
			!q.CompletenessRange.Contains(p.Completeness) ||
			!q.UpdatedRange.Contains(p.LastUpdated) {
			continue
		}
		if !s.scoresMatch(id, q.Scores) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inAll(sets []map[string]struct{}, id string) bool {
	for _, set := range sets {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func hasAnyCategory(p *types.CandidateProfile, categories []types.SkillCategory) bool {
	if len(categories) == 0 {
		return true
	}
	for _, sk := range p.Skills {
		for _, c := range categories {
			if strings.EqualFold(string(sk.Category), string(c)) {
				return true
			}
		}
	}
	return false
}

func hasAnyProficiency(p *types.CandidateProfile, levels []types.ProficiencyLevel) bool {
	if len(levels) == 0 {
		return true
	}
	for _, sk := range p.Skills {
		for _, l := range levels {
			if sk.Proficiency.Rank() == l.Rank() {
				return true
			}
		}
	}
	return false
}

// scoresMatch checks score ranges against the stored result; unscored profiles
// never satisfy a score filter
func (s *Store) scoresMatch(id string, f *types.ScoreFilters) bool {
	if f.IsEmpty() {
		return true
	}
	r, ok := s.scores[id]
	if !ok {
		return false
	}
	return f.Overall.Contains(r.OverallScore) &&
		f.Technical.Contains(r.CategoryScores.Technical) &&
		f.Communication.Contains(r.CategoryScores.Communication) &&
		f.Experience.Contains(r.CategoryScores.Experience)
}

// filterText keeps profiles whose searchable text contains every term
func filterText(profiles []*types.CandidateProfile, terms []string) []*types.CandidateProfile {
	out := profiles[:0:0]
	for _, p := range profiles {
		text := searchableText(p)
		matched := true
		for _, t := range terms {
			if !strings.Contains(text, t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out
}

// searchableText is the lowercased text a free-text query is matched against
func searchableText(p *types.CandidateProfile) string {
	parts := []string{
		p.PersonalInfo.Name,
		p.PersonalInfo.Title,
		p.PersonalInfo.CurrentCompany,
		p.PersonalInfo.Location,
	}
	for _, sk := range p.Skills {
		parts = append(parts, sk.Name)
	}
	for _, exp := range p.Experiences {
		parts = append(parts, exp.Company, exp.Title)
		parts = append(parts, exp.Responsibilities...)
		parts = append(parts, exp.Achievements...)
		parts = append(parts, exp.Technologies...)
	}
	for _, edu := range p.Education {
		parts = append(parts, edu.Institution, edu.Degree, edu.Field)
	}
	for _, proj := range p.Projects {
		parts = append(parts, proj.Name, proj.Description, proj.Outcome)
		parts = append(parts, proj.Technologies...)
	}
	for _, a := range p.Achievements {
		parts = append(parts, a.Description)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// sortProfiles orders profiles in place; ties fall back to ascending ID
func (s *Store) sortProfiles(profiles []*types.CandidateProfile, by types.SortField, order types.SortOrder) {
	if by == "" {
		by = types.SortByDate
	}
	desc := order == types.SortDescending

	compare := func(a, b *types.CandidateProfile) int {
		switch by {
		case types.SortByScore:
			return cmpFloat(s.overall(a.ID), s.overall(b.ID))
		case types.SortByExperience:
			return cmpFloat(a.TotalYears(), b.TotalYears())
		case types.SortByName:
			return strings.Compare(strings.ToLower(a.PersonalInfo.Name), strings.ToLower(b.PersonalInfo.Name))
		default:
			return a.LastUpdated.Compare(b.LastUpdated)
		}
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		c := compare(profiles[i], profiles[j])
		if c == 0 {
			return profiles[i].ID < profiles[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// overall returns the stored overall score, or -1 for unscored profiles
func (s *Store) overall(id string) float64 {
	if r, ok := s.scores[id]; ok {
		return r.OverallScore
	}
	return -1
}

func (s *Store) scoreCopy(id string) *types.ScoringResult {
	if r, ok := s.scores[id]; ok {
		return r.Clone()
	}
	return nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
