package store

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/skills"
	"github.com/jonathan/talent-matcher/internal/types"
)

// dimension names one of the term indexes
type dimension int

const (
	dimSkills dimension = iota
	dimCompanies
	dimLocations
	dimEducation
	dimTechnologies
	dimensionCount
)

// postings maps a lowercased term to the profiles carrying it, each with the
// spelling that profile used
type postings map[string]map[string]string

// index holds one posting list per dimension. Every profile's terms are kept
// so removal prunes exactly what was added.
type index struct {
	postings [dimensionCount]postings
	terms    map[string][dimensionCount][]string
}

func newIndex() *index {
	idx := &index{terms: make(map[string][dimensionCount][]string)}
	for d := range idx.postings {
		idx.postings[d] = make(postings)
	}
	return idx
}

// add indexes a profile, replacing anything previously indexed under its id
func (idx *index) add(p *types.CandidateProfile) {
	idx.remove(p.ID)

	var terms [dimensionCount][]string
	for d, values := range profileTerms(p) {
		seen := make(map[string]bool, len(values))
		for _, v := range values {
			spelling := strings.TrimSpace(v)
			key := strings.ToLower(spelling)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			terms[d] = append(terms[d], key)

			ids, ok := idx.postings[d][key]
			if !ok {
				ids = make(map[string]string)
				idx.postings[d][key] = ids
			}
			ids[p.ID] = spelling
		}
	}
	idx.terms[p.ID] = terms
}

// remove drops every posting for id; terms left without profiles are deleted
func (idx *index) remove(id string) {
	terms, ok := idx.terms[id]
	if !ok {
		return
	}
	for d, keys := range terms {
		for _, key := range keys {
			ids := idx.postings[d][key]
			delete(ids, id)
			if len(ids) == 0 {
				delete(idx.postings[d], key)
			}
		}
	}
	delete(idx.terms, id)
}

// display returns the spelling used by the lowest profile id carrying a term,
// so it depends only on the current postings and never on insertion order
func display(ids map[string]string) string {
	lowest, spelling := "", ""
	for id, s := range ids {
		if lowest == "" || id < lowest {
			lowest, spelling = id, s
		}
	}
	return spelling
}

// lookup returns the ids carrying any of the values in d. With partial set a
// term also matches when it contains the value ("san francisco, ca" for "san francisco").
func (idx *index) lookup(d dimension, values []string, partial bool) map[string]struct{} {
	out := make(map[string]struct{})
	for _, v := range values {
		needle := strings.ToLower(strings.TrimSpace(v))
		if needle == "" {
			continue
		}
		for term, ids := range idx.postings[d] {
			if term != needle && !(partial && strings.Contains(term, needle)) {
				continue
			}
			for id := range ids {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// counts returns every term in d with its profile count, using display spellings
func (idx *index) counts(d dimension) []types.FacetCount {
	out := make([]types.FacetCount, 0, len(idx.postings[d]))
	for _, ids := range idx.postings[d] {
		out = append(out, types.FacetCount{Value: display(ids), Count: len(ids)})
	}
	return out
}

// profileTerms projects a profile onto the index dimensions. Skill names are
// canonicalized so aliases share a posting list.
func profileTerms(p *types.CandidateProfile) [dimensionCount][]string {
	var terms [dimensionCount][]string

	for _, s := range p.Skills {
		terms[dimSkills] = append(terms[dimSkills], skills.NormalizeSkillName(s.Name))
	}

	terms[dimCompanies] = append(terms[dimCompanies], p.PersonalInfo.CurrentCompany)
	for _, exp := range p.Experiences {
		terms[dimCompanies] = append(terms[dimCompanies], exp.Company)
		terms[dimTechnologies] = append(terms[dimTechnologies], exp.Technologies...)
	}
	for _, proj := range p.Projects {
		terms[dimTechnologies] = append(terms[dimTechnologies], proj.Technologies...)
	}

	terms[dimLocations] = append(terms[dimLocations], p.PersonalInfo.Location)

	for _, edu := range p.Education {
		terms[dimEducation] = append(terms[dimEducation], edu.Institution, edu.Degree, edu.Field)
	}

	return terms
}

// skillQueryKeys canonicalizes query skill names the same way profiles are indexed
func skillQueryKeys(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, skills.NormalizeSkillName(n))
	}
	return out
}
