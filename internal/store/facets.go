package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// experienceBuckets are half-open year ranges; the last is unbounded
var experienceBuckets = []struct {
	label    string
	from, to float64
}{
	{"0-1", 0, 1},
	{"1-3", 1, 3},
	{"3-5", 3, 5},
	{"5-10", 5, 10},
	{"10+", 10, -1},
}

const scoreBands = 10

// facets describes the whole store regardless of any query; the caller holds a read lock
func (s *Store) facets() types.SearchFacets {
	return types.SearchFacets{
		Skills:           topCounts(s.index.counts(dimSkills), s.cfg.FacetLimit),
		SkillCategories:  topCounts(s.categoryCounts(), s.cfg.FacetLimit),
		Companies:        topCounts(s.index.counts(dimCompanies), s.cfg.FacetLimit),
		Locations:        topCounts(s.index.counts(dimLocations), s.cfg.FacetLimit),
		ExperienceRanges: s.experienceCounts(),
		ScoreRanges:      s.scoreCounts(),
	}
}

// categoryCounts counts profiles having at least one skill in each category
func (s *Store) categoryCounts() []types.FacetCount {
	counts := make(map[string]int)
	for _, p := range s.profiles {
		seen := make(map[types.SkillCategory]bool)
		for _, sk := range p.Skills {
			if sk.Category == "" || seen[sk.Category] {
				continue
			}
			seen[sk.Category] = true
			counts[string(sk.Category)]++
		}
	}
	return toFacetCounts(counts)
}

func (s *Store) experienceCounts() []types.FacetCount {
	out := make([]types.FacetCount, len(experienceBuckets))
	for i, b := range experienceBuckets {
		out[i].Value = b.label
	}
	for _, p := range s.profiles {
		years := p.TotalYears()
		for i, b := range experienceBuckets {
			if years >= b.from && (b.to < 0 || years < b.to) {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// scoreCounts buckets stored overall scores into 10-point bands on a 0-100 scale
func (s *Store) scoreCounts() []types.FacetCount {
	out := make([]types.FacetCount, scoreBands)
	for i := range out {
		out[i].Value = fmt.Sprintf("%d-%d", i*10, (i+1)*10)
	}
	for _, r := range s.scores {
		band := int(r.OverallScore * scoreBands)
		band = max(0, min(band, scoreBands-1))
		out[band].Count++
	}
	return out
}

// suggestions offers skill and company names for refining a search. Without
// search text the most common skills are offered.
func (s *Store) suggestions(searchText string) []string {
	vocabulary := append(sortByCount(s.index.counts(dimSkills)), sortByCount(s.index.counts(dimCompanies))...)
	terms := strings.Fields(strings.ToLower(searchText))

	out := []string{}
	seen := make(map[string]bool)
	for _, fc := range vocabulary {
		if len(out) >= s.cfg.MaxSuggestions {
			break
		}
		key := strings.ToLower(fc.Value)
		if seen[key] || !matchesAnyTerm(key, terms) {
			continue
		}
		seen[key] = true
		out = append(out, fc.Value)
	}
	return out
}

func matchesAnyTerm(value string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, t := range terms {
		if strings.Contains(value, t) {
			return true
		}
	}
	return false
}

func toFacetCounts(counts map[string]int) []types.FacetCount {
	out := make([]types.FacetCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, types.FacetCount{Value: v, Count: c})
	}
	return out
}

// sortByCount orders by descending count, then value
func sortByCount(counts []types.FacetCount) []types.FacetCount {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	return counts
}

func topCounts(counts []types.FacetCount, limit int) []types.FacetCount {
	counts = sortByCount(counts)
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
