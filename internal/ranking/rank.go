package ranking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// standoutMargin is the lead over the runner-up that makes the leader stand out
	standoutMargin = 0.15
	// technicalStrengthAbove triggers the technical-strength recommendation
	technicalStrengthAbove = 0.8
	// tenureSpreadAbove is the years between most and least experienced that counts as a differentiator
	tenureSpreadAbove = 3.0
)

// ErrTooFewCandidates is returned when fewer than two candidates are compared
var ErrTooFewCandidates = errors.New("at least two candidates are required for a comparison")

// Candidate is one profile under comparison with its stored scoring result, if any
type Candidate struct {
	Profile *types.CandidateProfile
	Result  *types.ScoringResult
}

// Compare ranks the candidates by overall score and derives recommendations,
// differentiators and similarities. Unscored candidates rank after scored ones.
// Candidates with equal scores keep their input order.
func Compare(candidates []Candidate) (*types.ProfileComparisonResult, error) {
	if len(candidates) < 2 {
		return nil, ErrTooFewCandidates
	}

	result := &types.ProfileComparisonResult{
		Profiles:   make([]types.ProfileSummary, 0, len(candidates)),
		Comparison: buildMatrix(candidates),
		Rankings:   rank(candidates),
	}
	for _, c := range candidates {
		result.Profiles = append(result.Profiles, Summarize(c.Profile, c.Result))
	}

	byID := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.Profile.ID] = c
	}

	result.Recommendations = recommend(result.Rankings, byID)
	result.Summary = types.ComparisonSummary{
		TopCandidate:       result.Rankings[0].ProfileID,
		KeyDifferentiators: differentiators(result.Comparison, result.Rankings),
		Similarities:       similarities(candidates),
	}

	return result, nil
}

func rank(candidates []Candidate) []types.CandidateRanking {
	rankings := make([]types.CandidateRanking, 0, len(candidates))
	for _, c := range candidates {
		r := types.CandidateRanking{
			ProfileID: c.Profile.ID,
			Name:      c.Profile.PersonalInfo.Name,
			Scored:    c.Result != nil,
		}
		if c.Result != nil {
			r.OverallScore = c.Result.OverallScore
		}
		rankings = append(rankings, r)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].Scored != rankings[j].Scored {
			return rankings[i].Scored
		}
		return rankings[i].OverallScore > rankings[j].OverallScore
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

func recommend(rankings []types.CandidateRanking, byID map[string]Candidate) []types.ComparisonRecommendation {
	ids := make([]string, 0, len(rankings))
	parts := make([]string, 0, len(rankings))
	for _, r := range rankings {
		ids = append(ids, r.ProfileID)
		if r.Scored {
			parts = append(parts, fmt.Sprintf("%d. %s (%.2f)", r.Rank, displayName(r), r.OverallScore))
		} else {
			parts = append(parts, fmt.Sprintf("%d. %s (not scored)", r.Rank, displayName(r)))
		}
	}

	recs := []types.ComparisonRecommendation{{
		Type:       types.ComparisonRanking,
		Message:    "Ranking: " + strings.Join(parts, ", "),
		ProfileIDs: ids,
	}}

	leader, runnerUp := rankings[0], rankings[1]
	if leader.Scored && runnerUp.Scored && leader.OverallScore-runnerUp.OverallScore > standoutMargin {
		recs = append(recs, types.ComparisonRecommendation{
			Type: types.ComparisonStandout,
			Message: fmt.Sprintf("%s stands out, leading %s by %.2f",
				displayName(leader), displayName(runnerUp), leader.OverallScore-runnerUp.OverallScore),
			ProfileIDs: []string{leader.ProfileID},
		})
	}

	var best *types.CandidateRanking
	bestTechnical := 0.0
	for i, r := range rankings {
		c := byID[r.ProfileID]
		if c.Result == nil {
			continue
		}
		if best == nil || c.Result.CategoryScores.Technical > bestTechnical {
			best, bestTechnical = &rankings[i], c.Result.CategoryScores.Technical
		}
	}
	if best != nil && bestTechnical > technicalStrengthAbove {
		recs = append(recs, types.ComparisonRecommendation{
			Type:       types.ComparisonTechnical,
			Message:    fmt.Sprintf("%s has the strongest technical profile (%.2f)", displayName(*best), bestTechnical),
			ProfileIDs: []string{best.ProfileID},
		})
	}

	return recs
}

// differentiators lists skills whose proficiency differs between the candidates
// that have them, then any large tenure spread. Entries follow ranking order.
func differentiators(m types.ComparisonMatrix, rankings []types.CandidateRanking) []string {
	out := []string{}

	names := make([]string, 0, len(m.Skills))
	for name := range m.Skills {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		row := m.Skills[name]
		levels := make(map[types.ProficiencyLevel]bool)
		var parts []string
		for _, r := range rankings {
			cell, ok := row[r.ProfileID]
			if !ok {
				continue
			}
			levels[cell.Proficiency] = true
			parts = append(parts, fmt.Sprintf("%s %s", displayName(r), cell.Proficiency))
		}
		if len(levels) > 1 {
			out = append(out, fmt.Sprintf("%s proficiency varies: %s", name, strings.Join(parts, ", ")))
		}
	}

	lowest, highest := 0.0, 0.0
	for i, r := range rankings {
		years := m.Experience[r.ProfileID]
		if i == 0 || years < lowest {
			lowest = years
		}
		if i == 0 || years > highest {
			highest = years
		}
	}
	if highest-lowest > tenureSpreadAbove {
		out = append(out, fmt.Sprintf("Experience ranges from %.1f to %.1f years", lowest, highest))
	}

	return out
}

// similarities lists companies found in every candidate's experience history
func similarities(candidates []Candidate) []string {
	out := []string{}

	counts := make(map[string]int)
	display := make(map[string]string)
	var order []string
	for _, c := range candidates {
		seen := make(map[string]bool)
		for _, exp := range c.Profile.Experiences {
			key := strings.ToLower(strings.TrimSpace(exp.Company))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if _, ok := display[key]; !ok {
				display[key] = strings.TrimSpace(exp.Company)
				order = append(order, key)
			}
			counts[key]++
		}
	}

	for _, key := range order {
		if counts[key] == len(candidates) {
			out = append(out, fmt.Sprintf("All candidates worked at %s", display[key]))
		}
	}
	return out
}

func displayName(r types.CandidateRanking) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ProfileID
}
