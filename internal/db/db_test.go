package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestProfileArgs(t *testing.T) {
	created := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	p := &types.CandidateProfile{
		ID:           "p-1",
		PersonalInfo: types.PersonalInfo{Name: "Ada", CurrentCompany: "Acme"},
		Skills:       []types.Skill{{Name: "Go", Proficiency: types.ProficiencyExpert, Confidence: 0.9}},
		Completeness: 0.6,
		CreatedAt:    created,
		LastUpdated:  created.Add(time.Hour),
	}

	args, err := profileArgs(p)
	require.NoError(t, err)
	require.Len(t, args, 7)
	assert.Equal(t, "p-1", args[0])
	assert.Equal(t, "Ada", args[1])
	assert.Equal(t, "Acme", args[2])
	assert.Equal(t, 0.6, args[3])
	assert.Equal(t, created, args[5])

	decoded, err := decodeProfile(args[4].([]byte))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestProfileArgs_RequiresID(t *testing.T) {
	_, err := profileArgs(&types.CandidateProfile{})
	assert.Error(t, err)

	_, err = profileArgs(nil)
	assert.Error(t, err)
}

func TestScoringResultArgs(t *testing.T) {
	r := &types.ScoringResult{ProfileID: "p-1", OverallScore: 0.7, Confidence: 0.8, Strengths: []string{"Strong technical skills"}}

	args, err := scoringResultArgs(r)
	require.NoError(t, err)
	require.Len(t, args, 4)
	assert.Equal(t, "p-1", args[0])
	assert.Equal(t, 0.7, args[1])
	assert.Equal(t, 0.8, args[2])

	var decoded types.ScoringResult
	require.NoError(t, json.Unmarshal(args[3].([]byte), &decoded))
	assert.Equal(t, *r, decoded)

	_, err = scoringResultArgs(&types.ScoringResult{})
	assert.Error(t, err)
}

func TestDecodeProfile_Invalid(t *testing.T) {
	_, err := decodeProfile([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal profile")
}
