package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestScoreBatch_PreservesOrder(t *testing.T) {
	a, b, req := reactProfiles()
	engine := NewEngine(Options{}, nil, nil)

	profiles := []*types.CandidateProfile{b, a, b, a}
	results, err := engine.ScoreBatch(context.Background(), profiles, req, nil, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, profiles[i].ID, r.ProfileID)
		single, err := engine.Score(profiles[i], req, nil)
		require.NoError(t, err)
		assert.Equal(t, single, r)
	}
}

func TestScoreBatch_Error(t *testing.T) {
	a, _, req := reactProfiles()
	engine := NewEngine(Options{}, nil, nil)

	_, err := engine.ScoreBatch(context.Background(), []*types.CandidateProfile{a, nil}, req, nil, 0)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestScoreBatch_Cancelled(t *testing.T) {
	a, b, req := reactProfiles()
	engine := NewEngine(Options{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ScoreBatch(ctx, []*types.CandidateProfile{a, b}, req, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreBatch_Empty(t *testing.T) {
	results, err := NewEngine(Options{}, nil, nil).ScoreBatch(context.Background(), nil, &types.JobRequirement{}, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
