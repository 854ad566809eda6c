package scoring

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/types"
)

// ScoreBatch scores every profile against the same requirement using up to
// workers goroutines (GOMAXPROCS when workers <= 0). Results keep the order of
// profiles. The first error cancels the remaining work.
func (e *Engine) ScoreBatch(ctx context.Context, profiles []*types.CandidateProfile, req *types.JobRequirement, weights *types.CategoryWeights, workers int) ([]*types.ScoringResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*types.ScoringResult, len(profiles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, profile := range profiles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := e.Score(profile, req, weights)
			if err != nil {
				return fmt.Errorf("scoring profile %d: %w", i, err)
			}
			// each goroutine owns its own index
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("scored batch", zap.Int("profiles", len(profiles)), zap.Int("workers", workers))
	return results, nil
}
