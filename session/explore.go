package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/model"
	"golang.org/x/sync/errgroup"
)

// Trial is the outcome of one seed in BestOf.
type Trial struct {
	// Seed is the index into the seeds passed to BestOf.
	Seed    int
	Outcome *Outcome
	Err     error
}

// Cost returns the final cost of the trial. ok is false when the trial
// produced nothing usable.
func (t Trial) Cost() (cost float64, ok bool) {
	if t.Err != nil || t.Outcome == nil || t.Outcome.Result == nil || t.Outcome.Result.Degenerate() {
		return 0, false
	}
	return t.Outcome.Result.Cost, true
}

// BestOf runs one independent session per seed centroid set over the same
// points and returns the trial with the lowest final cost. Ties go to the lower
// seed index. At most parallelism sessions run at once; parallelism <= 0 means
// no limit.
//
// A seed whose session is rejected (for example with ErrDegenerate) is
// recorded in its Trial and skipped. BestOf fails with ErrNoCandidates if no
// seed succeeds, and with the context error if ctx is cancelled.
func BestOf(ctx context.Context, engine *cmeans.Engine, alg cmeans.Algorithm, points model.Points, seeds []model.Points, maxIter, parallelism int) (Trial, []Trial, error) {
	if err := checkAlgorithm(alg); err != nil {
		return Trial{}, nil, err
	}

	trials := make([]Trial, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			s := &Session{
				engine: engine,
				opts: options{
					algorithm: alg,
					bounds:    model.DefaultBounds,
					logger:    cmeans.NoopLogger(),
				},
				points:    points.Clone(),
				centroids: seed.Clone(),
			}

			out, err := s.Run(gctx, maxIter)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			trials[i] = Trial{Seed: i, Outcome: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Trial{}, trials, err
	}

	best := -1
	var bestCost float64
	for i, t := range trials {
		c, ok := t.Cost()
		if !ok {
			continue
		}
		if best < 0 || c < bestCost {
			best, bestCost = i, c
		}
	}

	if best < 0 {
		return Trial{}, trials, fmt.Errorf("%w: all %d seeds failed", ErrNoCandidates, len(seeds))
	}
	return trials[best], trials, nil
}
