package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/model"
	"github.com/hupe1980/cmeans/util"
)

// Session holds the caller-side clustering state.
// It is not safe for concurrent use.
type Session struct {
	engine *cmeans.Engine
	opts   options
	rng    *util.RNG

	points    model.Points
	centroids model.Points
	iteration int
}

// Outcome summarizes a Run.
type Outcome struct {
	// Iterations is the number of committed iterations since the last Reset.
	Iterations int
	// Converged is true when Run stopped on epsilon or on a fixed point.
	Converged bool
	// Result is the last iteration evaluated, committed or not.
	Result *cmeans.Result
	// Centroids are the session centroids when Run returned.
	Centroids model.Points
}

// New creates an empty Session that iterates with engine.
func New(engine *cmeans.Engine, optFns ...Option) (*Session, error) {
	opts := options{
		algorithm: cmeans.AlgorithmFuzzy,
		bounds:    model.DefaultBounds,
		logger:    engine.Logger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if !opts.bounds.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, opts.bounds)
	}
	if math.IsNaN(opts.epsilon) || opts.epsilon < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidEpsilon, opts.epsilon)
	}
	if err := checkAlgorithm(opts.algorithm); err != nil {
		return nil, err
	}
	if opts.logger == nil {
		opts.logger = cmeans.NoopLogger()
	}

	return &Session{
		engine: engine,
		opts:   opts,
		rng:    util.NewRNG(opts.seed),
	}, nil
}

func checkAlgorithm(alg cmeans.Algorithm) error {
	if alg != cmeans.AlgorithmHard && alg != cmeans.AlgorithmFuzzy {
		return fmt.Errorf("%w: %v", cmeans.ErrUnknownAlgorithm, alg)
	}
	return nil
}

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() cmeans.Algorithm {
	return s.opts.algorithm
}

// SetAlgorithm switches between hard and fuzzy iterations. Points and
// centroids are kept.
func (s *Session) SetAlgorithm(alg cmeans.Algorithm) error {
	if err := checkAlgorithm(alg); err != nil {
		return err
	}
	s.opts.algorithm = alg
	return nil
}

// Bounds returns the session bounds.
func (s *Session) Bounds() model.Bounds {
	return s.opts.bounds
}

// Points returns a copy of the current points.
func (s *Session) Points() model.Points {
	return s.points.Clone()
}

// Centroids returns a copy of the current centroids.
func (s *Session) Centroids() model.Points {
	return s.centroids.Clone()
}

// Iteration returns the number of committed iterations since the last Reset.
func (s *Session) Iteration() int {
	return s.iteration
}

// AddPoint appends p to the points.
func (s *Session) AddPoint(p model.Point) error {
	if !s.opts.bounds.Contains(p) {
		return &OutOfBoundsError{Point: p, Bounds: s.opts.bounds}
	}
	s.points = append(s.points, p)
	return nil
}

// AddCentroid appends c to the centroids.
func (s *Session) AddCentroid(c model.Point) error {
	if !s.opts.bounds.Contains(c) {
		return &OutOfBoundsError{Point: c, Bounds: s.opts.bounds}
	}
	s.centroids = append(s.centroids, c)
	return nil
}

// SetCentroids replaces the centroid set wholesale. Coordinates are not bound-checked.
func (s *Session) SetCentroids(centroids model.Points) {
	s.centroids = centroids.Clone()
}

// GeneratePoints appends n random integer-valued points inside the session
// bounds and returns them.
func (s *Session) GeneratePoints(n int) model.Points {
	generated := s.rng.Points(n, s.opts.bounds)
	s.points = append(s.points, generated...)
	return generated.Clone()
}

// SeedCentroids replaces the centroids with k distinct current points.
func (s *Session) SeedCentroids(k int) model.Points {
	s.centroids = s.rng.Sample(s.points, k)
	return s.centroids.Clone()
}

// Reset clears points, centroids and the iteration counter.
func (s *Session) Reset() {
	s.points = nil
	s.centroids = nil
	s.iteration = 0
}

// Evaluate runs one iteration over the current state without committing it.
func (s *Session) Evaluate(ctx context.Context) (*cmeans.Result, error) {
	return s.engine.Step(ctx, s.opts.algorithm, s.points, s.centroids)
}

// Iterate runs one iteration and commits the candidate centroids when the
// commit policy accepts them. The result is returned in both cases; a rejected
// iteration also returns ErrNoCandidates, ErrDegenerate or ErrConverged.
func (s *Session) Iterate(ctx context.Context) (*cmeans.Result, error) {
	r, err := s.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.accept(r); err != nil {
		s.opts.logger.LogReject(ctx, s.iteration+1, err)
		return r, err
	}

	s.centroids = r.Centroids.Clone()
	s.iteration++
	s.opts.logger.LogCommit(ctx, s.iteration, r.Cost)

	return r, nil
}

func (s *Session) accept(r *cmeans.Result) error {
	switch {
	case len(r.Centroids) == 0:
		return ErrNoCandidates
	case r.Centroids.HasNaN():
		return ErrDegenerate
	case r.Cost <= s.opts.epsilon:
		return ErrConverged
	}
	return nil
}

// Run iterates until the cost is within epsilon, the centroids stop moving,
// maxIter iterations were committed, or an iteration is rejected for another
// reason. Convergence is not an error.
func (s *Session) Run(ctx context.Context, maxIter int) (*Outcome, error) {
	out := &Outcome{}
	defer func() {
		out.Iterations = s.iteration
		out.Centroids = s.Centroids()
	}()

	for range maxIter {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		prev := s.centroids
		r, err := s.Iterate(ctx)
		out.Result = r
		if errors.Is(err, ErrConverged) {
			out.Converged = true
			return out, nil
		}
		if err != nil {
			return out, err
		}

		if r.Centroids.Equal(prev) {
			out.Converged = true
			return out, nil
		}
	}

	return out, nil
}
