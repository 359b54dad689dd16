package cmeans

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/cmeans/centroid"
	"github.com/hupe1980/cmeans/cost"
	"github.com/hupe1980/cmeans/distance"
	"github.com/hupe1980/cmeans/membership"
	"github.com/hupe1980/cmeans/model"
)

// DefaultFuzzifier is the fuzzifier m used when none is configured.
const DefaultFuzzifier = 2.0

// Algorithm selects the membership rule of an iteration.
type Algorithm int

const (
	// AlgorithmHard assigns every point to its nearest centroid (crisp c-means).
	AlgorithmHard Algorithm = iota
	// AlgorithmFuzzy assigns every point a graded membership in every centroid.
	AlgorithmFuzzy
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmHard:
		return "hard"
	case AlgorithmFuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// ParseAlgorithm maps "hard" (or "crisp") and "fuzzy" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard", "crisp":
		return AlgorithmHard, nil
	case "fuzzy":
		return AlgorithmFuzzy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Result bundles everything one iteration produces.
type Result struct {
	Algorithm Algorithm
	// Fuzzifier is the m the iteration ran with; zero for hard iterations.
	Fuzzifier float64

	// Distances has one row per input centroid and one column per point.
	Distances model.Matrix
	// Memberships has the shape of Distances.
	Memberships model.Matrix
	// Centroids are the candidate next centroids. For hard iterations, centroids
	// without assigned points are missing, so the list can be shorter than the input.
	Centroids model.Points
	// Costs holds each input centroid's contribution to Cost.
	Costs cost.Vector
	// Cost is the sum of Costs, 0 for empty input.
	Cost float64
}

// Dropped returns how many of the n input centroids have no candidate.
func (r *Result) Dropped(n int) int {
	return max(n-len(r.Centroids), 0)
}

// Degenerate reports whether the candidates cannot be committed: the list is
// empty or some coordinate is NaN.
func (r *Result) Degenerate() bool {
	return len(r.Centroids) == 0 || r.Centroids.HasNaN()
}

// RunHardIteration performs one hard c-means iteration over points and centroids.
// Neither input is modified or retained.
func RunHardIteration(points, centroids model.Points) *Result {
	dm := distance.Matrix(points, centroids)
	mm := membership.Hard(dm)
	costs := cost.Hard(mm, dm)

	return &Result{
		Algorithm:   AlgorithmHard,
		Distances:   dm,
		Memberships: mm,
		Centroids:   centroid.Hard(points, mm),
		Costs:       costs,
		Cost:        cost.Total(costs),
	}
}

// RunFuzzyIteration performs one fuzzy c-means iteration with fuzzifier m
// (use DefaultFuzzifier when unsure). Neither input is modified or retained.
//
// A candidate centroid with zero total weight has NaN coordinates; see
// Result.Degenerate.
func RunFuzzyIteration(points, centroids model.Points, m float64) (*Result, error) {
	if err := validateFuzzifier(m); err != nil {
		return nil, err
	}
	return fuzzyIteration(points, centroids, m), nil
}

func fuzzyIteration(points, centroids model.Points, m float64) *Result {
	dm := distance.Matrix(points, centroids)
	mm := membership.Fuzzy(dm, m)
	costs := cost.Fuzzy(mm, dm, m)

	return &Result{
		Algorithm:   AlgorithmFuzzy,
		Fuzzifier:   m,
		Distances:   dm,
		Memberships: mm,
		Centroids:   centroid.Fuzzy(points, mm, m),
		Costs:       costs,
		Cost:        cost.Total(costs),
	}
}

// Engine runs clustering iterations with a fixed configuration. It keeps no
// clustering state between calls and is safe for concurrent use.
type Engine struct {
	fuzzifier float64
	logger    *Logger
	metrics   MetricsCollector
}

// New creates an Engine.
func New(optFns ...Option) (*Engine, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := validateFuzzifier(opts.fuzzifier); err != nil {
		return nil, err
	}

	return &Engine{
		fuzzifier: opts.fuzzifier,
		logger:    opts.logger,
		metrics:   opts.metricsCollector,
	}, nil
}

// Fuzzifier returns the configured fuzzifier m.
func (e *Engine) Fuzzifier() float64 {
	return e.fuzzifier
}

// Logger returns the configured logger.
func (e *Engine) Logger() *Logger {
	return e.logger
}

// Step runs one iteration of alg over points and centroids.
func (e *Engine) Step(ctx context.Context, alg Algorithm, points, centroids model.Points) (*Result, error) {
	start := time.Now()

	var r *Result
	switch alg {
	case AlgorithmHard:
		r = RunHardIteration(points, centroids)
	case AlgorithmFuzzy:
		r = fuzzyIteration(points, centroids, e.fuzzifier)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	e.metrics.RecordIteration(alg, time.Since(start), r.Dropped(len(centroids)), r.Degenerate())
	e.logger.LogIteration(ctx, r, len(points), len(centroids))

	return r, nil
}
