package session

import (
	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/model"
)

type options struct {
	algorithm cmeans.Algorithm
	bounds    model.Bounds
	epsilon   float64
	seed      int64
	logger    *cmeans.Logger
}

// Option configures a Session.
type Option func(*options)

// WithAlgorithm selects hard or fuzzy iterations. The default is fuzzy.
func WithAlgorithm(alg cmeans.Algorithm) Option {
	return func(o *options) {
		o.algorithm = alg
	}
}

// WithBounds sets the box that AddPoint, AddCentroid and GeneratePoints use.
// The default is model.DefaultBounds.
func WithBounds(b model.Bounds) Option {
	return func(o *options) {
		o.bounds = b
	}
}

// WithEpsilon sets the cost at or below which Iterate stops committing.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}

// WithSeed seeds the random point generator.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger overrides the engine's logger for commit and reject events.
func WithLogger(logger *cmeans.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
