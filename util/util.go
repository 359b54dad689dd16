// Package util provides seeded random generators for point sets.
package util

import (
	"math"
	"math/rand"

	"github.com/hupe1980/cmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is not safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Points generates n integer-valued points drawn uniformly from the integer
// grid inside b. If b holds no integer on some axis, that axis is sampled
// uniformly over the real interval instead.
func (r *RNG) Points(n int, b model.Bounds) model.Points {
	points := make(model.Points, n)
	for i := range points {
		points[i] = model.Pt(r.intIn(b.MinX, b.MaxX), r.intIn(b.MinY, b.MaxY))
	}
	return points
}

// UniformPoints generates n points drawn uniformly from the real box b.
func (r *RNG) UniformPoints(n int, b model.Bounds) model.Points {
	points := make(model.Points, n)
	for i := range points {
		points[i] = model.Pt(r.floatIn(b.MinX, b.MaxX), r.floatIn(b.MinY, b.MaxY))
	}
	return points
}

// Sample returns k distinct positions of points, in random order.
// If k exceeds len(points), every point is returned.
func (r *RNG) Sample(points model.Points, k int) model.Points {
	k = min(max(k, 0), len(points))

	perm := r.rand.Perm(len(points))
	sample := make(model.Points, k)
	for i := range k {
		sample[i] = points[perm[i]]
	}
	return sample
}

// NormFloat64 returns a standard normally distributed value.
func (r *RNG) NormFloat64() float64 {
	return r.rand.NormFloat64()
}

func (r *RNG) intIn(lo, hi float64) float64 {
	first, last := math.Ceil(lo), math.Floor(hi)
	if first > last {
		return r.floatIn(lo, hi)
	}
	return first + float64(r.rand.Int63n(int64(last-first)+1))
}

func (r *RNG) floatIn(lo, hi float64) float64 {
	return lo + r.rand.Float64()*(hi-lo)
}
