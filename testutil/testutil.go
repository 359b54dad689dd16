package testutil

import (
	"sync"

	"github.com/hupe1980/cmeans/model"
	"github.com/hupe1980/cmeans/util"
)

// RNG is a thread-safe wrapper around util.RNG.
type RNG struct {
	rng *util.RNG
	mu  sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rng: util.NewRNG(seed)}
}

// Points generates n integer-valued points inside b.
func (r *RNG) Points(n int, b model.Bounds) model.Points {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Points(n, b)
}

// Sample returns k distinct positions of points.
func (r *RNG) Sample(points model.Points, k int) model.Points {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Sample(points, k)
}

// Blobs generates perCenter points around each center with Gaussian noise of
// the given spread. Points are emitted center by center.
func (r *RNG) Blobs(centers model.Points, perCenter int, spread float64) model.Points {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make(model.Points, 0, len(centers)*perCenter)
	for _, c := range centers {
		for range perCenter {
			points = append(points, model.Pt(
				c.X+r.rng.NormFloat64()*spread,
				c.Y+r.rng.NormFloat64()*spread,
			))
		}
	}
	return points
}

// ColumnSums returns the sum of every column of m.
func ColumnSums(m model.Matrix) []float64 {
	sums := make([]float64, m.Cols())
	for j := range sums {
		sums[j] = m.ColumnSum(j)
	}
	return sums
}
