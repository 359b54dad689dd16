package cost

import (
	"math"

	"github.com/hupe1980/cmeans/membership"
	"github.com/hupe1980/cmeans/model"
	"gonum.org/v1/gonum/floats"
)

// Vector is the per-centroid cost, indexed like the centroid set.
type Vector []float64

// Hard returns, per centroid, the sum of distances to its assigned points.
// Empty input yields an empty vector.
//
// Panics with *model.ShapeError if mm and dm differ in shape.
func Hard(mm, dm model.Matrix) Vector {
	if mm.IsEmpty() || dm.IsEmpty() {
		return Vector{}
	}
	mm.MustHaveShape("cost.Hard", dm.Rows(), dm.Cols())

	costs := make(Vector, mm.Rows())
	for i, members := range membership.Clusters(mm) {
		for j := range members.All() {
			costs[i] += dm[i][j]
		}
	}
	return costs
}

// Fuzzy returns, per centroid, Σ_j u(i,j)^m · d(i,j)².
// Empty input yields an empty vector.
//
// Panics with *model.ShapeError if mm and dm differ in shape.
func Fuzzy(mm, dm model.Matrix, m float64) Vector {
	if mm.IsEmpty() || dm.IsEmpty() {
		return Vector{}
	}
	mm.MustHaveShape("cost.Fuzzy", dm.Rows(), dm.Cols())

	costs := make(Vector, mm.Rows())
	for i, row := range mm {
		for j, u := range row {
			d := dm[i][j]
			costs[i] += math.Pow(u, m) * d * d
		}
	}
	return costs
}

// Total returns the sum of v, or 0 for an empty vector.
func Total(v Vector) float64 {
	return floats.Sum(v)
}
