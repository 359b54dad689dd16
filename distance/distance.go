package distance

import (
	"math"

	"github.com/hupe1980/cmeans/model"
)

// Func is a function type for distance calculation.
type Func func(a, b model.Point) float64

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SquaredEuclidean returns the squared straight-line distance between a and b.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Matrix returns the Euclidean distance from every centroid (rows) to every
// point (columns). The result is empty if either input is empty.
func Matrix(points, centroids model.Points) model.Matrix {
	return MatrixFunc(points, centroids, Euclidean)
}

// MatrixFunc is like Matrix but uses fn as the distance.
func MatrixFunc(points, centroids model.Points, fn Func) model.Matrix {
	dm := model.NewMatrix(len(centroids), len(points))
	if dm.IsEmpty() {
		return dm
	}

	for i, c := range centroids {
		row := dm[i]
		for j, p := range points {
			row[j] = fn(c, p)
		}
	}
	return dm
}
