// Package distance computes Euclidean distances between centroids and points.
//
// # Usage
//
//	d := distance.Euclidean(model.Pt(0, 0), model.Pt(3, 4)) // 5
//	dm := distance.Matrix(points, centroids)                 // len(centroids) x len(points)
//
// NaN and infinite coordinates are not special-cased; they propagate through
// the arithmetic per IEEE-754.
package distance
