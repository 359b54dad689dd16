// Package model defines the value types shared by every clustering stage.
//
// # Data Types
//
//   - Point: an immutable (x, y) pair; equality is coordinate equality
//   - Points: an ordered, index-significant sequence of Point, used for both
//     the point set and the centroid set
//   - Matrix: a centroids × points grid of float64 (distances or memberships)
//   - Bounds: an axis-aligned box used by callers to validate and generate points
//
// # Index Convention
//
// Row i of every Matrix refers to the i-th centroid and column j to the j-th
// point, in the exact order of the Points values the matrix was computed from.
// An empty point or centroid set produces an empty Matrix, never an error.
package model
