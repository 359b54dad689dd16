// Package cost evaluates the clustering objective for one iteration.
//
// A cost vector holds one non-negative value per centroid; Total reduces it to
// the scalar cost function, which is exactly 0 for empty input.
package cost
