// Package centroid recomputes candidate centroid positions from a membership
// matrix and the points it was computed over.
//
// The returned slice is always freshly allocated; the caller's centroid set is
// never touched. Whether to adopt the candidates is the caller's decision.
package centroid
