// Package cmeans computes one iteration of hard (crisp) or fuzzy c-means
// clustering over a 2-D point set.
//
// The engine is a pure function of its inputs: the caller owns the points and
// the centroids, passes them in on every call and decides whether to adopt the
// candidate centroids it gets back. Nothing is cached between calls, so
// independent iterations may run concurrently without coordination.
//
// # Quick Start
//
//	points := model.Points{model.Pt(0, 0), model.Pt(2, 0), model.Pt(10, 0), model.Pt(12, 0)}
//	centroids := model.Points{model.Pt(0, 0), model.Pt(10, 0)}
//
//	r := cmeans.RunHardIteration(points, centroids)
//	// r.Centroids == [(1, 0) (11, 0)], r.Cost == 4
//
//	f, err := cmeans.RunFuzzyIteration(points, centroids, cmeans.DefaultFuzzifier)
//
// # Pipeline
//
// Every iteration runs the same stages:
//
//  1. distance.Matrix: centroid × point Euclidean distances
//  2. membership.Hard or membership.Fuzzy: centroid × point memberships
//  3. centroid.Hard or centroid.Fuzzy: candidate next centroids
//  4. cost.Hard or cost.Fuzzy, then cost.Total: per-centroid cost and the cost function
//
// # Edge Cases
//
// Empty points or centroids give empty matrices and a zero cost. A hard
// centroid with no assigned point is left out of the candidates. A fuzzy
// centroid with zero total weight comes back with NaN coordinates; check
// Result.Degenerate before committing. Inputs whose indices disagree (for
// example a membership matrix with the wrong number of columns) cause a panic
// with a *model.ShapeError.
//
// # Engine
//
// Engine adds configuration, structured logging and metrics around the same
// computation:
//
//	eng, _ := cmeans.New(
//	    cmeans.WithFuzzifier(2),
//	    cmeans.WithLogLevel(slog.LevelDebug),
//	)
//	r, _ := eng.Step(ctx, cmeans.AlgorithmFuzzy, points, centroids)
//
// The session package builds a stateful caller on top of Engine.
package cmeans
