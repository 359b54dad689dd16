// Package testutil provides testing utilities for cmeans.
//
// This package is intended for use in tests only. It provides seeded,
// concurrency-safe point generators and matrix checks.
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Points(100, model.DefaultBounds)
//	blobs := rng.Blobs(model.Points{model.Pt(-50, 0), model.Pt(50, 0)}, 20, 2)
package testutil
