// Package session is a stateful caller of the cmeans engine.
//
// A Session owns the current points and centroids, hands them to the engine on
// every iteration and decides whether to commit the candidate centroids it gets
// back. The commit policy rejects empty candidate lists (ErrNoCandidates), NaN
// coordinates (ErrDegenerate) and iterations whose cost is already within
// epsilon (ErrConverged).
//
//	eng, _ := cmeans.New()
//	s, _ := session.New(eng, session.WithAlgorithm(cmeans.AlgorithmHard))
//	s.GeneratePoints(50)
//	_ = s.AddCentroid(model.Pt(0, 0))
//	_ = s.AddCentroid(model.Pt(50, 50))
//	out, err := s.Run(ctx, 20)
//
// BestOf runs several independent sessions, one per seed centroid set, and
// keeps the one with the lowest final cost.
package session
