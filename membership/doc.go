// Package membership turns a distance matrix into a membership matrix.
//
// Two assignment rules are provided:
//
//   - Hard: every point belongs to exactly one centroid, the nearest one.
//     Ties go to the lowest centroid index.
//   - Fuzzy: every point belongs to every centroid with a graded weight in
//     [0, 1], controlled by the fuzzifier m > 1.
//
// Hard memberships can be converted to per-centroid member sets with Clusters,
// which the centroid and cost packages use to visit only assigned points.
package membership
