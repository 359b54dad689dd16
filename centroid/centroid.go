package centroid

import (
	"math"

	"github.com/hupe1980/cmeans/membership"
	"github.com/hupe1980/cmeans/model"
)

// Hard returns the arithmetic mean of the points assigned to each row of a hard
// membership matrix. Rows with no assigned point are dropped, so the result may
// be shorter than the number of rows.
//
// Panics with *model.ShapeError if mm's column count differs from len(points).
func Hard(points model.Points, mm model.Matrix) model.Points {
	mm.MustHaveCols("centroid.Hard", len(points))

	candidates := make(model.Points, 0, mm.Rows())
	for _, members := range membership.Clusters(mm) {
		if members.IsEmpty() {
			continue
		}

		var sumX, sumY float64
		for j := range members.All() {
			sumX += points[j].X
			sumY += points[j].Y
		}
		n := float64(members.Cardinality())
		candidates = append(candidates, model.Pt(sumX/n, sumY/n))
	}
	return candidates
}

// Fuzzy returns, for every row, the mean of all points weighted by
// membership^m. No row is dropped. A row whose total weight is zero yields a
// NaN coordinate, which is returned as is.
//
// Panics with *model.ShapeError if mm's column count differs from len(points).
func Fuzzy(points model.Points, mm model.Matrix, m float64) model.Points {
	if mm.IsEmpty() || len(points) == 0 {
		return model.Points{}
	}
	mm.MustHaveCols("centroid.Fuzzy", len(points))

	candidates := make(model.Points, len(mm))
	for i, row := range mm {
		var weight, sumX, sumY float64
		for j, u := range row {
			w := math.Pow(u, m)
			weight += w
			sumX += w * points[j].X
			sumY += w * points[j].Y
		}
		candidates[i] = model.Pt(sumX/weight, sumY/weight)
	}
	return candidates
}
