package membership

import (
	"github.com/hupe1980/cmeans/model"
)

// Hard assigns each point (column) to its nearest centroid (row). The returned
// matrix has the shape of dm with exactly one 1 per column and 0 elsewhere.
//
// The scan starts at row 0 and only moves on a strictly smaller distance, so the
// first centroid wins ties.
func Hard(dm model.Matrix) model.Matrix {
	mm := model.NewMatrix(dm.Rows(), dm.Cols())
	if mm.IsEmpty() {
		return mm
	}

	for j := 0; j < dm.Cols(); j++ {
		mm[nearest(dm, j)][j] = 1
	}
	return mm
}

func nearest(dm model.Matrix, j int) int {
	best := 0
	minDist := dm[0][j]

	for i := 1; i < len(dm); i++ {
		if dm[i][j] < minDist {
			minDist = dm[i][j]
			best = i
		}
	}
	return best
}

// Labels returns, for each column, the row holding the largest membership.
// Ties go to the lowest row. For a hard matrix this is the assigned centroid.
func Labels(mm model.Matrix) []int {
	if mm.IsEmpty() {
		return nil
	}

	labels := make([]int, mm.Cols())
	for j := range labels {
		best := 0
		for i := 1; i < len(mm); i++ {
			if mm[i][j] > mm[best][j] {
				best = i
			}
		}
		labels[j] = best
	}
	return labels
}
