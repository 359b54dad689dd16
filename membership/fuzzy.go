package membership

import (
	"math"

	"github.com/hupe1980/cmeans/model"
)

// Fuzzy computes graded memberships with fuzzifier m:
//
//	u(i,j) = 1 / Σ_k (d(i,j) / d(k,j))^(2/(m-1))
//
// Terms whose denominator d(k,j) is zero are left out of the sum. When the sum
// is zero, which happens when point j sits exactly on centroid i, u(i,j) is 1.
// When j sits on some other centroid k, the left-out term is the infinite one,
// so u(i,j) is 0.
//
// Columns are not re-normalized afterwards. Without coincident points every
// column sums to 1; a point shared by several coincident centroids gets a
// membership of 1 in each of them.
//
// m must be greater than 1; callers validate it.
func Fuzzy(dm model.Matrix, m float64) model.Matrix {
	mm := model.NewMatrix(dm.Rows(), dm.Cols())
	if mm.IsEmpty() {
		return mm
	}

	exp := 2 / (m - 1)

	for i := range mm {
		for j := 0; j < dm.Cols(); j++ {
			mm[i][j] = fuzzyCell(dm, i, j, exp)
		}
	}
	return mm
}

func fuzzyCell(dm model.Matrix, i, j int, exp float64) float64 {
	dij := dm[i][j]

	var (
		sum        float64
		coincident bool
	)
	for k := range dm {
		dkj := dm[k][j]
		if dkj == 0 {
			coincident = true
			continue
		}
		sum += math.Pow(dij/dkj, exp)
	}

	if sum == 0 {
		return 1
	}
	if coincident && dij != 0 {
		return 0
	}
	return 1 / sum
}
