package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/cmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected float64
	}{
		{"Identical", model.Pt(1, 2), model.Pt(1, 2), 0},
		{"Pythagorean", model.Pt(0, 0), model.Pt(3, 4), 5},
		{"Negative", model.Pt(-1, -1), model.Pt(2, 3), 5},
		{"Horizontal", model.Pt(0, 0), model.Pt(10, 0), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Euclidean(tt.a, tt.b))
			assert.Equal(t, tt.expected, Euclidean(tt.b, tt.a))
			assert.Equal(t, tt.expected*tt.expected, SquaredEuclidean(tt.a, tt.b))
		})
	}
}

func TestEuclidean_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Euclidean(model.Pt(math.NaN(), 0), model.Pt(0, 0))))
	assert.True(t, math.IsInf(Euclidean(model.Pt(math.Inf(1), 0), model.Pt(0, 0)), 1))
}

func TestMatrix(t *testing.T) {
	points := model.Points{model.Pt(0, 0), model.Pt(10, 0)}
	centroids := model.Points{model.Pt(0, 0), model.Pt(10, 0)}

	dm := Matrix(points, centroids)
	assert.Equal(t, model.Matrix{{0, 10}, {10, 0}}, dm)
}

func TestMatrix_Shape(t *testing.T) {
	points := model.Points{model.Pt(1, 1), model.Pt(2, 5), model.Pt(-3, 0), model.Pt(1, 1)}
	centroids := model.Points{model.Pt(1, 1), model.Pt(0, 0), model.Pt(7, -2)}

	dm := Matrix(points, centroids)
	require.Equal(t, len(centroids), dm.Rows())
	require.Equal(t, len(points), dm.Cols())

	for i, c := range centroids {
		for j, p := range points {
			assert.GreaterOrEqual(t, dm[i][j], 0.0)
			assert.Equal(t, c == p, dm[i][j] == 0, "cell (%d,%d)", i, j)
		}
	}
}

func TestMatrix_Empty(t *testing.T) {
	some := model.Points{model.Pt(1, 1)}

	assert.Empty(t, Matrix(nil, some))
	assert.Empty(t, Matrix(some, nil))
	assert.Empty(t, Matrix(model.Points{}, model.Points{}))
}

func TestMatrixFunc(t *testing.T) {
	dm := MatrixFunc(model.Points{model.Pt(3, 4)}, model.Points{model.Pt(0, 0)}, SquaredEuclidean)
	assert.Equal(t, model.Matrix{{25}}, dm)
}
