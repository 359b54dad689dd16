package cost

import (
	"testing"

	"github.com/hupe1980/cmeans/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHard(t *testing.T) {
	dm := model.Matrix{
		{0, 2, 10, 12},
		{10, 8, 0, 2},
	}
	mm := model.Matrix{
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}

	v := Hard(mm, dm)
	assert.Equal(t, Vector{2, 2}, v)
	assert.Equal(t, 4.0, Total(v))
}

func TestHard_ZeroWhenPointsOnCentroids(t *testing.T) {
	dm := model.Matrix{{0, 10}, {10, 0}}
	mm := model.Matrix{{1, 0}, {0, 1}}

	assert.Equal(t, 0.0, Total(Hard(mm, dm)))
}

func TestHard_UnassignedCentroidCostsNothing(t *testing.T) {
	dm := model.Matrix{{1, 1}, {5, 5}}
	mm := model.Matrix{{1, 1}, {0, 0}}

	assert.Equal(t, Vector{2, 0}, Hard(mm, dm))
}

func TestFuzzy(t *testing.T) {
	dm := model.Matrix{{1, 3}, {3, 1}}
	mm := model.Matrix{{0.9, 0.1}, {0.1, 0.9}}

	v := Fuzzy(mm, dm, 2)
	require.Len(t, v, 2)

	// 0.81*1 + 0.01*9
	assert.InDelta(t, 0.9, v[0], 1e-12)
	assert.InDelta(t, 0.9, v[1], 1e-12)
	assert.InDelta(t, 1.8, Total(v), 1e-12)
}

func TestEmpty(t *testing.T) {
	assert.Empty(t, Hard(model.Matrix{}, model.Matrix{}))
	assert.Empty(t, Fuzzy(nil, nil, 2))
	assert.Equal(t, 0.0, Total(nil))
	assert.Equal(t, 0.0, Total(Vector{}))
}

func TestShapeMismatchPanics(t *testing.T) {
	dm := model.Matrix{{1, 2}}
	mm := model.Matrix{{1}, {0}}

	assert.Panics(t, func() { Hard(mm, dm) })
	assert.Panics(t, func() { Fuzzy(mm, dm, 2) })
}
