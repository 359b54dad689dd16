package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints_CloneIsIndependent(t *testing.T) {
	orig := Points{Pt(1, 2), Pt(3, 4)}
	clone := orig.Clone()
	clone[0] = Pt(9, 9)

	assert.Equal(t, Pt(1, 2), orig[0])
	assert.Nil(t, Points(nil).Clone())
}

func TestPoints_Equal(t *testing.T) {
	assert.True(t, Points{Pt(0, 0), Pt(1, 1)}.Equal(Points{Pt(0, 0), Pt(1, 1)}))
	assert.False(t, Points{Pt(0, 0), Pt(1, 1)}.Equal(Points{Pt(1, 1), Pt(0, 0)}))
	assert.True(t, Points{}.Equal(nil))
}

func TestPoints_HasNaN(t *testing.T) {
	assert.False(t, Points{Pt(0, 0)}.HasNaN())
	assert.True(t, Points{Pt(0, 0), Pt(math.NaN(), 1)}.HasNaN())
}

func TestBounds(t *testing.T) {
	b := DefaultBounds
	require.True(t, b.Valid())

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Pt(0, 0), true},
		{"corner", Pt(-100, 100), true},
		{"outside x", Pt(100.5, 0), false},
		{"outside y", Pt(0, -101), false},
		{"nan", Pt(math.NaN(), 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p))
		})
	}

	assert.False(t, Bounds{MinX: 1, MaxX: 0}.Valid())
	assert.False(t, Bounds{MinX: math.Inf(-1), MaxX: 0}.Valid())
}
