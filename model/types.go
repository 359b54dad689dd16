package model

import (
	"fmt"
	"math"
	"slices"
)

// Point is a 2-D coordinate pair.
type Point struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsNaN reports whether either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Points is an ordered sequence of Point. Position is significant: it is the
// row or column index in every Matrix derived from it.
type Points []Point

// Clone returns a copy that shares no memory with p.
func (p Points) Clone() Points {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Equal reports whether both sequences hold the same coordinates in the same order.
func (p Points) Equal(other Points) bool {
	return slices.Equal(p, other)
}

// HasNaN reports whether any point carries a NaN coordinate.
func (p Points) HasNaN() bool {
	return slices.ContainsFunc(p, Point.IsNaN)
}

// Bounds is an inclusive axis-aligned box.
type Bounds struct {
	MinX float64 `toml:"min_x"`
	MaxX float64 `toml:"max_x"`
	MinY float64 `toml:"min_y"`
	MaxY float64 `toml:"max_y"`
}

// DefaultBounds is the [-100, 100] square.
var DefaultBounds = Bounds{MinX: -100, MaxX: 100, MinY: -100, MaxY: 100}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Valid reports whether b is a non-inverted box with finite edges.
func (b Bounds) Valid() bool {
	for _, v := range []float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// String returns a string representation of the Bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}
