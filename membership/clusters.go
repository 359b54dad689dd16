package membership

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/cmeans/model"
)

// Members is the set of point indices assigned to one centroid.
// It wraps a 32-bit Roaring Bitmap.
type Members struct {
	rb *roaring.Bitmap
}

// NewMembers creates an empty member set.
func NewMembers() *Members {
	return &Members{
		rb: roaring.New(),
	}
}

// Add adds point index j.
func (m *Members) Add(j int) {
	m.rb.Add(uint32(j))
}

// Contains checks if point index j is a member.
func (m *Members) Contains(j int) bool {
	return m.rb.Contains(uint32(j))
}

// IsEmpty returns true if no point is assigned.
func (m *Members) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Cardinality returns the number of assigned points.
func (m *Members) Cardinality() int {
	return int(m.rb.GetCardinality())
}

// All iterates over the member indices in ascending order.
func (m *Members) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the member indices in ascending order.
func (m *Members) ToSlice() []int {
	out := make([]int, 0, m.Cardinality())
	for j := range m.All() {
		out = append(out, j)
	}
	return out
}

// Clusters returns one member set per row of a hard membership matrix. Column j
// is a member of row i when mm[i][j] == 1.
func Clusters(mm model.Matrix) []*Members {
	clusters := make([]*Members, mm.Rows())
	for i, row := range mm {
		clusters[i] = NewMembers()
		for j, v := range row {
			if v == 1 {
				clusters[i].Add(j)
			}
		}
	}
	return clusters
}
