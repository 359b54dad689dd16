package model

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a row-major grid with one row per centroid and one column per point.
// All rows have the same length.
type Matrix [][]float64

// NewMatrix allocates a zero-filled rows × cols matrix. If either dimension is
// zero the result is an empty (zero-row) matrix.
func NewMatrix(rows, cols int) Matrix {
	if rows == 0 || cols == 0 {
		return Matrix{}
	}

	data := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Rows returns the number of rows (centroids).
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns (points). An empty matrix has zero columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsEmpty reports whether the matrix has no cells.
func (m Matrix) IsEmpty() bool {
	return m.Rows() == 0 || m.Cols() == 0
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

// ColumnSum returns the sum of column j.
func (m Matrix) ColumnSum(j int) float64 {
	return floats.Sum(m.Column(j))
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	for i, row := range m {
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both matrices have the same shape and identical cells.
// NaN cells never compare equal.
func (m Matrix) Equal(other Matrix) bool {
	return slices.EqualFunc(m, other, func(a, b []float64) bool {
		return slices.Equal(a, b)
	})
}

// MustHaveShape panics with a *ShapeError unless m is rows × cols.
// An empty matrix satisfies any shape with a zero dimension.
func (m Matrix) MustHaveShape(op string, rows, cols int) {
	if rows == 0 || cols == 0 {
		if m.IsEmpty() {
			return
		}
	} else if m.Rows() == rows && m.Cols() == cols {
		return
	}

	panic(&ShapeError{
		Op:       op,
		WantRows: rows,
		WantCols: cols,
		GotRows:  m.Rows(),
		GotCols:  m.Cols(),
	})
}

// MustHaveCols panics with a *ShapeError unless a non-empty m has cols columns.
func (m Matrix) MustHaveCols(op string, cols int) {
	if m.IsEmpty() || m.Cols() == cols {
		return
	}

	panic(&ShapeError{
		Op:       op,
		WantRows: m.Rows(),
		WantCols: cols,
		GotRows:  m.Rows(),
		GotCols:  m.Cols(),
	})
}
