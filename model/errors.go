package model

import "fmt"

// ShapeError reports that two inputs disagree on the centroid/point indexing.
//
// It is raised as a panic value: misaligned inputs are a caller bug, not a
// runtime condition.
type ShapeError struct {
	Op       string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %dx%d, got %dx%d",
		e.Op, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}
