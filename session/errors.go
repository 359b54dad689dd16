package session

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cmeans/model"
)

var (
	// ErrOutOfBounds is returned when a point lies outside the session bounds.
	ErrOutOfBounds = errors.New("point out of bounds")

	// ErrInvalidBounds is returned for inverted or non-finite bounds.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidEpsilon is returned for a negative or NaN epsilon.
	ErrInvalidEpsilon = errors.New("epsilon must be a non-negative number")

	// ErrNoCandidates is returned when an iteration yields no candidate centroids,
	// which happens when the session has no points or no centroids.
	ErrNoCandidates = errors.New("not enough points or centroids to iterate")

	// ErrDegenerate is returned when a candidate centroid has NaN coordinates.
	ErrDegenerate = errors.New("iteration produced undefined centroids")

	// ErrConverged is returned when the cost is already within epsilon.
	ErrConverged = errors.New("cost within epsilon")
)

// OutOfBoundsError reports the rejected point.
//
// errors.Is(err, ErrOutOfBounds) holds for every OutOfBoundsError.
type OutOfBoundsError struct {
	Point  model.Point
	Bounds model.Bounds
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("point %v outside %v", e.Point, e.Bounds)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
