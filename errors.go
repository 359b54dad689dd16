package cmeans

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidFuzzifier is returned when the fuzzifier is not a finite number greater than 1.
	ErrInvalidFuzzifier = errors.New("fuzzifier must be a finite number greater than 1")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name that is not hard or fuzzy.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

func validateFuzzifier(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidFuzzifier, m)
	}
	return nil
}
