package contour

import "errors"

var (
	// ErrShape indicates that the number of values does not match the
	// field dimensions.
	ErrShape = errors.New("field shape mismatch")

	// ErrNonRectangular indicates that the rows of a field have
	// different lengths.
	ErrNonRectangular = errors.New("field rows differ in length")
)
