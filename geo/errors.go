package geo

import "errors"

var (
	// ErrIndexOutOfRange is returned by Component/SetComponent when the
	// index is outside the tuple's dimensionality.
	ErrIndexOutOfRange = errors.New("geo: component index out of range")

	// ErrMatrixShape is returned when a matrix operation requires an exact
	// 3x3 matrix and receives anything else. Shapes are never coerced.
	ErrMatrixShape = errors.New("geo: matrix must be 3x3")
)
