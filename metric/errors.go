package metric

import "errors"

var (
	// ErrDegenerateLine is returned when a query line has a zero direction
	// vector and therefore no defined projection.
	ErrDegenerateLine = errors.New("metric: line has zero-length direction")

	// ErrParallelLines is returned by the two-line distance query when the
	// lines are parallel and the skew-line solve is undefined.
	ErrParallelLines = errors.New("metric: lines are parallel")
)
