package fit

import "errors"

var (
	// ErrInsufficientPoints is returned when fewer point pairs are supplied
	// than the estimator needs for a unique solution.
	ErrInsufficientPoints = errors.New("fit: need at least 3 point pairs")

	// ErrLengthMismatch is returned when the source and target point sets
	// have different lengths.
	ErrLengthMismatch = errors.New("fit: source and target lengths differ")

	// ErrDegenerate is returned when the point configuration does not
	// determine a unique rotation (all points coincident, or collinear in
	// 3D), leaving the cross-covariance matrix rank deficient.
	ErrDegenerate = errors.New("fit: degenerate point configuration")
)
