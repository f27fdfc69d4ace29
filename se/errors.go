package se

import "errors"

var (
	// ErrNotRotation is returned when a matrix supplied as a rotation is not
	// a proper rotation (orthonormal with determinant +1).
	ErrNotRotation = errors.New("se: matrix is not a proper rotation")

	// ErrEmptySequence is returned when folding a sequence with no entries.
	ErrEmptySequence = errors.New("se: transform sequence is empty")
)
