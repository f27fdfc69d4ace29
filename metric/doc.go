// Package metric implements closest-point and distance queries between
// points, parametric lines and segments in 2D and 3D.
//
// Degenerate geometry (a zero-length line direction, parallel lines in the
// two-line query) is reported through the package sentinel errors rather
// than leaking NaN into finite-looking results. Callers branch on the cause
// with errors.Is.
package metric
