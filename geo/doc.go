// Package geo provides the value types the rest of the kernel is built on:
// 2D and 3D points and vectors, parametric lines and segments, and the
// arithmetic that operates on them, including products against a 3x3 dense
// matrix (gonum mat.Dense).
//
// Points denote locations and vectors denote displacements; they share the
// same component layout but are distinct types so that operations that only
// make sense for one role (cross product, norm) live on the right one.
//
// All types are small value structs. Every operation returns its result by
// value and never mutates its inputs, so any call is safe from multiple
// goroutines as long as the data itself is not being written concurrently.
package geo
