// Package se implements the rigid transforms SE(2) and SE(3): rotation plus
// translation, with composition, inversion and application to points and
// vectors, and a generic sequence that folds a chain of transforms (some of
// them stored only in inverted form) into one net transform.
//
// Composition convention throughout: a.Compose(b) is the transform that
// applies b first and then a, matching matrix multiplication a*b of the
// homogeneous forms.
package se
