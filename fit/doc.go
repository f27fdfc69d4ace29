// Package fit estimates rigid motion from matched point pairs: given
// index-aligned source and target point sets, it computes the rotation and
// translation minimizing the sum of squared alignment errors (the absolute
// orientation problem, solved by the cross-covariance method).
//
// Every pair is weighted equally unless the weighted variant is used; there
// is no outlier rejection. Callers needing robustness must pre-filter their
// correspondences.
package fit
