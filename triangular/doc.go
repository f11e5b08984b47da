// Package triangular offers an upper-triangular square matrix built from
// bounded vectors.
//
// Storage layout (n = 4):
//
//	row 0: a00 a01 a02 a03     start 0, 4 stored
//	row 1:  0  a11 a12 a13     start 1, 3 stored
//	row 2:  0   0  a22 a23     start 2, 2 stored
//	row 3:  0   0   0  a33     start 3, 1 stored
//
// Each row is a *vector.Vector[T] of size n whose start index equals the row
// number, so only the upper triangle is allocated. Matrix arithmetic (Add,
// Sub) reuses the row-wise vector operations and mutates the receiver.
//
// Sub-diagonal writes are rejected with ErrBelowDiagonal by default; pass
// WithLenientTriangle to let them grow the row leftward instead.
//
// See the examples in this package for usage patterns.
package triangular
