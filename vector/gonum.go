// SPDX-License-Identifier: MIT

// Package vector - gonum interop.
//
// ToVecDense/FromVecDense convert through float64. Integer element types
// truncate toward zero on the way back in (Go conversion semantics).

package vector

import "gonum.org/v1/gonum/mat"

// ToVecDense returns the full logical range of v as a *mat.VecDense.
// Complexity: O(size).
func ToVecDense[T Number](v *Vector[T]) *mat.VecDense {
	buf := make([]float64, v.size)
	for p, x := range v.data {
		buf[v.start+p] = float64(x)
	}

	return mat.NewVecDense(v.size, buf)
}

// FromVecDense builds a vector with start 0 from any gonum mat.Vector.
//
// Errors:
//   - ErrOutOfIndex for an empty source, ErrOverLimit for an oversized one.
//
// Complexity: O(Len()).
func FromVecDense[T Number](src mat.Vector, opts ...Option) (*Vector[T], error) {
	size := src.Len()
	v, err := New[T](size, opts...)
	if err != nil {
		return nil, shapeErrorf(ctxFromVec, size, 0, err)
	}
	for p := range v.data {
		v.data[p] = T(src.AtVec(p))
	}

	return v, nil
}
