// SPDX-License-Identifier: MIT

// Package triangular - gonum interop.
//
// ToTriDense exports the upper triangle into a *mat.TriDense (mat.Upper).
// Cells below the diagonal that a lenient write materialized are dropped,
// since mat.Upper storage has no place for them.

package triangular

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/utmatrix/vector"
)

// ToTriDense converts m into an upper *mat.TriDense via float64.
// Complexity: O(n²).
func ToTriDense[T vector.Number](m *Matrix[T]) *mat.TriDense {
	n := m.n
	data := make([]float64, n*n)
	for i, r := range m.rows {
		for j := i; j < n; j++ {
			x, _ := r.At(j) // bounds hold by construction
			data[i*n+j] = float64(x)
		}
	}

	return mat.NewTriDense(n, mat.Upper, data)
}

// FromTriangular builds a Matrix from any upper gonum mat.Triangular.
// Integer element types truncate toward zero.
//
// Errors:
//   - ErrBelowDiagonal for a lower-triangular source.
//   - ErrOutOfIndex / ErrOverLimit from the dimension checks of New.
func FromTriangular[T vector.Number](t mat.Triangular, opts ...Option) (*Matrix[T], error) {
	n, kind := t.Triangle()
	if kind != mat.Upper {
		return nil, sizeErrorf(ctxFromTri, n, ErrBelowDiagonal)
	}
	m, err := New[T](n, opts...)
	if err != nil {
		return nil, sizeErrorf(ctxFromTri, n, err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err = m.rows[i].Set(j, T(t.At(i, j))); err != nil {
				return nil, matrixErrorf(ctxFromTri, i, j, err)
			}
		}
	}

	return m, nil
}
