// SPDX-License-Identifier: MIT

// Package triangular - Matrix storage (jagged rows) & safe accessors.
//
// Purpose:
//   - Hold n rows, row i being a vector of size n with start index i.
//   - Guarantee safety at the public surface: At/Set/Row return errors.
//   - Own every row exclusively: Clone, Assign and FromRows deep-copy.
//
// Complexity quicksheet:
//   - New: O(n²/2) fill; At/Set/Row: O(1); Clone/Assign/Equal: O(n²/2).

package triangular

import (
	"github.com/katalvlaran/utmatrix/vector"
)

// Matrix is an upper-triangular n×n matrix of T.
// Composition over vectors: rows[i] stores columns i..n-1.
type Matrix[T vector.Number] struct {
	n    int                 // dimension (rows == cols)
	rows []*vector.Vector[T] // owned rows, len == n
	opts Options
}

// New creates an n×n upper-triangular matrix.
//
// Implementation:
//   - Stage 1: validate n > 0 (ErrOutOfIndex) and n*n ≤ vector.MaxSize
//     (ErrOverLimit). The product is never formed, so it cannot overflow.
//   - Stage 2: build row i as vector.NewWithStart(n, i).
//
// Complexity:
//   - Time O(n²/2), Space O(n²/2).
func New[T vector.Number](n int, opts ...Option) (*Matrix[T], error) {
	if err := validateDim(n); err != nil {
		return nil, sizeErrorf(ctxNew, n, err)
	}
	o := gatherOptions(opts...)

	rows := make([]*vector.Vector[T], n)
	rowOpts := o.rowOptions()
	for i := 0; i < n; i++ {
		r, err := vector.NewWithStart[T](n, i, rowOpts...)
		if err != nil {
			return nil, sizeErrorf(ctxNew, n, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{n: n, rows: rows, opts: o}, nil
}

// FromRows promotes a vector-of-vectors into a Matrix.
//
// Behavior highlights:
//   - Every row must be non-nil and have Size() == len(rows).
//   - Row start indices are taken as given; the triangle shape is not
//     re-checked here.
//   - Rows are deep-copied; the caller keeps ownership of its slice.
//   - Copied rows log through the matrix logger, not their source's.
//
// Errors:
//   - ErrOutOfIndex for an empty slice, a nil row, or a size mismatch.
//   - ErrOverLimit when len(rows)² exceeds vector.MaxSize.
func FromRows[T vector.Number](rows []*vector.Vector[T], opts ...Option) (*Matrix[T], error) {
	n := len(rows)
	if err := validateDim(n); err != nil {
		return nil, sizeErrorf(ctxFromRows, n, err)
	}
	o := gatherOptions(opts...)

	own := make([]*vector.Vector[T], n)
	for i, r := range rows {
		if r == nil || r.Size() != n {
			return nil, matrixErrorf(ctxFromRows, i, 0, ErrOutOfIndex)
		}
		own[i] = r.CloneWith(o.rowOptions()...)
	}

	return &Matrix[T]{n: n, rows: own, opts: o}, nil
}

// Size returns the dimension passed at construction. Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.n }

// Row returns row i. The returned vector is owned by m: writes through it
// are visible in m and follow plain vector semantics (no triangle policy).
//
// Errors:
//   - ErrOutOfIndex if i < 0 or i ≥ Size().
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if err := validateIndex(i, m.n); err != nil {
		return nil, matrixErrorf(ctxRow, i, 0, err)
	}

	return m.rows[i], nil
}

// At returns element (i, j). Cells below the diagonal read as zero unless a
// lenient write materialized them.
//
// Errors:
//   - ErrOutOfIndex if i or j is outside [0, Size()).
//
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := validateCell(i, j, m.n); err != nil {
		return 0, matrixErrorf(ctxAt, i, j, err)
	}

	return m.rows[i].At(j)
}

// Set assigns v at (i, j).
//
// Behavior highlights:
//   - j ≥ i: in-place write into row i.
//   - j < i: ErrBelowDiagonal under the strict policy (default); under
//     WithLenientTriangle row i grows leftward to begin at j.
//
// Errors:
//   - ErrOutOfIndex if i or j is outside [0, Size()).
//   - ErrBelowDiagonal (also matches ErrOutOfIndex).
//
// Complexity: O(1), or O(n) when a lenient write grows a row.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := validateCell(i, j, m.n); err != nil {
		return matrixErrorf(ctxSet, i, j, err)
	}
	if j < i && !m.opts.lenient {
		return matrixErrorf(ctxSet, i, j, ErrBelowDiagonal)
	}

	return m.rows[i].Set(j, v)
}

// FillUpper writes v into every cell on or above the diagonal.
// Complexity: O(n²/2).
func (m *Matrix[T]) FillUpper(v T) {
	for i, r := range m.rows {
		for j := i; j < m.n; j++ {
			_ = r.Set(j, v) // bounds hold by construction
		}
	}
}

// Equal reports whether m and o have the same dimension and equal rows
// (vector.Equal: same start index and stored elements).
// A matrix is always equal to itself.
// Complexity: O(n²/2).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.n != o.n {
		return false
	}
	for i := range m.rows {
		if m.rows[i].NotEqual(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// Assign replaces m's dimension and rows with deep copies of src's and
// returns m. Self-assignment and a nil src are no-ops. m keeps its options,
// and the copied rows log through m's logger.
// Complexity: O(n²/2).
func (m *Matrix[T]) Assign(src *Matrix[T]) *Matrix[T] {
	if m == src || src == nil {
		return m
	}
	rows := make([]*vector.Vector[T], src.n)
	for i, r := range src.rows {
		rows[i] = r.CloneWith(m.opts.rowOptions()...)
	}
	m.n, m.rows = src.n, rows

	return m
}

// Clone returns a deep copy of m, including its options.
// Complexity: O(n²/2).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], m.n)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{n: m.n, rows: rows, opts: m.opts}
}

// Values returns the full logical matrix as n slices of n values, with zeros
// below the diagonal. Complexity: O(n²).
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, m.n)
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}
