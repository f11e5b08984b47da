// SPDX-License-Identifier: MIT

// Package triangular - element-wise arithmetic.
//
// Add and Sub mutate the receiver: each row is replaced by the row-wise
// vector sum/difference and the receiver is returned for chaining. New rows
// are computed before any is committed, so a failure leaves m untouched and
// m.Add(m) is well defined.

package triangular

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/utmatrix/vector"
)

// Add sets m = m + o and returns m.
//
// Errors:
//   - ErrNilMatrix for a nil operand; ErrOutOfIndex for differing dimensions.
//
// Complexity: O(n²/2).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.rowwise(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub sets m = m - o and returns m.
//
// Errors:
//   - ErrNilMatrix for a nil operand; ErrOutOfIndex for differing dimensions.
//
// Complexity: O(n²/2).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.rowwise(ctxSub, o, (*vector.Vector[T]).Sub)
}

// rowwise applies op to every (m.rows[i], o.rows[i]) pair and commits the
// results into m once all rows succeeded.
func (m *Matrix[T]) rowwise(
	method string,
	o *Matrix[T],
	op func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if err := validateOperand(m, o); err != nil {
		return nil, matrixErrorf(method, dimOf(m), dimOf(o), err)
	}

	next := make([]*vector.Vector[T], m.n)
	for i := range m.rows {
		r, err := op(m.rows[i], o.rows[i])
		if err != nil {
			return nil, matrixErrorf(method, i, 0, err)
		}
		next[i] = r
	}

	log := m.opts.log()
	if log.Core().Enabled(zap.DebugLevel) {
		for i, r := range next {
			log.Debug("matrix row updated",
				zap.String("op", method),
				zap.Int("row", i),
				zap.Stringer("values", r))
		}
	}
	m.rows = next

	return m, nil
}

// dimOf is a nil-safe dimension used in error context.
func dimOf[T vector.Number](m *Matrix[T]) int {
	if m == nil {
		return -1
	}

	return m.n
}
