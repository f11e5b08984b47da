// SPDX-License-Identifier: MIT
// Package: triangular
//
// Purpose:
//   - Single source of truth for dimension/index/operand checks.
//   - Return plain sentinels; call sites wrap with matrixErrorf/sizeErrorf.

package triangular

import "github.com/katalvlaran/utmatrix/vector"

// validateDim checks n > 0 and n*n ≤ vector.MaxSize.
// n > MaxSize/n is equivalent to n*n > MaxSize for positive integers and
// never overflows.
func validateDim(n int) error {
	if n <= 0 {
		return ErrOutOfIndex
	}
	if int64(n) > vector.MaxSize/int64(n) {
		return ErrOverLimit
	}

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfIndex
	}

	return nil
}

// validateCell checks both coordinates against n.
func validateCell(i, j, n int) error {
	if err := validateIndex(i, n); err != nil {
		return err
	}

	return validateIndex(j, n)
}

// validateOperand checks that both matrices are non-nil and share a dimension.
func validateOperand[T vector.Number](m, o *Matrix[T]) error {
	if m == nil || o == nil {
		return ErrNilMatrix
	}
	if m.n != o.n {
		return ErrOutOfIndex
	}

	return nil
}
