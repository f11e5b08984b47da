// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single source of truth for shape and index checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// All checks are pure and allocate nothing.

package vector

// validateShape checks a (size, start) pair for construction.
// Order: non-positive size → over limit → start range.
// Complexity: O(1).
func validateShape(size, start int) error {
	if size <= 0 {
		return ErrOutOfIndex
	}
	// Compare in int64 so the check also holds where int is 32 bits wide.
	if int64(size) > MaxSize {
		return ErrOverLimit
	}
	if start < 0 || start > size {
		return ErrOutOfIndex
	}

	return nil
}

// validateIndex checks 0 ≤ pos < size.
// Complexity: O(1).
func validateIndex(pos, size int) error {
	if pos < 0 || pos >= size {
		return ErrOutOfIndex
	}

	return nil
}

// validateOperand checks that both vectors are non-nil and share a logical size.
// Complexity: O(1).
func validateOperand[T Number](v, o *Vector[T]) error {
	if v == nil || o == nil {
		return ErrNilVector
	}
	if v.size != o.size {
		return ErrOutOfIndex
	}

	return nil
}
