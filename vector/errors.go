// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every public operation returns one of these sentinels (possibly wrapped with
// call-site context) and tests MUST check them via errors.Is. No public method
// panics on user-triggered error conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency. Call sites
// wrap with vectorErrorf/shapeErrorf so the method and index are visible in
// logs while errors.Is keeps matching the sentinel.

var (
	// ErrOutOfIndex is returned when a size, start index or element index is
	// outside the valid range, or when operand sizes differ.
	ErrOutOfIndex = errors.New("vector: index out of range")

	// ErrOverLimit is returned when a requested size exceeds MaxSize.
	ErrOverLimit = errors.New("vector: size exceeds limit")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrParse indicates that serialized element text could not be parsed.
	ErrParse = errors.New("vector: cannot parse element")
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxAdd     = "Add"
	ctxSub     = "Sub"
	ctxDot     = "Dot"
	ctxRead    = "ReadFrom"
	ctxFromVec = "FromVecDense"
)

// vectorErrorf wraps err with the method name and the offending index.
func vectorErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, pos, err)
}

// shapeErrorf wraps err with the method name and the (size, start) pair.
func shapeErrorf(method string, size, start int, err error) error {
	return fmt.Errorf("Vector.%s(size=%d,start=%d): %w", method, size, start, err)
}
