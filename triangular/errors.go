// SPDX-License-Identifier: MIT
// Package triangular: sentinel error set.
// Index and limit failures reuse the vector sentinels so a single errors.Is
// check works across both packages.

package triangular

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// SHARED SENTINELS
// These are the vector package sentinels re-exported under this package so
// callers of triangular never need to import vector just to match errors.

// ErrOutOfIndex reports a bad dimension, index or operand size.
var ErrOutOfIndex = vector.ErrOutOfIndex

// ErrOverLimit reports a dimension whose cell count n*n exceeds vector.MaxSize.
var ErrOverLimit = vector.ErrOverLimit

// ErrParse reports unparsable element text in ReadFrom.
var ErrParse = vector.ErrParse

var (
	// ErrBelowDiagonal is returned for a write at (i, j) with j < i while the
	// strict triangle policy is active. It also matches ErrOutOfIndex.
	ErrBelowDiagonal = fmt.Errorf("triangular: write below the diagonal: %w", vector.ErrOutOfIndex)

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("triangular: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxRow      = "Row"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
	ctxRead     = "ReadFrom"
	ctxFromTri  = "FromTriangular"
)

// matrixErrorf wraps err with the method name and the (row, col) pair.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// sizeErrorf wraps err with the method name and a dimension.
func sizeErrorf(method string, n int, err error) error {
	return fmt.Errorf("Matrix.%s(n=%d): %w", method, n, err)
}
