// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures so each test states only its intent.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// MustVector allocates a vector of the given size and start or fails the test.
func MustVector[T vector.Number](t *testing.T, size, start int, opts ...vector.Option) *vector.Vector[T] {
	t.Helper()
	v, err := vector.NewWithStart[T](size, start, opts...)
	require.NoError(t, err)

	return v
}

// Filled builds a zero-initialized vector and stores vals starting at start.
// len(vals) must equal size-start.
func Filled[T vector.Number](t *testing.T, size, start int, vals ...T) *vector.Vector[T] {
	t.Helper()
	require.Len(t, vals, size-start, "Filled: wrong number of values")
	v := MustVector[T](t, size, start, vector.WithInit(vector.InitZero))
	for i, x := range vals {
		require.NoError(t, v.Set(start+i, x))
	}

	return v
}
