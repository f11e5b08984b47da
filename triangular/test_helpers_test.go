// SPDX-License-Identifier: MIT
// Package triangular_test contains test helpers.

package triangular_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/triangular"
	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// MustMatrix allocates an n×n matrix or fails the test.
func MustMatrix[T vector.Number](t *testing.T, n int, opts ...triangular.Option) *triangular.Matrix[T] {
	t.Helper()
	m, err := triangular.New[T](n, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T vector.Number](t *testing.T, m *triangular.Matrix[T], i, j int) T {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}

// Filled builds an n×n matrix with v in every cell on or above the diagonal.
func Filled[T vector.Number](t *testing.T, n int, v T, opts ...triangular.Option) *triangular.Matrix[T] {
	t.Helper()
	m := MustMatrix[T](t, n, opts...)
	m.FillUpper(v)

	return m
}

// requireUpper asserts every cell of m: want on/above the diagonal, 0 below.
func requireUpper[T vector.Number](t *testing.T, m *triangular.Matrix[T], want T) {
	t.Helper()
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			exp := want
			if j < i {
				exp = 0
			}
			require.Equalf(t, exp, MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}
