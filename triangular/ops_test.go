// SPDX-License-Identifier: MIT

package triangular_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/triangular"
	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestAdd_DefaultOnes: two fresh matrices hold 1 everywhere above the
// diagonal, so their sum holds 2.
func TestAdd_DefaultOnes(t *testing.T) {
	m1 := MustMatrix[int](t, 3)
	m2 := MustMatrix[int](t, 3)
	res := Filled(t, 3, 2)

	got, err := m1.Add(m2)
	require.NoError(t, err)
	require.Same(t, m1, got, "Add mutates and returns the receiver")
	require.True(t, got.Equal(res))
}

// TestAdd_Values checks a+b at every upper cell for a few (a, b) pairs.
func TestAdd_Values(t *testing.T) {
	for _, tc := range []struct{ a, b int }{{0, 0}, {3, 4}, {-7, 2}, {100, -100}} {
		m := Filled(t, 4, tc.a)
		o := Filled(t, 4, tc.b)

		_, err := m.Add(o)
		require.NoError(t, err)
		requireUpper(t, m, tc.a+tc.b)
		requireUpper(t, o, tc.b) // operand untouched
	}
}

// TestAdd_Self doubles every cell.
func TestAdd_Self(t *testing.T) {
	m := Filled(t, 3, 1.5)
	_, err := m.Add(m)
	require.NoError(t, err)
	requireUpper(t, m, 3.0)
}

// TestAdd_SizeMismatch fails and leaves the receiver untouched.
func TestAdd_SizeMismatch(t *testing.T) {
	m1 := Filled(t, 3, 4)
	m2 := MustMatrix[int](t, 5)

	_, err := m1.Add(m2)
	require.ErrorIs(t, err, triangular.ErrOutOfIndex)
	requireUpper(t, m1, 4)

	_, err = m1.Add(nil)
	require.ErrorIs(t, err, triangular.ErrNilMatrix)
}

// TestSub_Values: 3 - 2 equals a default (all ones) matrix.
func TestSub_Values(t *testing.T) {
	m1 := Filled(t, 3, 3)
	m2 := Filled(t, 3, 2)
	res := MustMatrix[int](t, 3)

	got, err := m1.Sub(m2)
	require.NoError(t, err)
	require.True(t, got.Equal(res))
	requireUpper(t, m2, 2)
}

// TestSub_SelfIsZero: m - m equals a zero-initialized matrix.
func TestSub_SelfIsZero(t *testing.T) {
	m := Filled(t, 4, 17)
	zero := MustMatrix[int](t, 4, triangular.WithInit(vector.InitZero))

	_, err := m.Sub(m)
	require.NoError(t, err)
	require.True(t, m.Equal(zero))

	// A default matrix is NOT zero: fresh cells hold 1.
	require.False(t, MustMatrix[int](t, 4).Equal(zero))
}

// TestSub_SizeMismatch fails on differing dimensions.
func TestSub_SizeMismatch(t *testing.T) {
	_, err := MustMatrix[int](t, 3).Sub(MustMatrix[int](t, 5))
	require.ErrorIs(t, err, triangular.ErrOutOfIndex)
}

// TestAddSub_Chain composes in-place operations.
func TestAddSub_Chain(t *testing.T) {
	m := Filled(t, 3, 10)
	o := Filled(t, 3, 4)

	got, err := m.Add(o)
	require.NoError(t, err)
	got, err = got.Sub(o)
	require.NoError(t, err)
	got, err = got.Sub(o)
	require.NoError(t, err)
	requireUpper(t, got, 6)
}

// TestAdd_DebugLogPerRow observes one debug entry per row.
func TestAdd_DebugLogPerRow(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := MustMatrix[int](t, 3, triangular.WithLogger(zap.New(core)))

	_, err := m.Add(MustMatrix[int](t, 3))
	require.NoError(t, err)

	entries := logs.FilterMessage("matrix row updated").All()
	require.Len(t, entries, 3)
	require.Equal(t, "Add", entries[0].ContextMap()["op"])
	require.Equal(t, "2 2 2", entries[0].ContextMap()["values"])
	require.Equal(t, "0 0 2", entries[2].ContextMap()["values"])
}

// TestAdd_NoLogAboveDebug skips row rendering when debug is disabled.
func TestAdd_NoLogAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := MustMatrix[int](t, 3, triangular.WithLogger(zap.New(core)))

	_, err := m.Add(MustMatrix[int](t, 3))
	require.NoError(t, err)
	require.Equal(t, 0, logs.Len())
}
