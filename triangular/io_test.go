package triangular_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/utmatrix/triangular"
	"github.com/stretchr/testify/require"
)

func TestWriteTo_RowMajorLines(t *testing.T) {
	m := MustMatrix[int](t, 3)
	require.NoError(t, m.Set(0, 2, 5))
	require.NoError(t, m.Set(1, 1, -4))

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)

	const want = "1 1 5\n0 -4 1\n0 0 1\n"
	require.Equal(t, want, buf.String())
	require.EqualValues(t, len(want), n)
	require.Equal(t, want, m.String())
}

func TestReadFrom_RoundTrip(t *testing.T) {
	src := MustMatrix[float64](t, 3)
	require.NoError(t, src.Set(0, 1, 0.5))
	require.NoError(t, src.Set(2, 2, -2.25))

	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	require.NoError(t, err)
	size := int64(buf.Len())

	dst := MustMatrix[float64](t, 3)
	n, err := dst.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, size, n)
	require.True(t, dst.Equal(src))
}

func TestReadFrom_SkipsBlankLines(t *testing.T) {
	m := MustMatrix[int](t, 2)
	_, err := m.ReadFrom(strings.NewReader("\n7 8\n\n   \n0 9\n\n"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{7, 8}, {0, 9}}, m.Values())
}

func TestReadFrom_BelowDiagonal(t *testing.T) {
	const input = "1 2 3\n4 5 6\n0 7 8\n"

	strict := MustMatrix[int](t, 3)
	_, err := strict.ReadFrom(strings.NewReader(input))
	require.ErrorIs(t, err, triangular.ErrBelowDiagonal)

	lenient := MustMatrix[int](t, 3, triangular.WithLenientTriangle())
	_, err = lenient.ReadFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {0, 7, 8}}, lenient.Values())

	r, err := lenient.Row(2)
	require.NoError(t, err)
	require.Equal(t, 1, r.StartIndex(), "row 2 grows down to its first non-zero column")
}

func TestReadFrom_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"too few lines", "1 1\n", triangular.ErrOutOfIndex},
		{"too many lines", "1 1\n0 1\n0 1\n", triangular.ErrOutOfIndex},
		{"short line", "1 1\n1\n", triangular.ErrOutOfIndex},
		{"long line", "1 1 1\n0 1\n", triangular.ErrOutOfIndex},
		{"garbage", "1 x\n0 1\n", triangular.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Filled(t, 2, 3)
			_, err := m.ReadFrom(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
			requireUpper(t, m, 3) // untouched
		})
	}
}

func TestReadFrom_LineLongerThanScannerDefault(t *testing.T) {
	wide := "0.5" + strings.Repeat("0", 70*1024) // still 0.5, one 70KB token
	input := "1 " + wide + "\n0 2\n"

	m := MustMatrix[float64](t, 2)
	n, err := m.ReadFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.EqualValues(t, len(input), n)
	require.Equal(t, [][]float64{{1, 0.5}, {0, 2}}, m.Values())
}

func TestReadFrom_RoundTripWideRows(t *testing.T) {
	if testing.Short() {
		t.Skip("large matrix")
	}
	const n = 3000 // each row line is about 72KB
	src := MustMatrix[float64](t, n)
	src.FillUpper(1.2345678901234567e+300)

	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	require.NoError(t, err)

	dst := MustMatrix[float64](t, n)
	_, err = dst.ReadFrom(&buf)
	require.NoError(t, err)
	require.True(t, dst.Equal(src))
}
