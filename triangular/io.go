// SPDX-License-Identifier: MIT

// Package triangular - text serialization.
//
// Format:
//   - n lines in row-major order, one row per line.
//   - Each line holds all n logical values of the row (zeros below the
//     diagonal), separated by a single space.
//
// ReadFrom is all-or-nothing: on error the receiver is left untouched.

package triangular

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

// Compile-time assertions for io/fmt conformance.
var (
	_ io.WriterTo   = (*Matrix[int])(nil)
	_ io.ReaderFrom = (*Matrix[int])(nil)
	_ fmt.Stringer  = (*Matrix[int])(nil)
)

// String implements fmt.Stringer; it returns the WriteTo text.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// WriteTo writes m as n text lines.
// Complexity: O(n²).
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, r := range m.rows {
		n, err := r.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// ReadFrom reads n non-blank lines of n values each from r until EOF.
//
// Behavior highlights:
//   - Cells on or above the diagonal are stored as read.
//   - A non-zero cell below the diagonal fails with ErrBelowDiagonal under the
//     strict policy; under WithLenientTriangle it grows the row down to the
//     first non-zero column.
//
// Errors:
//   - ErrParse on malformed text.
//   - ErrOutOfIndex on a wrong line count or a wrong value count in a line.
//   - ErrBelowDiagonal (strict policy only).
//   - Any read error from r.
func (m *Matrix[T]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	sc := bufio.NewScanner(cr)
	sc.Buffer(make([]byte, 0, initialLineBuf), math.MaxInt)

	var lines [][]T
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		i := len(lines)
		if i >= m.n {
			return cr.n, matrixErrorf(ctxRead, i, 0, ErrOutOfIndex)
		}
		vals, err := vector.ParseValues[T](line)
		if err != nil {
			return cr.n, matrixErrorf(ctxRead, i, 0, err)
		}
		if len(vals) != m.n {
			return cr.n, matrixErrorf(ctxRead, i, len(vals), ErrOutOfIndex)
		}
		lines = append(lines, vals)
	}
	if err := sc.Err(); err != nil {
		return cr.n, err
	}
	if len(lines) != m.n {
		return cr.n, matrixErrorf(ctxRead, len(lines), 0, ErrOutOfIndex)
	}

	rows := make([]*vector.Vector[T], m.n)
	for i, vals := range lines {
		start := i
		for j := 0; j < i; j++ {
			if vals[j] == 0 {
				continue
			}
			if !m.opts.lenient {
				return cr.n, matrixErrorf(ctxRead, i, j, ErrBelowDiagonal)
			}
			start = j
			break
		}
		row, err := buildRow(vals, start, m.opts)
		if err != nil {
			return cr.n, matrixErrorf(ctxRead, i, start, err)
		}
		rows[i] = row
	}
	m.rows = rows

	return cr.n, nil
}

// buildRow creates a vector of len(vals) starting at start and stores
// vals[start:] into it.
func buildRow[T vector.Number](vals []T, start int, o Options) (*vector.Vector[T], error) {
	row, err := vector.NewWithStart[T](len(vals), start, o.rowOptions()...)
	if err != nil {
		return nil, err
	}
	for j := start; j < len(vals); j++ {
		if err = row.Set(j, vals[j]); err != nil {
			return nil, err
		}
	}

	return row, nil
}

// initialLineBuf is the starting scanner buffer; it grows to fit any row.
const initialLineBuf = 64 * 1024

// countingReader tallies bytes consumed from r for io.ReaderFrom.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
