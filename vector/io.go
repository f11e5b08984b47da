// SPDX-License-Identifier: MIT

// Package vector - text serialization.
//
// Format:
//   - One line holding all Size() logical values (zeros below the start
//     index), separated by a single space, terminated by '\n'.
//   - ReadFrom accepts any whitespace (including newlines) between values and
//     requires exactly Size() of them.
//
// ReadFrom is all-or-nothing: on error the receiver is left untouched.

package vector

import (
	"fmt"
	"io"
	"strings"
)

// Compile-time assertions for io/fmt conformance.
var (
	_ io.WriterTo   = (*Vector[int])(nil)
	_ io.ReaderFrom = (*Vector[int])(nil)
	_ fmt.Stringer  = (*Vector[int])(nil)
)

// ---------- Formatting literals ----------
const (
	_fmtSep  = " "
	_fmtLine = "\n"
)

// FormatValues renders vals as space-separated text without a trailing newline.
func FormatValues[T Number](vals []T) string {
	var sb strings.Builder
	for i, x := range vals {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}

	return sb.String()
}

// ParseValues splits text on whitespace and parses every field as T.
// A field that is not fully consumed by the parser (e.g. "1.5" for an
// integer T) is rejected with ErrParse.
func ParseValues[T Number](text string) ([]T, error) {
	fields := strings.Fields(text)
	out := make([]T, len(fields))
	for i, f := range fields {
		rd := strings.NewReader(f)
		if _, err := fmt.Fscan(rd, &out[i]); err != nil || rd.Len() != 0 {
			return nil, fmt.Errorf("field %d %q: %w", i, f, ErrParse)
		}
	}

	return out, nil
}

// String implements fmt.Stringer; it renders the WriteTo line without '\n'.
func (v *Vector[T]) String() string {
	return FormatValues(v.Values())
}

// WriteTo writes the full logical range of v as one text line.
// Complexity: O(size).
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String()+_fmtLine)

	return int64(n), err
}

// ReadFrom reads Size() whitespace-separated values from r until EOF.
//
// Behavior highlights:
//   - Values at or above StartIndex are stored as read.
//   - A non-zero value below StartIndex grows the stored range down to the
//     first non-zero position, as Set does.
//
// Errors:
//   - ErrParse on malformed text.
//   - ErrOutOfIndex when the value count differs from Size().
//   - Any read error from r.
func (v *Vector[T]) ReadFrom(r io.Reader) (int64, error) {
	raw, err := io.ReadAll(r)
	n := int64(len(raw))
	if err != nil {
		return n, err
	}
	vals, err := ParseValues[T](string(raw))
	if err != nil {
		return n, vectorErrorf(ctxRead, 0, err)
	}
	if len(vals) != v.size {
		return n, vectorErrorf(ctxRead, len(vals), ErrOutOfIndex)
	}

	start := v.start
	for p := 0; p < v.start; p++ {
		if vals[p] != 0 {
			start = p
			break
		}
	}
	v.start = start
	v.data = vals[start:]

	return n, nil
}
