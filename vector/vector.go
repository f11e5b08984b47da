// SPDX-License-Identifier: MIT

// Package vector - bounded storage with a start offset & safe accessors.
//
// Purpose:
//   - Keep only the populated range [start, size) in a contiguous buffer; the
//     offset formula is data[pos-start].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make copies explicit: Clone and Assign deep-copy, nothing is shared.
//
// Complexity quicksheet:
//   - New: O(size-start) fill; At: O(1); Set: O(1), or O(size) when it grows;
//     Equal/Clone/Assign: O(size-start).

package vector

import (
	"math"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// MaxSize is the largest logical size a vector may have.
// Matrices apply the same bound to their total cell count.
const MaxSize int64 = math.MaxUint32

// Number is the set of element types a Vector can hold.
// Signed is required because subtraction is defined through negation.
type Number interface {
	constraints.Signed | constraints.Float
}

// Vector is a bounded one-dimensional container.
//   - size is the logical extent; valid indices are 0..size-1.
//   - start is the first stored index; slots below it read as zero.
//   - data holds exactly size-start elements (offset = pos - start).
type Vector[T Number] struct {
	size   int         // logical extent (> 0)
	start  int         // first stored logical index, 0 ≤ start ≤ size
	data   []T         // owned storage, len == size-start
	logger *zap.Logger // nil ⇒ package Logger()
}

// New creates a vector of the given size with every slot stored (start 0).
// Equivalent to NewWithStart(size, 0, opts...).
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	return NewWithStart[T](size, 0, opts...)
}

// NewWithStart creates a vector of logical size `size` whose stored range
// begins at `start`.
//
// Implementation:
//   - Stage 1: validate size > 0, size ≤ MaxSize, 0 ≤ start ≤ size.
//   - Stage 2: allocate size-start slots and fill them per the init policy.
//
// Errors:
//   - ErrOutOfIndex for size ≤ 0 or start outside [0, size].
//   - ErrOverLimit for size > MaxSize.
//
// Complexity:
//   - Time O(size-start), Space O(size-start).
func NewWithStart[T Number](size, start int, opts ...Option) (*Vector[T], error) {
	if err := validateShape(size, start); err != nil {
		return nil, shapeErrorf(ctxNew, size, start, err)
	}
	o := gatherOptions(opts...)

	data := make([]T, size-start)
	fill := initValue[T](o.init)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Vector[T]{size: size, start: start, data: data, logger: o.logger}, nil
}

// Size returns the logical extent. Complexity: O(1).
func (v *Vector[T]) Size() int { return v.size }

// StartIndex returns the first stored logical index. Complexity: O(1).
func (v *Vector[T]) StartIndex() int { return v.start }

// Stored returns the number of physically stored slots (Size - StartIndex).
func (v *Vector[T]) Stored() int { return len(v.data) }

// At returns the element at logical position pos.
// Positions below StartIndex are not stored and read as zero.
//
// Errors:
//   - ErrOutOfIndex if pos < 0 or pos ≥ Size().
//
// Complexity: O(1).
func (v *Vector[T]) At(pos int) (T, error) {
	if err := validateIndex(pos, v.size); err != nil {
		return 0, vectorErrorf(ctxAt, pos, err)
	}
	if pos < v.start {
		return 0, nil
	}

	return v.data[pos-v.start], nil
}

// Element is an alias for At.
func (v *Vector[T]) Element(pos int) (T, error) { return v.At(pos) }

// Set assigns val at logical position pos.
//
// Behavior highlights:
//   - pos ≥ StartIndex: in-place overwrite.
//   - pos < StartIndex: the stored range grows leftward to begin at pos;
//     the gap between pos and the old start is zero-filled.
//
// Errors:
//   - ErrOutOfIndex if pos < 0 or pos ≥ Size().
//
// Complexity: O(1) overwrite, O(size-pos) on growth.
func (v *Vector[T]) Set(pos int, val T) error {
	if err := validateIndex(pos, v.size); err != nil {
		return vectorErrorf(ctxSet, pos, err)
	}
	if pos < v.start {
		v.growTo(pos)
	}
	v.data[pos-v.start] = val

	return nil
}

// SetElement is an alias for Set.
func (v *Vector[T]) SetElement(pos int, val T) error { return v.Set(pos, val) }

// growTo moves the start index down to pos, keeping stored values in place
// and zero-filling the new slots. Caller guarantees 0 ≤ pos < v.start.
func (v *Vector[T]) growTo(pos int) {
	grown := make([]T, v.size-pos)
	copy(grown[v.start-pos:], v.data)
	v.log().Debug("vector grown leftward",
		zap.Int("size", v.size),
		zap.Int("old_start", v.start),
		zap.Int("new_start", pos))
	v.data, v.start = grown, pos
}

// Equal reports whether v and o have the same size, the same start index and
// equal stored elements. A vector is always equal to itself.
// Complexity: O(size-start).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if v.size != o.size || v.start != o.start {
		return false
	}

	return slices.Equal(v.data, o.data)
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// Assign replaces v's size, start index and elements with a deep copy of
// src's and returns v. Self-assignment and a nil src are no-ops.
// The receiver keeps its own logger.
// Complexity: O(src.size-src.start).
func (v *Vector[T]) Assign(src *Vector[T]) *Vector[T] {
	if v == src || src == nil {
		return v
	}
	v.size, v.start = src.size, src.start
	v.data = slices.Clone(src.data)

	return v
}

// Clone returns a deep copy of v.
// Complexity: O(size-start).
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		size:   v.size,
		start:  v.start,
		data:   slices.Clone(v.data),
		logger: v.logger,
	}
}

// CloneWith returns a deep copy of v whose logger comes from opts rather than
// from v; without WithLogger the copy uses the package Logger().
// Init policies are ignored since every stored value is copied.
// Complexity: O(size).
func (v *Vector[T]) CloneWith(opts ...Option) *Vector[T] {
	c := v.Clone()
	c.logger = gatherOptions(opts...).logger

	return c
}

// Values returns a fresh slice of length Size() holding the full logical
// range, with zeros below StartIndex.
// Complexity: O(size).
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out[v.start:], v.data)

	return out
}

// log resolves the effective logger.
func (v *Vector[T]) log() *zap.Logger {
	if v.logger != nil {
		return v.logger
	}

	return Logger()
}
