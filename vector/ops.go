// SPDX-License-Identifier: MIT

// Package vector - scalar & vector arithmetic.
//
// Purpose:
//   - Scalar operations (AddScalar, SubScalar, MulScalar) mutate the receiver
//     in place and return it for chaining. Clone first for a pure result.
//   - Vector operations (Add, Sub, Dot) never mutate their operands; Add/Sub
//     return a freshly allocated vector.
//
// Differing start indices:
//   - Add starts its result at the smaller start index. Positions between the
//     two starts are copied from the operand that stores them; from the larger
//     start onward the elements are summed.
//   - Dot only visits the intersection [max(starts), size).

package vector

import "go.uber.org/zap"

// AddScalar adds val to every logical element of v, in place.
//
// Behavior highlights:
//   - val == 0 is a no-op.
//   - Otherwise the full range is materialized first (start becomes 0 and the
//     previously absent slots become 0), then every slot is shifted by val.
//
// Returns v.
// Complexity: O(size).
func (v *Vector[T]) AddScalar(val T) *Vector[T] {
	if val == 0 {
		return v
	}
	if v.start > 0 {
		v.growTo(0)
	}
	for i := range v.data {
		v.data[i] += val
	}

	return v
}

// SubScalar is AddScalar(-val).
func (v *Vector[T]) SubScalar(val T) *Vector[T] {
	return v.AddScalar(-val)
}

// MulScalar multiplies every stored element of v by val, in place.
//
// Behavior highlights:
//   - val == 0 collapses the stored range: start becomes size and the buffer
//     is released. Every position then reads as zero.
//
// Returns v.
// Complexity: O(size-start).
func (v *Vector[T]) MulScalar(val T) *Vector[T] {
	if val == 0 {
		v.log().Debug("vector collapsed by zero scalar",
			zap.Int("size", v.size),
			zap.Int("old_start", v.start))
		v.start = v.size
		v.data = []T{}

		return v
	}
	for i := range v.data {
		v.data[i] *= val
	}

	return v
}

// Add returns v + o as a new vector.
//
// Implementation:
//   - Stage 1: validate o non-nil and same size.
//   - Stage 2: order operands by start index (lo ≤ hi).
//   - Stage 3: copy lo's prefix [lo.start, hi.start), then sum [hi.start, size).
//
// Errors:
//   - ErrNilVector, ErrOutOfIndex (size mismatch).
//
// Complexity: O(size-min(starts)).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := validateOperand(v, o); err != nil {
		return nil, vectorErrorf(ctxAdd, sizeOf(o), err)
	}

	lo, hi := v, o
	if o.start < v.start {
		lo, hi = o, v
	}
	res := &Vector[T]{
		size:   v.size,
		start:  lo.start,
		data:   make([]T, v.size-lo.start),
		logger: v.logger,
	}
	gap := hi.start - lo.start
	copy(res.data[:gap], lo.data[:gap])
	for p := hi.start; p < v.size; p++ {
		res.data[p-lo.start] = lo.data[p-lo.start] + hi.data[p-hi.start]
	}

	return res, nil
}

// Sub returns v - o as a new vector, computed as (-1 * o) + v.
// Neither operand is modified.
//
// Errors:
//   - ErrNilVector, ErrOutOfIndex (size mismatch).
//
// Complexity: O(size).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if err := validateOperand(v, o); err != nil {
		return nil, vectorErrorf(ctxSub, sizeOf(o), err)
	}
	neg := o.Clone().MulScalar(-1)
	neg.logger = v.logger

	return neg.Add(v)
}

// Dot returns Σ v[p]*o[p] over the positions both vectors store.
//
// Errors:
//   - ErrNilVector, ErrOutOfIndex (size mismatch).
//
// Complexity: O(size-max(starts)).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := validateOperand(v, o); err != nil {
		return 0, vectorErrorf(ctxDot, sizeOf(o), err)
	}
	from := max(v.start, o.start)

	var sum T
	for p := from; p < v.size; p++ {
		sum += v.data[p-v.start] * o.data[p-o.start]
	}

	return sum, nil
}

// sizeOf is a nil-safe size used in error context.
func sizeOf[T Number](v *Vector[T]) int {
	if v == nil {
		return -1
	}

	return v.size
}
