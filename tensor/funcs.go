// SPDX-License-Identifier: MIT

// Package tensor - generic helpers over any Tensor.
//
// Everything here is written against the Tensor interface only, so it works
// the same for *matrix.Matrix, *Composite, *Dense and user types. Iteration
// is always row-major over Shape().Coordinates().

package tensor

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvtensor/shape"
)

// All returns a lazy, restartable sequence of (Coordinate, value) pairs of t
// in row-major order. Each yielded Coordinate is a fresh copy. The shape is
// captured when All is called.
//
// Complexity: O(rank) per element plus the cost of t.Get.
func All[T any](t Tensor[T]) iter.Seq2[shape.Coordinate, T] {
	coords := t.Shape().Coordinates()

	return func(yield func(shape.Coordinate, T) bool) {
		for c := range coords {
			v, err := t.Get(c)
			if err != nil {
				// Every coordinate comes from t's own shape; a failing Get
				// means t breaks the Tensor contract. Stop rather than yield
				// a fabricated zero.
				return
			}
			if !yield(c, v) {
				return
			}
		}
	}
}

// Collect returns the elements of t in row-major order.
//
// Errors:
//   - ErrNilTensor.
//   - ErrShapeMismatch when t yields fewer than Size() elements (a Get
//     failed for a coordinate inside t's own shape).
func Collect[T any](t Tensor[T]) ([]T, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(ctxCollect, err)
	}
	out := make([]T, 0, t.Size())
	for _, v := range All(t) {
		out = append(out, v)
	}
	if len(out) != t.Size() {
		return nil, tensorErrorf(ctxCollect,
			fmt.Errorf("got %d of %d elements: %w", len(out), t.Size(), ErrShapeMismatch))
	}

	return out, nil
}

// Fill sets every element of t to v.
// Errors: ErrNilTensor or the first Set error (elements before it stay written).
func Fill[T any](t Tensor[T], v T) error {
	return Apply(t, func(shape.Coordinate, T) T { return v })
}

// Apply replaces each element of t with f(c, old) in row-major order.
//
// Errors:
//   - ErrNilTensor.
//   - The first Get/Set error; elements visited before it remain updated.
//     For all-or-nothing semantics apply to a ToDense copy instead.
func Apply[T any](t Tensor[T], f func(c shape.Coordinate, v T) T) error {
	if err := ValidateNotNil(t); err != nil {
		return tensorErrorf(ctxApply, err)
	}
	for c := range t.Shape().Coordinates() {
		v, err := t.Get(c)
		if err != nil {
			return tensorErrorf(ctxApply, err)
		}
		if _, err = t.Set(c, f(c, v)); err != nil {
			return tensorErrorf(ctxApply, err)
		}
	}

	return nil
}

// Map materializes f over t into a new Dense of the same shape; the element
// type may change. t is not modified.
// Errors: ErrNilTensor, ErrInvalidShape (t reports an invalid shape).
func Map[T, U any](t Tensor[T], f func(c shape.Coordinate, v T) U) (*Dense[U], error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(ctxMap, err)
	}
	s := t.Shape()
	if err := s.Validate(); err != nil {
		return nil, tensorErrorf(ctxMap, err)
	}
	data := make([]U, 0, s.Size())
	for c, v := range All(t) {
		data = append(data, f(c, v))
	}
	if len(data) != s.Size() {
		return nil, tensorErrorf(ctxMap, ErrShapeMismatch)
	}

	return &Dense[U]{dims: s, data: data}, nil
}

// ToDense copies t into a new Dense with the same shape and elements.
func ToDense[T any](t Tensor[T]) (*Dense[T], error) {
	d, err := Map(t, func(_ shape.Coordinate, v T) T { return v })
	if err != nil {
		return nil, tensorErrorf(ctxToDense, err)
	}

	return d, nil
}

// Equal reports whether a and b have equal shapes and equal elements at every
// coordinate. The concrete types may differ: a rank-4 Composite equals a
// rank-4 Dense holding the same values.
func Equal[T comparable](a, b Tensor[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b Tensor[T], eq func(x, y T) bool) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	for c, x := range All(a) {
		y, err := b.Get(c)
		if err != nil || !eq(x, y) {
			return false
		}
	}

	return true
}
