// SPDX-License-Identifier: MIT

// Package tensor - Dense: flat row-major tensor of any rank.
//
// Purpose:
//   - Cover ranks composition cannot build (odd ranks, rank 1) by
//     implementing Tensor directly on one flat buffer.
//   - Serve as the materialization target of ToDense and Map.
//
// Complexity quicksheet:
//   - NewDense/DenseFrom: O(size); Get/Set: O(rank); Data/Clone: O(size).

package tensor

import (
	"slices"

	"github.com/katalvlaran/lvtensor/shape"
)

const typDense = "Dense"

// Dense is an N-dimensional tensor with contiguous row-major storage:
// element c lives at data[dims.Offset(c)].
// The zero value is not usable; build with NewDense or DenseFrom.
type Dense[T any] struct {
	dims shape.Shape // private copy, fixed after construction
	data []T         // len == dims.Size()
}

// Compile-time assertion.
var _ Tensor[float64] = (*Dense[float64])(nil)

// NewDense creates a tensor of shape s with every element set to fill.
//
// Errors:
//   - ErrInvalidShape (rank 0, extent <= 0, overflow).
//
// Complexity:
//   - Time O(size), Space O(size).
func NewDense[T any](s shape.Shape, fill T) (*Dense[T], error) {
	if err := s.Validate(); err != nil {
		return nil, tensorErrorf(ctxNew, err)
	}
	data := make([]T, s.Size())
	for i := range data {
		data[i] = fill
	}

	return &Dense[T]{dims: s.Clone(), data: data}, nil
}

// DenseFrom creates a tensor of shape s from row-major data (copied).
//
// Errors:
//   - ErrInvalidShape, ErrShapeMismatch.
func DenseFrom[T any](s shape.Shape, data []T) (*Dense[T], error) {
	if err := shape.ValidateDataLen(s, len(data)); err != nil {
		return nil, tensorErrorf(ctxFrom, err)
	}

	return &Dense[T]{dims: s.Clone(), data: slices.Clone(data)}, nil
}

// Shape returns the extents (a copy).
func (d *Dense[T]) Shape() shape.Shape { return d.dims.Clone() }

// Rank returns the number of axes.
func (d *Dense[T]) Rank() int { return len(d.dims) }

// Size returns the element count.
func (d *Dense[T]) Size() int { return len(d.data) }

// Get returns the element at c.
func (d *Dense[T]) Get(c shape.Coordinate) (T, error) {
	off, err := d.dims.Offset(c)
	if err != nil {
		var zero T
		return zero, coordErrorf(typDense, ctxGet, c, err)
	}

	return d.data[off], nil
}

// Set stores v at c and returns the previous value; nothing is written on error.
func (d *Dense[T]) Set(c shape.Coordinate, v T) (T, error) {
	off, err := d.dims.Offset(c)
	if err != nil {
		var zero T
		return zero, coordErrorf(typDense, ctxSet, c, err)
	}
	old := d.data[off]
	d.data[off] = v

	return old, nil
}

// Data returns a row-major copy of the storage.
func (d *Dense[T]) Data() []T { return slices.Clone(d.data) }

// Clone returns a copy with independent storage.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{dims: d.dims.Clone(), data: slices.Clone(d.data)}
}
