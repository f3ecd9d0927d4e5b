// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvtensor/shape"
)

// The methods below give *Matrix[T] the tensor capability set (Shape, Rank,
// Size, Get, Set) so a Matrix can be used anywhere a tensor.Tensor[T] is
// expected, including as the leaf of a composite.

// Get returns the element at the two-axis coordinate c = (row, col).
//
// Errors:
//   - ErrRankMismatch when len(c) != 2.
//   - *shape.OutOfBoundsError for the first offending axis.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix[T]) Get(c shape.Coordinate) (T, error) {
	var zero T
	a, err := m.resolve(ctxGet, c)
	if err != nil {
		return zero, err
	}

	return m.data[a.row*m.c+a.col], nil
}

// Set stores v at c and returns the previous value. The coordinate is fully
// validated before storage is touched, so a failed Set never mutates m.
// Errors: same as Get.
// Complexity: O(1).
func (m *Matrix[T]) Set(c shape.Coordinate, v T) (T, error) {
	var zero T
	a, err := m.resolve(ctxSet, c)
	if err != nil {
		return zero, err
	}

	return m.SetAt(a, v), nil
}

// Resolve converts c into the Address path needed to reach the element. For
// a Matrix the path has exactly one Address.
func (m *Matrix[T]) Resolve(c shape.Coordinate) ([]Address, error) {
	a, err := m.resolve(ctxResolve, c)
	if err != nil {
		return nil, err
	}

	return []Address{a}, nil
}

// resolve validates rank then bounds and returns the Address for c.
func (m *Matrix[T]) resolve(method string, c shape.Coordinate) (Address, error) {
	if m == nil {
		return Address{}, coordErrorf(method, c, ErrNilMatrix)
	}
	if len(c) != rank {
		return Address{}, coordErrorf(method, c, shape.Shape{m.r, m.c}.Check(c))
	}
	if err := m.checkRowCol(c[0], c[1]); err != nil {
		return Address{}, coordErrorf(method, c, err)
	}

	return m.addr(c[0], c[1]), nil
}
