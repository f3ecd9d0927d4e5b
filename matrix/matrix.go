// SPDX-License-Identifier: MIT

// Package matrix - construction & shape accessors.
//
// Purpose:
//   - Create matrices fully formed: either every cell is initialized or the
//     constructor returns (nil, error). No partially-built matrix escapes.
//   - Copy caller slices so every Matrix owns its storage exclusively.
//
// Complexity quicksheet:
//   - New/FromFlat/NewFunc: O(r*c); Rows/Cols/Rank: O(1); Shape: O(1) alloc of 2 ints.

package matrix

import (
	"github.com/katalvlaran/lvtensor/shape"
)

// rank is the number of axes of every Matrix.
const rank = 2

// New creates a rows×cols matrix with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (and that rows*cols fits in int).
//   - Stage 2: allocate the flat buffer and write fill into every cell.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, fill T) (*Matrix[T], error) {
	m, err := alloc[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// FromFlat creates a rows×cols matrix from row-major data (copied).
// Element (row, col) is taken from data[row*cols + col].
//
// Errors:
//   - ErrInvalidShape when rows<=0 or cols<=0.
//   - ErrShapeMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromFlat[T any](rows, cols int, data []T) (*Matrix[T], error) {
	if err := shape.ValidateDataLen(shape.Shape{rows, cols}, len(data)); err != nil {
		return nil, matrixErrorf(ctxFromFlat, err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// NewFunc creates a rows×cols matrix whose cell at a is fn(a). fn is called
// exactly once per cell, in row-major order.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c) plus the cost of fn, Space O(r*c).
func NewFunc[T any](rows, cols int, fn func(a Address) T) (*Matrix[T], error) {
	m, err := alloc[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNewFunc, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = fn(m.addr(i, j))
		}
	}

	return m, nil
}

// alloc validates the extents and allocates a zero-filled matrix.
func alloc[T any](rows, cols int) (*Matrix[T], error) {
	if err := shape.ValidateExtents(rows, cols); err != nil {
		return nil, err
	}

	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// Shape returns (rows, cols) as a fresh shape.Shape.
func (m *Matrix[T]) Shape() shape.Shape { return shape.Shape{m.r, m.c} }

// Rank always returns 2.
func (m *Matrix[T]) Rank() int { return rank }

// Size returns rows*cols.
func (m *Matrix[T]) Size() int { return len(m.data) }
