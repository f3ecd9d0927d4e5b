// SPDX-License-Identifier: MIT

// Package matrix - Address: validated 2D positions & checked element access.
//
// Purpose:
//   - Make "is this (row, col) in range?" a question answered once, at
//     Address construction, so At/SetAt can never fail afterwards.
//   - Keep the public boundary bounds-checked anyway: At/SetAt verify that
//     the Address was validated for this matrix's shape before indexing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/shape"
)

// Address validates (row, col) against m and returns the proof-carrying Address.
// MAIN DESCRIPTION:
//   - The only public way to obtain an Address for arbitrary indices.
//
// Implementation:
//   - Stage 1: check 0 ≤ row < Rows(); failure reports axis 0.
//   - Stage 2: check 0 ≤ col < Cols(); failure reports axis 1.
//   - Stage 3: return Address{row, col, rows, cols}.
//
// Errors:
//   - *shape.OutOfBoundsError (matches ErrOutOfBounds) for the first offending
//     axis, wrapped with "Matrix.Address(row,col)".
//   - ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Address(row, col int) (Address, error) {
	if m == nil {
		return Address{}, denseErrorf(ctxAddress, row, col, ErrNilMatrix)
	}
	if err := m.checkRowCol(row, col); err != nil {
		return Address{}, denseErrorf(ctxAddress, row, col, err)
	}

	return m.addr(row, col), nil
}

// checkRowCol returns the *shape.OutOfBoundsError for the first bad axis.
func (m *Matrix[T]) checkRowCol(row, col int) error {
	if row < 0 || row >= m.r {
		return &shape.OutOfBoundsError{Axis: 0, Index: row, Extent: m.r}
	}
	if col < 0 || col >= m.c {
		return &shape.OutOfBoundsError{Axis: 1, Index: col, Extent: m.c}
	}

	return nil
}

// addr builds an Address for indices the caller has already validated.
func (m *Matrix[T]) addr(row, col int) Address {
	return Address{row: row, col: col, rows: m.r, cols: m.c}
}

// offset returns the row-major offset of a, panicking when a was validated
// for another shape (including the zero Address).
func (m *Matrix[T]) offset(a Address) int {
	if a.rows != m.r || a.cols != m.c {
		panic(fmt.Sprintf(panicForeignAddress, a, a.Shape(), m.Shape()))
	}

	return a.row*m.c + a.col
}

// At returns the element at a.
// At cannot fail for an Address obtained from a matrix of the same shape.
// Using an Address validated for a different shape is a programmer error and
// panics.
// Complexity: O(1).
func (m *Matrix[T]) At(a Address) T {
	return m.data[m.offset(a)]
}

// SetAt stores v at a and returns the previous value.
// Same Address rules as At.
// Complexity: O(1).
func (m *Matrix[T]) SetAt(a Address, v T) T {
	off := m.offset(a)
	old := m.data[off]
	m.data[off] = v

	return old
}

// Row returns the row index.
func (a Address) Row() int { return a.row }

// Col returns the column index.
func (a Address) Col() int { return a.col }

// Shape returns the (rows, cols) this Address was validated against.
func (a Address) Shape() shape.Shape { return shape.Shape{a.rows, a.cols} }

// ValidFor reports whether a may be used with a matrix of shape s.
func (a Address) ValidFor(s shape.Shape) bool {
	return len(s) == rank && s[0] == a.rows && s[1] == a.cols && a.rows > 0 && a.cols > 0
}

// Coordinate returns (row, col) as a shape.Coordinate.
func (a Address) Coordinate() shape.Coordinate { return shape.Coordinate{a.row, a.col} }

// Compare orders addresses row-major (row first, then column).
func (a Address) Compare(b Address) int {
	return a.Coordinate().Compare(b.Coordinate())
}

// String renders "(row, col)".
func (a Address) String() string { return fmt.Sprintf("(%d, %d)", a.row, a.col) }
