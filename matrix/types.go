// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the two public types of the package: the generic
// row-major Matrix and its proof-carrying Address. Errors, options and
// behavior live in dedicated files.
package matrix

// Matrix is a two-dimensional container of T with flat row-major storage.
//   - r,c hold the extents (rows, cols), both > 0 and fixed after construction.
//   - data holds r*c elements; element (row, col) lives at data[row*c + col].
//
// The zero value is not usable; build matrices with New, FromFlat or NewFunc.
// A Matrix owns its storage exclusively: constructors copy caller slices and
// accessors (Data, Shape) return copies.
//
// Concurrency: no internal locking. Any number of goroutines may call read
// methods (At, Get, All, Format, ...) concurrently as long as no goroutine is
// writing (SetAt, Set, Apply); writers need exclusive access. Synchronizing
// shared matrices is the caller's job.
type Matrix[T any] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Address is a (row, col) position that has been validated against a matrix
// shape. It can only be obtained from (*Matrix[T]).Address or from the
// matrix's own iterators, so holding one is proof that
//
//	0 <= row < rows  and  0 <= col < cols
//
// for the (rows, cols) it was validated against. An Address holds no
// reference to the matrix that produced it: it is valid for every Matrix of
// the same shape, of any element type, and for no other.
//
// The zero Address is not valid for any matrix.
type Address struct {
	row, col   int // position
	rows, cols int // shape the position was validated against
}
