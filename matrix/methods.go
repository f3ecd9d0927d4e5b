// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix operations.
//
// Purpose:
//   - Value-producing transforms (Transpose, Clone, Resize, Map) that never
//     mutate their input and return independent storage.
//   - One in-place transform (Apply) with deterministic row-major order.
//   - Structural equality (Equal, EqualFunc).
//
// Determinism:
//   - All loops are fixed i→j (row-major); no map iteration.

package matrix

import "slices"

// Transpose returns a new cols×rows matrix holding m[r,c] at (c,r).
// MAIN DESCRIPTION:
//   - Copying transpose; m is not modified.
//
// Implementation:
//   - Stage 1: allocate the flipped buffer.
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	res := &Matrix[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Clone returns a copy of m with independent storage. Elements are copied by
// assignment, so pointer or slice elements are shared (shallow per element).
// Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Data returns a row-major copy of the storage, suitable for FromFlat.
func (m *Matrix[T]) Data() []T {
	return slices.Clone(m.data)
}

// Resize returns a new rows×cols matrix. Cells inside the overlap of the old
// and new shapes keep their values; every other cell is fill. m is unchanged.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Matrix[T]) Resize(rows, cols int, fill T) (*Matrix[T], error) {
	res, err := New(rows, cols, fill)
	if err != nil {
		return nil, matrixErrorf(ctxResize, err)
	}
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(res.data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}

	return res, nil
}

// Apply replaces each element with f(a, v) in place, in row-major order.
// Complexity: O(r*c).
func (m *Matrix[T]) Apply(f func(a Address, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(m.addr(i, j), m.data[base+j])
		}
	}
}

// Map returns a new matrix of the same shape whose cell at a is f(a, m.At(a)).
// The element type may change. m is not modified.
// Complexity: O(r*c).
func Map[T, U any](m *Matrix[T], f func(a Address, v T) U) *Matrix[U] {
	res := &Matrix[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for a, v := range m.All() {
		res.data[a.row*m.c+a.col] = f(a, v)
	}

	return res
}

// Equal reports whether a and b have the same shape and equal elements.
// Two nil matrices are equal; nil and non-nil are not.
func Equal[T comparable](a, b *Matrix[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Matrix[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return slices.EqualFunc(a.data, b.data, eq)
}
