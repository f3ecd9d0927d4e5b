// SPDX-License-Identifier: MIT

package matrix

import "iter"

// All returns a lazy sequence of (Address, value) pairs in row-major order:
// (0,0), (0,1), ..., (0,cols-1), (1,0), ...
// The sequence is finite (Size() pairs) and restartable: every range over it
// starts again at (0,0) and does not consume or copy the matrix. Values are
// read when the pair is produced, so writes made through SetAt during
// iteration are visible to later pairs.
//
// Complexity:
//   - Time O(r*c) for a full range, Space O(1).
func (m *Matrix[T]) All() iter.Seq2[Address, T] {
	return func(yield func(Address, T) bool) {
		var i, j, base int
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				if !yield(m.addr(i, j), m.data[base+j]) {
					return
				}
			}
		}
	}
}

// Addresses returns a lazy, restartable sequence of every Address of m in
// row-major order.
func (m *Matrix[T]) Addresses() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		for a := range m.All() {
			if !yield(a) {
				return
			}
		}
	}
}

// Do visits each element in row-major order and calls f(a, v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(a Address, v T) bool) {
	for a, v := range m.All() {
		if !f(a, v) {
			return
		}
	}
}
