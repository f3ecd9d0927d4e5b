// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// String renders m with the default options:
//
//	[1, 2]
//	[3, 4]
//
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	return m.Format()
}

// Format renders m row by row using the given options.
//
// Example:
//
//	m.Format(WithBrackets("", ""), WithColumnSeparator(" "))  // "1 2\n3 4\n"
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(output).
func (m *Matrix[T]) Format(opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(o.rowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(o.colSep)
			}
			b.WriteString(o.cell(m.data[base+j]))
		}
		b.WriteString(o.rowClose)
		b.WriteString(o.rowSep)
	}

	return b.String()
}
