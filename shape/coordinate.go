// SPDX-License-Identifier: MIT

package shape

import "math"

// Coordinate is an ordered tuple of per-axis indices. It is shape-agnostic:
// constructing one never fails, and validity is decided only when it is
// presented to a specific Shape (InBounds, Shape.Check, container Get/Set).
type Coordinate []int

// Coord builds a Coordinate from indices (copied).
func Coord(idx ...int) Coordinate {
	c := make(Coordinate, len(idx))
	copy(c, idx)

	return c
}

// Rank returns the number of axes.
func (c Coordinate) Rank() int { return len(c) }

// InBounds reports whether c.Rank() == s.Rank() and 0 <= c[i] < s[i] on
// every axis.
func (c Coordinate) InBounds(s Shape) bool {
	if len(c) != len(s) {
		return false
	}
	for i, idx := range c {
		if idx < 0 || idx >= s[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (c Coordinate) Clone() Coordinate {
	if c == nil {
		return nil
	}

	return Coord(c...)
}

// Equal reports whether both coordinates have the same rank and indices.
func (c Coordinate) Equal(other Coordinate) bool {
	return Shape(c).Equal(Shape(other))
}

// Split returns copies of c[:at] and c[at:]. Composite tensors use it to
// separate the outer (row, col) prefix from the inner suffix.
// at is clamped to [0, Rank()].
func (c Coordinate) Split(at int) (prefix, suffix Coordinate) {
	if at < 0 {
		at = 0
	}
	if at > len(c) {
		at = len(c)
	}

	return Coord(c[:at]...), Coord(c[at:]...)
}

// Compare orders coordinates row-major: the first differing axis decides,
// and a shorter coordinate sorts before a longer one sharing its prefix.
// Returns -1, 0 or +1; suitable for slices.SortFunc.
func (c Coordinate) Compare(other Coordinate) int {
	n := min(len(c), len(other))
	for i := 0; i < n; i++ {
		switch {
		case c[i] < other[i]:
			return -1
		case c[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(c) < len(other):
		return -1
	case len(c) > len(other):
		return 1
	}

	return 0
}

// String renders "(1, 0, 2)".
func (c Coordinate) String() string { return joinInts(c) }

// ---------- arithmetic ----------
//
// All binary operations require equal rank and return a new Coordinate; the
// operands are never modified. Results are NOT validated against any Shape.

// Add returns c + other, axis by axis.
func (c Coordinate) Add(other Coordinate) (Coordinate, error) {
	return c.zip("Coordinate.Add", other, func(a, b int) int { return a + b })
}

// Sub returns c - other, axis by axis.
func (c Coordinate) Sub(other Coordinate) (Coordinate, error) {
	return c.zip("Coordinate.Sub", other, func(a, b int) int { return a - b })
}

// Diff returns |c - other|, axis by axis.
func (c Coordinate) Diff(other Coordinate) (Coordinate, error) {
	return c.zip("Coordinate.Diff", other, func(a, b int) int {
		if a > b {
			return a - b
		}
		return b - a
	})
}

// Scale returns k*c.
func (c Coordinate) Scale(k int) Coordinate {
	out := make(Coordinate, len(c))
	for i, v := range c {
		out[i] = v * k
	}

	return out
}

// Distance returns the Euclidean distance between c and other.
func (c Coordinate) Distance(other Coordinate) (float64, error) {
	if len(c) != len(other) {
		return 0, rankErrorf("Coordinate.Distance", len(other), len(c))
	}
	var sum float64
	for i := range c {
		d := float64(c[i] - other[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

func (c Coordinate) zip(method string, other Coordinate, op func(a, b int) int) (Coordinate, error) {
	if len(c) != len(other) {
		return nil, rankErrorf(method, len(other), len(c))
	}
	out := make(Coordinate, len(c))
	for i := range c {
		out[i] = op(c[i], other[i])
	}

	return out, nil
}
