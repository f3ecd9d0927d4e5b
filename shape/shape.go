// SPDX-License-Identifier: MIT

// Package shape - Shape type, validation & row-major linearization.
//
// Purpose:
//   - Describe a container's extent along each axis.
//   - Be the single source of truth for the row-major offset formula used by
//     matrix.Matrix, tensor.Dense and the composite lookup path.
//
// Complexity quicksheet:
//   - Rank: O(1); Size/Validate/Strides/Check/Offset/Unravel: O(rank);
//     Coordinates: O(rank) per yielded coordinate.

package shape

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// ---------- method tags used in error wrappers ----------

const (
	ctxValidate = "Validate"
	ctxCheck    = "Check"
	ctxUnravel  = "Unravel"
)

// Shape is an ordered sequence of per-axis extents.
// A valid Shape has at least one axis and every extent is > 0.
type Shape []int

// Of builds a Shape from extents. It does not validate; see Validate.
func Of(extents ...int) Shape {
	s := make(Shape, len(extents))
	copy(s, extents)

	return s
}

// Rank returns the number of axes.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the product of all extents, or 0 when the shape is empty or
// any extent is <= 0. Size does not detect overflow; Validate does.
// Complexity: O(rank).
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		if d <= 0 {
			return 0
		}
		n *= d
	}

	return n
}

// Validate reports ErrInvalidShape when the shape cannot describe a
// container: rank 0, an extent <= 0, or a total size that overflows int.
//
// Implementation:
//   - Stage 1: reject rank 0.
//   - Stage 2: scan extents left to right; reject d <= 0 at the first axis.
//   - Stage 3: accumulate the product, rejecting overflow before it happens.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return shapeErrorf(ctxValidate, ErrInvalidShape)
	}
	n := 1
	for axis, d := range s {
		if d <= 0 {
			return shapeErrorf(ctxValidate, &invalidExtentError{axis: axis, extent: d})
		}
		if n > math.MaxInt/d {
			return shapeErrorf(ctxValidate, &invalidExtentError{axis: axis, extent: d, overflow: true})
		}
		n *= d
	}

	return nil
}

// invalidExtentError carries the axis detail of an ErrInvalidShape.
type invalidExtentError struct {
	axis     int
	extent   int
	overflow bool
}

func (e *invalidExtentError) Error() string {
	if e.overflow {
		return "axis " + strconv.Itoa(e.axis) + ": element count overflows int: " + ErrInvalidShape.Error()
	}

	return "axis " + strconv.Itoa(e.axis) + ": extent " + strconv.Itoa(e.extent) + ": " + ErrInvalidShape.Error()
}

func (e *invalidExtentError) Unwrap() error { return ErrInvalidShape }

// Equal reports whether both shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}

	return Of(s...)
}

// Concat returns a new Shape holding s followed by other. Composite tensors
// derive their shape this way: outer ++ inner.
func (s Shape) Concat(other Shape) Shape {
	out := make(Shape, 0, len(s)+len(other))
	out = append(out, s...)

	return append(out, other...)
}

// String renders the shape as "(2, 3)".
func (s Shape) String() string {
	return joinInts(s)
}

// Strides returns the row-major strides: the last axis has stride 1 and each
// earlier axis strides over the product of the extents after it.
// Complexity: O(rank).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// Contains reports whether c is a valid position in s. Same as c.InBounds(s).
func (s Shape) Contains(c Coordinate) bool {
	return c.InBounds(s)
}

// Check validates c against s.
// MAIN DESCRIPTION:
//   - Full-coordinate validation performed before any container touches
//     storage; used by every Get/Set in the module.
//
// Implementation:
//   - Stage 1: compare ranks; mismatch wraps ErrRankMismatch.
//   - Stage 2: scan axes in order; the first axis with c[i] < 0 or
//     c[i] >= s[i] yields *OutOfBoundsError{Axis: i}.
//
// Returns:
//   - nil when c addresses an element of s.
//
// Errors:
//   - ErrRankMismatch (wrapped), *OutOfBoundsError (matches ErrOutOfBounds).
//
// Complexity:
//   - Time O(rank), Space O(1) on success.
func (s Shape) Check(c Coordinate) error {
	if len(c) != len(s) {
		return rankErrorf("Shape."+ctxCheck, len(c), len(s))
	}
	for axis, idx := range c {
		if idx < 0 || idx >= s[axis] {
			return &OutOfBoundsError{Axis: axis, Index: idx, Extent: s[axis]}
		}
	}

	return nil
}

// Offset returns the row-major flat offset of c in s.
// MAIN DESCRIPTION:
//   - Linearize a validated coordinate; inverse of Unravel.
//
// Implementation:
//   - Stage 1: Check(c); fail without computing anything.
//   - Stage 2: Horner scheme off = off*s[i] + c[i], left to right, which
//     equals Σ c[i]*stride[i] without materializing strides.
//
// Errors:
//   - ErrRankMismatch, *OutOfBoundsError.
//
// Complexity:
//   - Time O(rank), Space O(1).
func (s Shape) Offset(c Coordinate) (int, error) {
	if err := s.Check(c); err != nil {
		return 0, err
	}
	off := 0
	for axis, idx := range c {
		off = off*s[axis] + idx
	}

	return off, nil
}

// Unravel converts a flat row-major offset back into a Coordinate.
// Offsets outside [0, Size()) are rejected with ErrOutOfBounds.
// Complexity: O(rank).
func (s Shape) Unravel(off int) (Coordinate, error) {
	size := s.Size()
	if off < 0 || off >= size {
		return nil, shapeErrorf(ctxUnravel, &OutOfBoundsError{Axis: -1, Index: off, Extent: size})
	}
	c := make(Coordinate, len(s))
	for axis := len(s) - 1; axis >= 0; axis-- {
		c[axis] = off % s[axis]
		off /= s[axis]
	}

	return c, nil
}

// Coordinates returns a lazy, restartable sequence of every coordinate of s
// in row-major order (last axis varies fastest). Each yielded Coordinate is a
// fresh copy the caller may keep. An invalid shape yields nothing.
//
// Determinism:
//   - Fixed odometer order; ranging twice yields the same sequence.
//
// Complexity:
//   - Time O(rank) per coordinate, Space O(rank).
func (s Shape) Coordinates() iter.Seq[Coordinate] {
	dims := s.Clone()

	return func(yield func(Coordinate) bool) {
		if dims.Size() == 0 {
			return
		}
		cur := make(Coordinate, len(dims))
		for {
			if !yield(cur.Clone()) {
				return
			}
			// Odometer increment from the last axis.
			axis := len(dims) - 1
			for ; axis >= 0; axis-- {
				cur[axis]++
				if cur[axis] < dims[axis] {
					break
				}
				cur[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

// joinInts renders "(a, b, c)".
func joinInts(v []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(')')

	return sb.String()
}
