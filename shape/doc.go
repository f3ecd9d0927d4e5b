// SPDX-License-Identifier: MIT

// Package shape provides the addressing vocabulary shared by every container
// in lvtensor: Shape (per-axis extents) and Coordinate (per-axis position).
//
// The package provides:
//
//   - Shape with Rank/Size, strict validation (Validate) and row-major
//     linearization (Strides, Offset, Unravel, Coordinates).
//   - Coordinate, an unvalidated position that is checked only when it is
//     presented to a concrete Shape (InBounds, Shape.Check).
//   - Coordinate arithmetic (Add, Sub, Diff, Scale, Distance) and row-major
//     ordering (Compare).
//   - The sentinel error set used by matrix and tensor, plus the structured
//     *OutOfBoundsError carrying the offending axis, index and extent.
//
// Row-major rule (must match every container in the module):
//
//	offset = Σ c[i] * stride[i],   stride[last] = 1,   stride[i] = stride[i+1] * s[i+1]
//
// so for a two-axis shape (rows, cols) the offset is row*cols + col.
//
// Concurrency: Shape and Coordinate are plain slices. Containers keep
// private copies, but a Shape or Coordinate value you hold yourself follows
// ordinary slice sharing rules; synchronize externally if you mutate it
// while other goroutines read it.
package shape
