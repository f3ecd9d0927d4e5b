// Package matrix provides the generic two-dimensional container every
// lvtensor tensor is built from.
//
// The matrix package provides:
//
//   - Matrix[T]: flat row-major storage (element (r,c) at r*cols + c) with
//     fixed extents, built fully formed by New, FromFlat or NewFunc.
//   - Address: a proof-carrying (row, col). Obtain one from Matrix.Address,
//     which validates the indices; At and SetAt then cannot fail. An Address
//     is valid for every matrix of the same shape and no other.
//   - The tensor capability set on *Matrix[T] (Shape, Rank, Size and
//     coordinate-based Get/Set), so a Matrix is a rank-2 tensor and the leaf
//     of every composite in package tensor.
//   - Lazy, restartable row-major iteration (All, Addresses, Do).
//   - Copying transforms (Transpose, Clone, Resize, Map), in-place Apply,
//     Equal/EqualFunc and configurable text rendering (Format + Option).
//   - ToGonum/FromGonum, copying float64 matrices to and from
//     gonum.org/v1/gonum/mat for numeric work.
//
// Errors are the shape sentinels re-exported here (ErrInvalidShape,
// ErrShapeMismatch, ErrOutOfBounds, ErrRankMismatch) plus ErrNilMatrix; match
// them with errors.Is, and use errors.As with *shape.OutOfBoundsError for the
// offending axis.
//
// Matrices are not safe for concurrent mutation. Concurrent readers are fine
// while no writer is active; any write needs exclusive access, which the
// caller provides.
package matrix
