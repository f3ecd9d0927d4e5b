// SPDX-License-Identifier: MIT
// Package tensor: capability interfaces.
//
// Purpose:
//   - Define the single polymorphism point of the module: anything with a
//     Shape and checked coordinate Get/Set is a Tensor.
//   - Keep the contract small so user types (odd rank, sparse, views) can
//     implement it directly.
//
// Contract (every implementation in this module honors it, user types must):
//   - Get/Set validate the FULL coordinate (all nested levels) before
//     touching storage.
//   - Failures are atomic: a failed Set leaves the tensor unchanged.
//   - An out-of-range axis is reported as *shape.OutOfBoundsError with the
//     caller's axis numbering; a wrong coordinate rank wraps ErrRankMismatch.
//   - Rank() == Shape().Rank() and Size() == Shape().Size().

package tensor

import (
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/shape"
)

// Tensor is an N-dimensional array of T.
type Tensor[T any] interface {
	// Shape returns the per-axis extents (a copy; mutating it has no effect).
	Shape() shape.Shape

	// Rank returns the number of axes.
	Rank() int

	// Size returns the total element count.
	Size() int

	// Get returns the element at c.
	// Returns *shape.OutOfBoundsError or an ErrRankMismatch-wrapping error
	// when c is not a valid position.
	Get(c shape.Coordinate) (T, error)

	// Set stores v at c and returns the previous value.
	// Same errors as Get; on error nothing is written.
	Set(c shape.Coordinate, v T) (T, error)
}

// Resolver is implemented by tensors built from matrices. Resolve returns
// the Address to use at each nesting level to reach the element at c,
// outermost first. A *matrix.Matrix returns one Address; a rank-2k
// composite returns k.
type Resolver interface {
	Resolve(c shape.Coordinate) ([]matrix.Address, error)
}

// Compile-time assertions: the leaf container is a Tensor and a Resolver.
var (
	_ Tensor[float64] = (*matrix.Matrix[float64])(nil)
	_ Resolver        = (*matrix.Matrix[float64])(nil)
)
