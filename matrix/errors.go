// SPDX-License-Identifier: MIT
// Package matrix: error set.
// The shape-level sentinels are owned by package shape and re-exported here as
// aliases, so errors.Is(err, matrix.ErrOutOfBounds) and
// errors.Is(err, shape.ErrOutOfBounds) are the same test. Matrix-specific
// sentinels are declared below. No exported method panics on user-triggered
// error conditions; panics are reserved for programmer errors (an Address
// used with a matrix of a different shape, invalid options).

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtensor/shape"
)

// Shared sentinels (aliases of package shape).
var (
	// ErrInvalidShape is returned when rows <= 0 or cols <= 0.
	ErrInvalidShape = shape.ErrInvalidShape

	// ErrShapeMismatch is returned when flat data length != rows*cols.
	ErrShapeMismatch = shape.ErrShapeMismatch

	// ErrOutOfBounds matches every *shape.OutOfBoundsError returned by the
	// package (Address, Get, Set, Resolve).
	ErrOutOfBounds = shape.ErrOutOfBounds

	// ErrRankMismatch is returned when a Coordinate does not have 2 axes.
	ErrRankMismatch = shape.ErrRankMismatch
)

// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
var ErrNilMatrix = errors.New("matrix: nil receiver")

// ---------- panic messages (programmer errors, no magic strings) ----------

const (
	panicForeignAddress = "matrix: address %v was validated for shape %v, matrix has shape %v"
	panicNilFormatter   = "matrix: WithCellFormatter: formatter must not be nil"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromFlat  = "FromFlat"
	ctxNewFunc   = "NewFunc"
	ctxResize    = "Resize"
	ctxAddress   = "Address"
	ctxGet       = "Get"
	ctxSet       = "Set"
	ctxResolve   = "Resolve"
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// matrixErrorf wraps err with a constructor tag: "matrix.New: ...".
func matrixErrorf(fn string, err error) error {
	return fmt.Errorf("matrix.%s: %w", fn, err)
}

// denseErrorf wraps err with a method tag and the call-site indices:
// "Matrix.Address(3,1): ...". The sentinel (or *shape.OutOfBoundsError)
// stays reachable through errors.Is / errors.As.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// coordErrorf wraps err with a method tag and the coordinate.
func coordErrorf(method string, c shape.Coordinate, err error) error {
	return fmt.Errorf("Matrix.%s%v: %w", method, c, err)
}
