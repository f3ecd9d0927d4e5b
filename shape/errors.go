// SPDX-License-Identifier: MIT
// Package shape: sentinel error set (unified, consistent).
// This file defines the package-level sentinels used across shape, matrix and
// tensor. Callers MUST match them via errors.Is (or errors.As for
// *OutOfBoundsError). No exported function panics on user-triggered error
// conditions; panics are reserved for programmer errors.

package shape

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "shape: ..." so it is easy to grep. The
// matrix and tensor packages re-export these values as aliases; they are the
// same sentinels, so errors.Is works regardless of which name is used.

var (
	// ErrInvalidShape is returned when a requested shape is invalid: rank 0,
	// an extent <= 0, or an element count that overflows int.
	ErrInvalidShape = errors.New("shape: invalid shape")

	// ErrShapeMismatch indicates that flat data length disagrees with the
	// declared extents (e.g. 3 values supplied for a 2×2 matrix).
	ErrShapeMismatch = errors.New("shape: data length does not match shape")

	// ErrOutOfBounds indicates that a coordinate axis falls outside the valid
	// range of its container. The concrete error is *OutOfBoundsError.
	ErrOutOfBounds = errors.New("shape: coordinate out of bounds")

	// ErrRaggedShape indicates that the nested tensors of a composite do not
	// share one shape (jagged structure).
	ErrRaggedShape = errors.New("shape: nested tensors disagree in shape")

	// ErrRankMismatch indicates that a coordinate (or operand) has a different
	// number of axes than the shape it is presented to.
	ErrRankMismatch = errors.New("shape: rank mismatch")
)

// OutOfBoundsError reports a single offending axis. Errors for different axes
// are never merged: validation stops at the first (lowest) offending axis.
type OutOfBoundsError struct {
	Axis   int // axis number in the caller's numbering
	Index  int // the rejected index on that axis
	Extent int // valid range is [0, Extent)
}

// Error implements error.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("shape: axis %d: index %d out of range [0, %d)", e.Axis, e.Index, e.Extent)
}

// Is makes errors.Is(err, ErrOutOfBounds) true for every *OutOfBoundsError.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ShiftAxis returns err with the axis of its *OutOfBoundsError moved by n.
// Composites use it to translate an inner tensor's axis numbering into the
// caller's numbering. Errors that carry no *OutOfBoundsError are returned
// unchanged.
func ShiftAxis(err error, n int) error {
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		return err
	}

	return &OutOfBoundsError{Axis: oob.Axis + n, Index: oob.Index, Extent: oob.Extent}
}

// shapeErrorf wraps err with the method tag, e.g. "Shape.Offset: ...".
func shapeErrorf(method string, err error) error {
	return fmt.Errorf("Shape.%s: %w", method, err)
}

// rankErrorf reports a rank disagreement with both ranks in the message.
func rankErrorf(method string, got, want int) error {
	return fmt.Errorf("%s: rank %d, want %d: %w", method, got, want, ErrRankMismatch)
}
