// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical guards for callers composing matrices (tensor package,
//    user code) so nil/shape checks are not re-implemented ad hoc.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/shape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal (rows, cols).
// The element types may differ: an Address from a is valid for b exactly
// when this returns nil.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape[T, U any](a *Matrix[T], b *Matrix[U]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%v vs %v: %w", a.Shape(), b.Shape(), shape.ErrShapeMismatch))
	}

	return nil
}

// ValidateAddress – Ensures a was validated for m's shape, i.e. At/SetAt
// will not panic. Use it when an Address crosses an API boundary.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ValidateAddress[T any](m *Matrix[T], a Address) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAddress", err)
	}
	if !a.ValidFor(m.Shape()) {
		return validatorErrorf("ValidateAddress",
			fmt.Errorf("address %v validated for %v, matrix is %v: %w", a, a.Shape(), m.Shape(), shape.ErrShapeMismatch))
	}

	return nil
}
