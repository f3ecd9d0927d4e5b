// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//  - Provide a single, canonical source of truth for construction-time checks
//    shared by matrix and tensor.
//  - Keep constructors minimal by delegating shape/length/uniformity checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each validator tags its error with its own name; callers add their own
//    call-site tag on top, so messages read outermost-first.

package shape

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateExtents – Ensures every extent is > 0 and the element count fits in int.
//
// Returns: nil or wrapped ErrInvalidShape.
// Complexity: O(len(extents)).
func ValidateExtents(extents ...int) error {
	if err := Shape(extents).Validate(); err != nil {
		return validatorErrorf("ValidateExtents", err)
	}

	return nil
}

// ValidateDataLen – Ensures a flat buffer of length n can back shape s.
//
// Implementation: validates s first, then compares n with s.Size().
// Errors: ErrInvalidShape, ErrShapeMismatch.
// Complexity: O(rank).
func ValidateDataLen(s Shape, n int) error {
	if err := s.Validate(); err != nil {
		return validatorErrorf("ValidateDataLen", err)
	}
	if want := s.Size(); n != want {
		return validatorErrorf("ValidateDataLen",
			fmt.Errorf("got %d elements, shape %v needs %d: %w", n, s, want, ErrShapeMismatch))
	}

	return nil
}

// ValidateUniform – Ensures got has exactly the reference shape want.
// Used at every composition boundary to reject jagged structures.
//
// Errors: ErrRaggedShape.
// Complexity: O(rank).
func ValidateUniform(want, got Shape) error {
	if !want.Equal(got) {
		return validatorErrorf("ValidateUniform",
			fmt.Errorf("shape %v differs from %v: %w", got, want, ErrRaggedShape))
	}

	return nil
}
