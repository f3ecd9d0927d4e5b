// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Canonical composition-boundary checks: nil blocks, rectangularity,
//    exclusive ownership of nested tensors.
//  - Compose runs them in a fixed sequence: NotNil(outer) → per block
//    NotNil → Uniform → Distinct. The first failure wins and nothing is built.

package tensor

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/shape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures t is neither a nil interface nor a typed nil
// (e.g. a (*matrix.Matrix[T])(nil) stored in an interface).
// Returns ErrNilTensor. Complexity: O(1).
func ValidateNotNil[T any](t Tensor[T]) error {
	if isNil(t) {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateRectangular – Ensures every block of outer is non-nil and has the
// same shape, and returns that inner shape.
//
// Implementation:
//   - Stage 1: reference shape = declared (if non-nil) else block (0,0)'s.
//   - Stage 2: the reference must itself be a valid shape (ErrInvalidShape).
//   - Stage 3: row-major scan; first nil block → ErrNilTensor, first
//     differing block → ErrRaggedShape, both tagged with the block Address.
//
// Complexity: O(blocks * inner rank).
func ValidateRectangular[T any, E Tensor[T]](outer *matrix.Matrix[E], declared shape.Shape) (shape.Shape, error) {
	if err := matrix.ValidateNotNil(outer); err != nil {
		return nil, validatorErrorf("ValidateRectangular", err)
	}
	ref := declared
	var err error
	if ref != nil {
		if err = ref.Validate(); err != nil {
			return nil, validatorErrorf("ValidateRectangular", err)
		}
	}
	for a, block := range outer.All() {
		if isNil(block) {
			return nil, validatorErrorf("ValidateRectangular",
				fmt.Errorf("block %v: %w", a, ErrNilTensor))
		}
		got := block.Shape()
		if ref == nil {
			ref = got
			if err = ref.Validate(); err != nil {
				return nil, validatorErrorf("ValidateRectangular", fmt.Errorf("block %v: %w", a, err))
			}
			continue
		}
		if err = shape.ValidateUniform(ref, got); err != nil {
			return nil, validatorErrorf("ValidateRectangular", fmt.Errorf("block %v: %w", a, err))
		}
	}

	return ref.Clone(), nil
}

// ValidateDistinct – Ensures no tensor instance occupies two cells, at any
// nesting level: the blocks of outer and, recursively, the blocks of every
// nested Composite. Only pointer blocks (every container in this module) can
// alias; value blocks are independent copies and are skipped.
//
// Errors: ErrAliased tagged with both block paths, e.g. "(0, 0)/(1, 1)".
// Complexity: O(total blocks) time and space.
func ValidateDistinct[E any](outer *matrix.Matrix[E]) error {
	if err := matrix.ValidateNotNil(outer); err != nil {
		return validatorErrorf("ValidateDistinct", err)
	}
	seen := make(map[any][]matrix.Address, outer.Size())
	var err error
	walkGrid(outer, nil, func(path []matrix.Address, block any) bool {
		if isNil(block) || reflect.ValueOf(block).Kind() != reflect.Pointer {
			return true
		}
		if first, dup := seen[block]; dup {
			err = fmt.Errorf("blocks %s and %s: %w", blockPath(first), blockPath(path), ErrAliased)
			return false
		}
		seen[block] = path

		return true
	})
	if err != nil {
		return validatorErrorf("ValidateDistinct", err)
	}

	return nil
}

// blockWalker is implemented by containers whose blocks are tensors
// themselves (Composite), so nested blocks can be visited.
type blockWalker interface {
	walkBlocks(visit func(path []matrix.Address, block any) bool) bool
}

// walkGrid visits each block of grid in row-major order and descends into
// nested composites. Each path is a fresh slice. Returns false once visit
// has asked to stop.
func walkGrid[E any](grid *matrix.Matrix[E], prefix []matrix.Address, visit func(path []matrix.Address, block any) bool) bool {
	for a, block := range grid.All() {
		path := append(slices.Clone(prefix), a)
		if !visit(path, block) {
			return false
		}
		w, ok := any(block).(blockWalker)
		if !ok || isNil(block) {
			continue
		}
		if !w.walkBlocks(func(sub []matrix.Address, nested any) bool {
			return visit(append(slices.Clone(path), sub...), nested)
		}) {
			return false
		}
	}

	return true
}

// blockPath renders a block path as "(0, 1)/(1, 0)".
func blockPath(path []matrix.Address) string {
	parts := make([]string, len(path))
	for i, a := range path {
		parts[i] = a.String()
	}

	return strings.Join(parts, "/")
}

// isNil reports a nil interface or a nil pointer/map/slice/func/chan/interface
// dynamic value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
