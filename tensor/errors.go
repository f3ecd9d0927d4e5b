// SPDX-License-Identifier: MIT
// Package tensor: error set.
// Shape-level sentinels are aliases of package shape (same values, so
// errors.Is matches across packages). Composition-specific sentinels follow.

package tensor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtensor/shape"
)

// Shared sentinels (aliases of package shape).
var (
	ErrInvalidShape  = shape.ErrInvalidShape
	ErrShapeMismatch = shape.ErrShapeMismatch
	ErrOutOfBounds   = shape.ErrOutOfBounds
	ErrRaggedShape   = shape.ErrRaggedShape
	ErrRankMismatch  = shape.ErrRankMismatch
)

var (
	// ErrNilTensor indicates a nil tensor argument or a nil nested tensor in
	// a composite's outer matrix.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrAliased indicates that one nested tensor instance occupies two cells
	// of a composite; nested tensors must be exclusively owned.
	ErrAliased = errors.New("tensor: nested tensor appears more than once")

	// ErrNotResolvable indicates that Resolve reached a nested tensor that
	// does not implement Resolver.
	ErrNotResolvable = errors.New("tensor: nested tensor does not implement Resolver")
)

const (
	panicInvalidInnerShape = "tensor: WithInnerShape: shape must be valid"
)

// ---------- error context tags ----------

const (
	ctxCompose = "Compose"
	ctxStack   = "Stack"
	ctxGet     = "Get"
	ctxSet     = "Set"
	ctxResolve = "Resolve"
	ctxBlock   = "Block"
	ctxNew     = "NewDense"
	ctxFrom    = "DenseFrom"
	ctxFill    = "Fill"
	ctxApply   = "Apply"
	ctxToDense = "ToDense"
	ctxMap     = "Map"
	ctxCollect = "Collect"
)

// tensorErrorf wraps err with a function tag: "tensor.Compose: ...".
func tensorErrorf(fn string, err error) error {
	return fmt.Errorf("tensor.%s: %w", fn, err)
}

// coordErrorf wraps err with a type/method tag and the coordinate:
// "Composite.Get(1, 0, 2, 1): ...".
func coordErrorf(typ, method string, c shape.Coordinate, err error) error {
	return fmt.Errorf("%s.%s%v: %w", typ, method, c, err)
}
