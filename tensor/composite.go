// SPDX-License-Identifier: MIT

// Package tensor - Composite: a Matrix whose elements are tensors.
//
// Purpose:
//   - Reach arbitrary even rank by nesting: each level adds exactly two axes
//     through an outer *matrix.Matrix, and the nesting depth is encoded in
//     the Go type (Composite[T, *Composite[T, *matrix.Matrix[T]]] is rank 6).
//   - Keep the whole structure rectangular: every block shares one shape,
//     checked once at construction.
//
// Lookup path for Get/Set on a rank-N composite:
//
//	c = (r, k, i2, ..., iN-1)
//	    └──┬─┘ └─────┬──────┘
//	   outer Address   inner coordinate (delegated to the block)
//
// Complexity quicksheet:
//   - Compose/Stack: O(blocks) checks; Get/Set: O(N) validation + recursion
//     depth N/2; Shape: O(N) copy.

package tensor

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/shape"
)

// outerRank is the number of axes contributed by each composition level.
const outerRank = 2

const typComposite = "Composite"

// Composite is a rank-(2 + inner rank) tensor whose outer two axes select a
// block in a *matrix.Matrix[E] and whose remaining axes index into that
// block. Build it with Compose or Stack; the zero value is not usable.
//
// The composite owns its blocks: they must not be shared with other
// composites or mutated in shape (blocks have fixed shapes by construction,
// so element writes through a block are the only possible change, and they
// are visible through the composite).
//
// Concurrency: same rules as matrix.Matrix; no internal locking.
type Composite[T any, E Tensor[T]] struct {
	outer *matrix.Matrix[E] // blocks, exclusively owned
	inner shape.Shape       // shape shared by every block
	full  shape.Shape       // outer.Shape() ++ inner
}

// Compile-time assertions for the rank-4 instantiation.
var (
	_ Tensor[float64] = (*Composite[float64, *matrix.Matrix[float64]])(nil)
	_ Resolver        = (*Composite[float64, *matrix.Matrix[float64]])(nil)
)

// Compose wraps an outer matrix of blocks into a Composite.
// MAIN DESCRIPTION:
//   - One composition boundary: validates the blocks and derives the shape
//     outer.Shape() ++ inner.Shape().
//
// Implementation:
//   - Stage 1: gather options.
//   - Stage 2: ValidateRectangular (nil blocks, ragged shapes, declared shape).
//   - Stage 3: ValidateDistinct unless disabled (shared block instances).
//   - Stage 4: copy outer (shallow: the block pointers) and cache both shapes.
//
// Behavior highlights:
//   - Fails before any element access; on failure no Composite exists.
//   - The composite keeps its own copy of the block grid, so swapping a
//     block through outer afterwards does not reach it. The blocks are
//     shared: element writes through a block stay visible.
//
// Errors:
//   - ErrNilMatrix (outer nil), ErrNilTensor, ErrRaggedShape, ErrInvalidShape,
//     ErrAliased.
//
// Complexity:
//   - Time O(blocks * inner rank), Space O(blocks) for the alias check.
//
// AI-Hints:
//   - T cannot be inferred from E; write Compose[float64](outer).
func Compose[T any, E Tensor[T]](outer *matrix.Matrix[E], opts ...Option) (*Composite[T, E], error) {
	o := gatherOptions(opts...)
	inner, err := ValidateRectangular[T](outer, o.inner)
	if err != nil {
		return nil, tensorErrorf(ctxCompose, err)
	}
	if o.aliasCheck {
		if err = ValidateDistinct(outer); err != nil {
			return nil, tensorErrorf(ctxCompose, err)
		}
	}

	return &Composite[T, E]{
		outer: outer.Clone(),
		inner: inner,
		full:  outer.Shape().Concat(inner),
	}, nil
}

// Stack builds a Composite bottom-up: build is called once per outer Address
// in row-major order to produce that block (leaves first), then the blocks
// are wrapped and validated by Compose.
//
// Errors:
//   - ErrInvalidShape for bad outer extents.
//   - The first error returned by build, tagged with its Address.
//   - Everything Compose returns.
//
// Complexity: O(blocks) plus the cost of build.
func Stack[T any, E Tensor[T]](rows, cols int, build func(a matrix.Address) (E, error), opts ...Option) (*Composite[T, E], error) {
	var zero E
	outer, err := matrix.New(rows, cols, zero)
	if err != nil {
		return nil, tensorErrorf(ctxStack, err)
	}
	var block E
	for a := range outer.Addresses() {
		if block, err = build(a); err != nil {
			return nil, tensorErrorf(ctxStack, fmt.Errorf("block %v: %w", a, err))
		}
		outer.SetAt(a, block)
	}
	c, err := Compose[T](outer, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxStack, err)
	}

	return c, nil
}

// Shape returns outer ++ inner extents (a copy).
func (t *Composite[T, E]) Shape() shape.Shape { return t.full.Clone() }

// Rank returns 2 + the blocks' rank.
func (t *Composite[T, E]) Rank() int { return len(t.full) }

// Size returns the total number of leaf elements.
func (t *Composite[T, E]) Size() int { return t.full.Size() }

// OuterShape returns the (rows, cols) of the block grid.
func (t *Composite[T, E]) OuterShape() shape.Shape { return t.outer.Shape() }

// InnerShape returns the shape shared by every block (a copy).
func (t *Composite[T, E]) InnerShape() shape.Shape { return t.inner.Clone() }

// Block returns the nested tensor at outer position (row, col).
// Errors: *shape.OutOfBoundsError on axis 0 or 1.
func (t *Composite[T, E]) Block(row, col int) (E, error) {
	var zero E
	if t == nil {
		return zero, tensorErrorf(ctxBlock, ErrNilTensor)
	}
	a, err := t.outer.Address(row, col)
	if err != nil {
		return zero, tensorErrorf(ctxBlock, err)
	}

	return t.outer.At(a), nil
}

// Blocks returns a lazy, restartable row-major sequence of (outer Address,
// block) pairs.
func (t *Composite[T, E]) Blocks() iter.Seq2[matrix.Address, E] {
	return t.outer.All()
}

// walkBlocks visits every block at every nesting level, depth first.
func (t *Composite[T, E]) walkBlocks(visit func(path []matrix.Address, block any) bool) bool {
	return walkGrid(t.outer, nil, visit)
}

// Get returns the leaf element at the rank-N coordinate c.
// MAIN DESCRIPTION:
//   - Coordinate splitting + delegation to the block.
//
// Implementation:
//   - Stage 1: validate c against the full shape (all levels at once), so an
//     error names the caller's axis and no block is touched on failure.
//   - Stage 2: split c into the (row, col) prefix and the inner suffix.
//   - Stage 3: Address the block and delegate the suffix to block.Get.
//   - Stage 4: if the block still reports an axis error, shift it by 2 into
//     the caller's numbering.
//
// Errors:
//   - ErrRankMismatch (wrapped), *shape.OutOfBoundsError.
//   - ErrNilTensor on a nil receiver.
//
// Complexity:
//   - Time O(N) validation + O(N/2) delegation depth.
func (t *Composite[T, E]) Get(c shape.Coordinate) (T, error) {
	var zero T
	block, inner, err := t.split(ctxGet, c)
	if err != nil {
		return zero, err
	}
	v, err := block.Get(inner)
	if err != nil {
		return zero, coordErrorf(typComposite, ctxGet, c, shape.ShiftAxis(err, outerRank))
	}

	return v, nil
}

// Set stores v at the rank-N coordinate c and returns the previous value.
// The full coordinate is validated before the block is touched, so a failed
// Set mutates nothing.
func (t *Composite[T, E]) Set(c shape.Coordinate, v T) (T, error) {
	var zero T
	block, inner, err := t.split(ctxSet, c)
	if err != nil {
		return zero, err
	}
	old, err := block.Set(inner, v)
	if err != nil {
		return zero, coordErrorf(typComposite, ctxSet, c, shape.ShiftAxis(err, outerRank))
	}

	return old, nil
}

// Resolve returns the per-level Address path to the leaf at c, outermost
// first: one Address for this level followed by the block's own path.
//
// Errors:
//   - Same validation errors as Get.
//   - ErrNotResolvable when the block type does not implement Resolver.
func (t *Composite[T, E]) Resolve(c shape.Coordinate) ([]matrix.Address, error) {
	if t == nil {
		return nil, coordErrorf(typComposite, ctxResolve, c, ErrNilTensor)
	}
	if err := t.full.Check(c); err != nil {
		return nil, coordErrorf(typComposite, ctxResolve, c, err)
	}
	a, inner := t.address(c)
	r, ok := any(t.outer.At(a)).(Resolver)
	if !ok {
		return nil, coordErrorf(typComposite, ctxResolve, c, ErrNotResolvable)
	}
	rest, err := r.Resolve(inner)
	if err != nil {
		return nil, coordErrorf(typComposite, ctxResolve, c, shape.ShiftAxis(err, outerRank))
	}
	path := make([]matrix.Address, 0, 1+len(rest))
	path = append(path, a)

	return append(path, rest...), nil
}

// split validates c and returns the block it falls in plus the inner suffix.
func (t *Composite[T, E]) split(method string, c shape.Coordinate) (E, shape.Coordinate, error) {
	var zero E
	if t == nil {
		return zero, nil, coordErrorf(typComposite, method, c, ErrNilTensor)
	}
	if err := t.full.Check(c); err != nil {
		return zero, nil, coordErrorf(typComposite, method, c, err)
	}
	a, inner := t.address(c)

	return t.outer.At(a), inner, nil
}

// address splits an already validated c into the outer Address and suffix.
func (t *Composite[T, E]) address(c shape.Coordinate) (matrix.Address, shape.Coordinate) {
	prefix, inner := c.Split(outerRank)
	// Cannot fail: c passed t.full.Check and the outer shape is a prefix of full.
	a, err := t.outer.Address(prefix[0], prefix[1])
	if err != nil {
		panic(err)
	}

	return a, inner
}
