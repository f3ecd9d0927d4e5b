// Package tensor offers the N-dimensional view of lvtensor containers.
//
// The tensor package provides:
//
//   - Tensor[T], the capability interface (Shape, Rank, Size, Get, Set) that
//     any container implements to be treated as an N-dimensional array.
//     *matrix.Matrix[T] implements it as a rank-2 tensor.
//   - Composite[T, E], a matrix whose elements are rank-k tensors, giving a
//     rank-(k+2) tensor.
//   - Compose and Stack, which build composites bottom-up and reject ragged
//     (ErrRaggedShape), nil (ErrNilTensor) or shared (ErrAliased) blocks
//     before any element is accessed.
//   - Resolver, which turns a flat N-axis Coordinate into the Address to use
//     at each nesting level.
//   - Dense[T], a flat row-major tensor of any rank, for shapes composition
//     cannot express (odd ranks).
//   - Generic helpers over any Tensor: All, Collect, Fill, Apply, Map,
//     ToDense, Equal.
//
// Nesting is encoded in the type:
//
//	Composite[float64, *matrix.Matrix[float64]]                     // rank 4
//	Composite[float64, *Composite[float64, *matrix.Matrix[float64]]] // rank 6
//
// Example (rank 4: a 2×2 grid of 3×3 blocks):
//
//	c, err := tensor.Stack[float64](2, 2, func(matrix.Address) (*matrix.Matrix[float64], error) {
//		return matrix.New(3, 3, 0.0)
//	})
//	_, err = c.Set(shape.Coord(1, 0, 2, 1), 7)
//	v, err := c.Get(shape.Coord(1, 0, 2, 1)) // 7
//
// Every Get/Set validates the whole coordinate first and fails atomically
// with *shape.OutOfBoundsError naming the caller's axis.
//
// No type in this package locks. Share a tensor between goroutines only for
// reading, or guard writers externally.
package tensor
