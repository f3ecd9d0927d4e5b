// Package lvtensor is a small, safe foundation for N-dimensional arrays in
// pure Go, built by composing one primitive: a generic row-major matrix.
//
// What is in the box?
//
//	A small data model that higher-level numeric code consumes:
//		• shape/  - Shape, Coordinate, row-major offsets, sentinel errors
//		• matrix/ - Matrix[T] with proof-carrying Address and checked access
//		• tensor/ - Tensor[T] capability interface, Composite (matrix of
//		            tensors), Dense (any rank), generic helpers
//
// Guarantees:
//
//   - Every public indexing path is bounds-checked; no unsafe code.
//   - Construction is all-or-nothing: a container either exists fully formed
//     or the constructor returns an error.
//   - Errors are values: match sentinels with errors.Is and read the
//     offending axis with errors.As(*shape.OutOfBoundsError).
//   - No locks: concurrent readers are fine, writers need exclusive access.
//
// Quick ASCII picture of a rank-4 composite (outer 2×2, inner 3×3):
//
//	┌───────┬───────┐
//	│ 3×3   │ 3×3   │   coordinate (1, 0, 2, 1):
//	├───────┼───────┤     outer Address (1, 0) → block
//	│ 3×3 ◆ │ 3×3   │     inner Address (2, 1) → element ◆
//	└───────┴───────┘
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor
