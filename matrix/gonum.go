// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.
//
// Purpose:
//   - Hand float64 matrices to gonum.org/v1/gonum/mat for numeric work
//     (products, decompositions) and bring results back, without this
//     module growing its own linear algebra.
//   - Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
// Element (row, col) keeps its place: gonum's Dense is row-major too.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}

	return mat.NewDense(m.r, m.c, slices.Clone(m.data)), nil
}

// FromGonum copies any gonum matrix (Dense, a transpose view, a
// symmetric or triangular matrix, ...) into a new Matrix[float64].
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrInvalidShape when g has a zero dimension.
//
// Complexity:
//   - Time O(r*c) calls to g.At, Space O(r*c).
func FromGonum(g mat.Matrix) (*Matrix[float64], error) {
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	if d, ok := g.(*mat.Dense); ok && d == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	m, err := NewFunc(rows, cols, func(a Address) float64 { return g.At(a.row, a.col) })
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	return m, nil
}
