// Package matrix_test contains unit tests for the exported guards.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers nil and non-nil matrices.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustFlat(t, 1, 1, []int{0})))
}

// TestValidateSameShape allows differing element types but not shapes.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := mustFlat(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFlat(t, 2, 2, []string{"a", "b", "c", "d"})
	c := mustFlat(t, 2, 1, []int{1, 2})

	require.NoError(t, matrix.ValidateSameShape(a, b))
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape[int, int](a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameShape[int, string](nil, b), matrix.ErrNilMatrix)
}

// TestValidateAddress reports foreign and zero addresses instead of panicking.
func TestValidateAddress(t *testing.T) {
	t.Parallel()

	a := mustFlat(t, 2, 2, []int{1, 2, 3, 4})
	c := mustFlat(t, 2, 3, []int{1, 2, 3, 4, 5, 6})

	addr := mustAddr(t, a, 1, 0)
	require.NoError(t, matrix.ValidateAddress(a, addr))
	require.ErrorIs(t, matrix.ValidateAddress(c, addr), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateAddress(a, matrix.Address{}), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateAddress[int](nil, addr), matrix.ErrNilMatrix)
}
