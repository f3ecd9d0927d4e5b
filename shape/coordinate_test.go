// Package shape_test contains unit tests for Coordinate helpers and the
// package validators.
package shape_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvtensor/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoordinateInBounds mirrors Shape.Check in boolean form.
func TestCoordinateInBounds(t *testing.T) {
	t.Parallel()

	s := shape.Of(2, 3)
	tests := []struct {
		name string
		c    shape.Coordinate
		want bool
	}{
		{"origin", shape.Coord(0, 0), true},
		{"last", shape.Coord(1, 2), true},
		{"row too big", shape.Coord(2, 0), false},
		{"col too big", shape.Coord(0, 3), false},
		{"negative", shape.Coord(0, -1), false},
		{"rank too small", shape.Coord(0), false},
		{"rank too big", shape.Coord(0, 0, 0), false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.c.InBounds(s))
			assert.Equal(t, tc.want, s.Contains(tc.c))
		})
	}
}

// TestCoordinateSplit checks prefix/suffix extraction and clamping.
func TestCoordinateSplit(t *testing.T) {
	t.Parallel()

	c := shape.Coord(1, 0, 2, 1)
	outer, inner := c.Split(2)
	assert.Equal(t, shape.Coord(1, 0), outer)
	assert.Equal(t, shape.Coord(2, 1), inner)

	// Results are copies.
	inner[0] = 99
	assert.Equal(t, 2, c[2])

	all, none := c.Split(10)
	assert.Equal(t, c, all)
	assert.Empty(t, none)

	none, all = c.Split(-3)
	assert.Empty(t, none)
	assert.Equal(t, c, all)
}

// TestCoordinateCompare verifies row-major ordering.
func TestCoordinateCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, shape.Coord(0, 5).Compare(shape.Coord(1, 0)))
	assert.Equal(t, 1, shape.Coord(1, 1).Compare(shape.Coord(1, 0)))
	assert.Equal(t, 0, shape.Coord(1, 1).Compare(shape.Coord(1, 1)))
	assert.Equal(t, -1, shape.Coord(1).Compare(shape.Coord(1, 0)))
	assert.Equal(t, 1, shape.Coord(1, 0).Compare(shape.Coord(1)))

	// Sorting by Compare reproduces Coordinates() order.
	s := shape.Of(3, 2)
	want := slices.Collect(s.Coordinates())
	got := slices.Clone(want)
	slices.Reverse(got)
	slices.SortFunc(got, shape.Coordinate.Compare)
	assert.Equal(t, want, got)
}

// TestCoordinateArithmetic covers Add/Sub/Diff/Scale/Distance.
func TestCoordinateArithmetic(t *testing.T) {
	t.Parallel()

	a, b := shape.Coord(3, -4), shape.Coord(1, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, shape.Coord(4, -2), sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, shape.Coord(2, -6), diff)

	back, err := diff.Add(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a), "(a-b)+b must equal a")

	abs, err := a.Diff(b)
	require.NoError(t, err)
	assert.Equal(t, shape.Coord(2, 6), abs)

	assert.Equal(t, shape.Coord(6, -8), a.Scale(2))

	d, err := shape.Coord(0, 0).Distance(shape.Coord(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	// Operands are never modified.
	assert.Equal(t, shape.Coord(3, -4), a)

	_, err = a.Add(shape.Coord(1))
	require.ErrorIs(t, err, shape.ErrRankMismatch)
	_, err = a.Sub(shape.Coord(1, 2, 3))
	require.ErrorIs(t, err, shape.ErrRankMismatch)
	_, err = a.Diff(shape.Coord())
	require.ErrorIs(t, err, shape.ErrRankMismatch)
	_, err = a.Distance(shape.Coord(1))
	require.ErrorIs(t, err, shape.ErrRankMismatch)
}

// TestCoordinateString pins the text form.
func TestCoordinateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1, 0, 2)", shape.Coord(1, 0, 2).String())
	assert.Equal(t, "()", shape.Coord().String())
}

// TestValidators covers the shared construction-time checks.
func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, shape.ValidateExtents(2, 2))
	require.ErrorIs(t, shape.ValidateExtents(0, 2), shape.ErrInvalidShape)
	require.ErrorIs(t, shape.ValidateExtents(), shape.ErrInvalidShape)

	require.NoError(t, shape.ValidateDataLen(shape.Of(2, 2), 4))
	err := shape.ValidateDataLen(shape.Of(2, 2), 3)
	require.ErrorIs(t, err, shape.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "got 3 elements")
	require.ErrorIs(t, shape.ValidateDataLen(shape.Of(2, -2), 4), shape.ErrInvalidShape)

	require.NoError(t, shape.ValidateUniform(shape.Of(3, 3), shape.Of(3, 3)))
	require.ErrorIs(t, shape.ValidateUniform(shape.Of(3, 3), shape.Of(3, 2)), shape.ErrRaggedShape)
	require.ErrorIs(t, shape.ValidateUniform(shape.Of(3, 3), shape.Of(3, 3, 1)), shape.ErrRaggedShape)
}
