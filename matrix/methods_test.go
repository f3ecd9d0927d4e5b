// Package matrix_test contains unit tests for iteration and whole-matrix
// operations (Transpose, Clone, Resize, Apply, Map, Equal).
package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFlat builds a matrix from row-major data or fails the test.
func mustFlat[T any](t testing.TB, rows, cols int, data []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromFlat(rows, cols, data)
	require.NoError(t, err)

	return m
}

// mustAddr validates (r,c) against m or fails the test.
func mustAddr[T any](t testing.TB, m *matrix.Matrix[T], r, c int) matrix.Address {
	t.Helper()
	a, err := m.Address(r, c)
	require.NoError(t, err)

	return a
}

// TestAllRowMajorOrder: New(2,3,0) yields (0,0),(0,1),(0,2),(1,0),(1,1),(1,2).
func TestAllRowMajorOrder(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(2, 3, 0)
	require.NoError(t, err)

	want := []string{"(0, 0)", "(0, 1)", "(0, 2)", "(1, 0)", "(1, 1)", "(1, 2)"}
	collect := func() []string {
		var got []string
		for a := range m.Addresses() {
			got = append(got, a.String())
		}
		return got
	}
	require.Equal(t, want, collect())
	require.Equal(t, want, collect(), "iteration must be restartable")

	n := 0
	for range m.All() {
		n++
	}
	assert.Equal(t, m.Rows()*m.Cols(), n)
}

// TestAllValuesAndEarlyStop checks pairs carry the stored values and break works.
func TestAllValuesAndEarlyStop(t *testing.T) {
	t.Parallel()

	m := mustFlat(t, 2, 2, []int{1, 2, 3, 4})
	var vals []int
	for a, v := range m.All() {
		require.Equal(t, m.At(a), v)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, vals)

	seen := 0
	m.Do(func(matrix.Address, int) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

// TestTranspose: transpose.At(c,r) == m.At(r,c) for all valid (r,c).
func TestTranspose(t *testing.T) {
	t.Parallel()

	m := mustFlat(t, 2, 3, []int{1, 2, 3, 4, 5, 6})
	tr := m.Transpose()

	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	for a, v := range m.All() {
		require.Equal(t, v, tr.At(mustAddr(t, tr, a.Col(), a.Row())))
	}
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Data(), "receiver must not change")
	assert.True(t, matrix.Equal(m, tr.Transpose()))
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := mustFlat(t, 2, 2, []float64{1, 0, 0, 2})
	clone := m.Clone()

	a := mustAddr(t, clone, 0, 0)
	clone.SetAt(a, 3.0)

	assert.Equal(t, 1.0, m.At(a))
	assert.Equal(t, 3.0, clone.At(a))
}

// TestResize covers grow, shrink and invalid extents.
func TestResize(t *testing.T) {
	t.Parallel()

	m := mustFlat(t, 2, 2, []int{1, 2, 3, 4})

	grown, err := m.Resize(3, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3, 4, 0, 0, 0, 0}, grown.Data())

	shrunk, err := m.Resize(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, shrunk.Data())

	_, err = m.Resize(0, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	assert.Equal(t, []int{1, 2, 3, 4}, m.Data(), "Resize returns a new matrix")
}

// TestApplyAndMap covers in-place and type-changing transforms.
func TestApplyAndMap(t *testing.T) {
	t.Parallel()

	m := mustFlat(t, 2, 2, []int{1, 2, 3, 4})

	strs := matrix.Map(m, func(a matrix.Address, v int) string {
		return strconv.Itoa(v) + "@" + a.String()
	})
	assert.Equal(t, "1@(0, 0)", strs.At(mustAddr(t, strs, 0, 0)))
	assert.Equal(t, "4@(1, 1)", strs.At(mustAddr(t, strs, 1, 1)))

	m.Apply(func(_ matrix.Address, v int) int { return v * -2 })
	assert.Equal(t, []int{-2, -4, -6, -8}, m.Data())

	mapped := matrix.Map(m, func(_ matrix.Address, v int) int { return v / -2 })
	assert.Equal(t, []int{1, 2, 3, 4}, mapped.Data())
}

// TestEqual covers shape and value differences plus nil handling.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustFlat(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFlat(t, 2, 2, []int{1, 2, 3, 4})
	c := mustFlat(t, 1, 4, []int{1, 2, 3, 4})
	d := mustFlat(t, 2, 2, []int{1, 2, 3, 5})

	assert.True(t, matrix.Equal(a, b))
	assert.False(t, matrix.Equal(a, c))
	assert.False(t, matrix.Equal(a, d))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal[int](nil, nil))

	near := matrix.EqualFunc(a, d, func(x, y int) bool { return x-y <= 1 && y-x <= 1 })
	assert.True(t, near)
}
