// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/shape"
)

var (
	sinkFloat  float64
	sinkMatrix *matrix.Matrix[float64]
)

const benchN = 256

func benchMatrix(b *testing.B) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.NewFunc(benchN, benchN, func(a matrix.Address) float64 {
		return float64(a.Row() - a.Col())
	})
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkAt measures reads through pre-validated addresses.
func BenchmarkAt(b *testing.B) {
	m := benchMatrix(b)
	addrs := make([]matrix.Address, 0, m.Size())
	for a := range m.Addresses() {
		addrs = append(addrs, a)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s float64
		for _, a := range addrs {
			s += m.At(a)
		}
		sinkFloat = s
	}
}

// BenchmarkGet measures the coordinate path, which validates on every call.
func BenchmarkGet(b *testing.B) {
	m := benchMatrix(b)
	c := shape.Coord(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c[0], c[1] = i%benchN, (i/benchN)%benchN
		v, err := m.Get(c)
		if err != nil {
			b.Fatal(err)
		}
		sinkFloat = v
	}
}

// BenchmarkAll measures full row-major iteration.
func BenchmarkAll(b *testing.B) {
	m := benchMatrix(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s float64
		for _, v := range m.All() {
			s += v
		}
		sinkFloat = s
	}
}

// BenchmarkTranspose measures the copying transpose.
func BenchmarkTranspose(b *testing.B) {
	m := benchMatrix(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMatrix = m.Transpose()
	}
}
