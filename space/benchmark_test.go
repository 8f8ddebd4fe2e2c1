package space

import (
	"math/rand"
	"testing"
	"time"
)

func linCombWithSize(b *testing.B, size int, a, bb float64) {
	s, err := NewRN(size)
	if err != nil {
		b.Fatal(err)
	}

	r := rand.New(rand.NewSource(time.Now().Unix()))
	x := s.Zero()
	y := s.Zero()
	z := s.Zero()
	for i := 0; i < size; i++ {
		x.Set(i, r.Float64())
		y.Set(i, r.Float64())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.LinComb(z, a, x, bb, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLinCombGeneral128(b *testing.B) {
	linCombWithSize(b, 128, 2.5, 3.5)
}

func BenchmarkLinCombGeneral1024(b *testing.B) {
	linCombWithSize(b, 1024, 2.5, 3.5)
}

func BenchmarkLinCombCopyAdd1024(b *testing.B) {
	linCombWithSize(b, 1024, 1, 3.5)
}

func BenchmarkLinCombZero1024(b *testing.B) {
	linCombWithSize(b, 1024, 0, 0)
}

func BenchmarkInner1024(b *testing.B) {
	s, err := NewEuclidean(1024)
	if err != nil {
		b.Fatal(err)
	}

	r := rand.New(rand.NewSource(time.Now().Unix()))
	x := s.Zero()
	y := s.Zero()
	for i := 0; i < 1024; i++ {
		x.Set(i, r.Float64())
		y.Set(i, r.Float64())
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Inner(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
