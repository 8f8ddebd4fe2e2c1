package backend

import (
	"math"
	"runtime"

	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Used() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

func (impl naive) Wrap(size int, data []float64) Vector {
	return data
}

func (impl naive) Scal(a float64, x Vector) {
	xs := x.([]float64)
	for i := range xs {
		xs[i] *= a
	}
}

func (impl naive) Axpy(a float64, x, y Vector) {
	ys := y.([]float64)
	for i, vx := range x.([]float64) {
		ys[i] += a * vx
	}
}

func (impl naive) Copy(src, dst Vector) {
	copy(dst.([]float64), src.([]float64))
}

func (impl naive) Dot(a, b Vector) float64 {
	dot := 0.0
	bs := b.([]float64)
	for i, va := range a.([]float64) {
		dot += va * bs[i]
	}
	return dot
}

func (impl naive) Nrm2(a Vector) float64 {
	return math.Sqrt(impl.Dot(a, a))
}

func (impl naive) Asum(a Vector) float64 {
	sum := 0.0
	for _, va := range a.([]float64) {
		sum += math.Abs(va)
	}
	return sum
}
