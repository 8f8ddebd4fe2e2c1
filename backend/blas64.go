package backend

import (
	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/blas/blas64"
)

type blas struct {
}

type blasWrap struct {
	v blas64.Vector
}

func (impl blas) Name() string {
	return "blas64"
}

func (impl blas) Space() uint64 {
	return memory.TotalMemory()
}

func (impl blas) Wrap(size int, data []float64) Vector {
	return blasWrap{
		v: blas64.Vector{
			N:    size,
			Inc:  1,
			Data: data,
		},
	}
}

func (impl blas) Scal(a float64, x Vector) {
	blas64.Scal(a, x.(blasWrap).v)
}

func (impl blas) Axpy(a float64, x, y Vector) {
	blas64.Axpy(a, x.(blasWrap).v, y.(blasWrap).v)
}

func (impl blas) Copy(src, dst Vector) {
	blas64.Copy(src.(blasWrap).v, dst.(blasWrap).v)
}

func (impl blas) Dot(a, b Vector) float64 {
	return blas64.Dot(a.(blasWrap).v, b.(blasWrap).v)
}

func (impl blas) Nrm2(a Vector) float64 {
	return blas64.Nrm2(a.(blasWrap).v)
}

func (impl blas) Asum(a Vector) float64 {
	return blas64.Asum(a.(blasWrap).v)
}
