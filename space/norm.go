package space

import (
	"fmt"
	"math"

	"github.com/rnlab/rnspace/backend"
)

// NormedRN is the real space R^n equipped with a p-norm of fixed order.
//
// The order can be any real number, positive or negative infinity or zero.
// Note that any order < 1 only gives a pseudonorm:
//
//	+Inf   max(|x[0]|, ..., |x[n-1]|)
//	-Inf   min(|x[0]|, ..., |x[n-1]|)
//	0      number of nonzero elements
//	other  (|x[0]|^ord + ... + |x[n-1]|^ord)^(1/ord)
type NormedRN struct {
	*RN
	ord float64
}

// NewNormed creates a normed space of the given dimension with the default
// Euclidean order 2.
func NewNormed(n int) (*NormedRN, error) {
	return NewNormedWithOrder(n, 2)
}

// NewNormedWithOrder creates a normed space of the given dimension and norm
// order. It fails with ErrInvalidArgument if ord is not a real number or one
// of the infinities.
func NewNormedWithOrder(n int, ord float64) (*NormedRN, error) {
	if math.IsNaN(ord) {
		return nil, fmt.Errorf("norm order is not a number: %w", ErrInvalidArgument)
	}
	rn, err := newRN(n, backend.Default())
	if err != nil {
		return nil, err
	}
	s := &NormedRN{
		RN:  rn,
		ord: ord,
	}
	rn.self = s
	return s, nil
}

// Ord returns the norm order of the space.
func (s *NormedRN) Ord() float64 {
	return s.ord
}

// Equals returns true if other is a normed space of the same dimension.
func (s *NormedRN) Equals(other LinearSpace) bool {
	o, ok := other.(*NormedRN)
	return ok && o.n == s.n
}

func (s *NormedRN) String() string {
	return fmt.Sprintf("NormedRN(%d, ord=%g)", s.n, s.ord)
}

// Norm returns the p-norm of x for the order the space was built with.
func (s *NormedRN) Norm(x *Vector) (float64, error) {
	if err := s.checkOperands(x); err != nil {
		return 0, err
	}
	return s.pNorm(x), nil
}

func (s *NormedRN) pNorm(x *Vector) float64 {
	switch {
	case math.IsInf(s.ord, 1):
		max := 0.0
		for _, v := range x.data {
			if av := math.Abs(v); av > max {
				max = av
			}
		}
		return max
	case math.IsInf(s.ord, -1):
		min := math.Inf(1)
		for _, v := range x.data {
			if av := math.Abs(v); av < min {
				min = av
			}
		}
		return min
	case s.ord == 0:
		// pseudonorm: count of nonzero elements
		count := 0.0
		for _, v := range x.data {
			if v != 0 {
				count++
			}
		}
		return count
	case s.ord == 1:
		return s.impl.Asum(x.vec)
	case s.ord == 2:
		return s.impl.Nrm2(x.vec)
	default:
		sum := 0.0
		for _, v := range x.data {
			sum += math.Pow(math.Abs(v), s.ord)
		}
		return math.Pow(sum, 1/s.ord)
	}
}

var _ Normed = (*NormedRN)(nil)
