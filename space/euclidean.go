package space

import (
	"fmt"

	"github.com/rnlab/rnspace/backend"
	"gonum.org/v1/gonum/floats"
)

// Euclidean is the real space R^n with the usual inner product, the 2-norm
// and a pointwise multiplication.
type Euclidean struct {
	*RN
}

// NewEuclidean creates a Euclidean space of the given dimension.
func NewEuclidean(n int) (*Euclidean, error) {
	rn, err := newRN(n, backend.Default())
	if err != nil {
		return nil, err
	}
	s := &Euclidean{RN: rn}
	rn.self = s
	return s, nil
}

// Equals returns true if other is a Euclidean space of the same dimension.
func (s *Euclidean) Equals(other LinearSpace) bool {
	o, ok := other.(*Euclidean)
	return ok && o.n == s.n
}

func (s *Euclidean) String() string {
	return fmt.Sprintf("Euclidean(%d)", s.n)
}

// Inner returns the inner product x[0]*y[0] + ... + x[n-1]*y[n-1], computed
// via the backend dot primitive. It is symmetric up to the floating point
// rounding of the summation order.
func (s *Euclidean) Inner(x, y *Vector) (float64, error) {
	if err := s.checkOperands(x, y); err != nil {
		return 0, err
	}
	return s.impl.Dot(x.vec, y.vec), nil
}

// Norm returns the Euclidean norm sqrt(Inner(x, x)), computed via the
// dedicated 2-norm primitive for better numerical stability than squaring
// and summing manually.
func (s *Euclidean) Norm(x *Vector) (float64, error) {
	if err := s.checkOperands(x); err != nil {
		return 0, err
	}
	return s.impl.Nrm2(x.vec), nil
}

// Multiply overwrites y's buffer in place with the pointwise product
// [x[0]*y[0], ..., x[n-1]*y[n-1]]. Only y is mutated; x aliasing y is legal
// and squares y element-wise.
func (s *Euclidean) Multiply(x, y *Vector) error {
	if err := s.checkOperands(x, y); err != nil {
		return err
	}
	floats.Mul(y.data, x.data)
	return nil
}

var _ InnerProduct = (*Euclidean)(nil)
