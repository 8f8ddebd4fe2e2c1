package space

import (
	"fmt"

	"github.com/rnlab/rnspace/backend"
)

// Field is the tag of the scalar field a space is defined over. Only the
// real numbers are implemented.
type Field int

// RealNumbers is the field of 64-bit reals.
const RealNumbers Field = iota

func (f Field) String() string {
	return "R"
}

// LinearSpace is the base capability set every space variant implements.
type LinearSpace interface {
	// N returns the dimension of the space.
	N() int
	// Field returns the scalar field tag of the space.
	Field() Field
	// Equals returns true if other is the same concrete capability set
	// with the same dimension.
	Equals(other LinearSpace) bool
	// Zero returns a freshly allocated, zero filled member of the space.
	Zero() *Vector
	// Empty returns a freshly allocated member of the space with
	// unspecified contents.
	Empty() *Vector
	// FromValues copies the given values into a fresh member of the space.
	FromValues(values ...float64) (*Vector, error)
	// LinComb computes z = a*x + b*y.
	LinComb(z *Vector, a float64, x *Vector, b float64, y *Vector) error
}

// Normed is the capability set of spaces that can measure vector length.
type Normed interface {
	LinearSpace
	// Norm returns the norm of x.
	Norm(x *Vector) (float64, error)
}

// InnerProduct is the capability set of spaces with a dot product and a
// pointwise multiplication.
type InnerProduct interface {
	Normed
	// Inner returns the inner product of x and y.
	Inner(x, y *Vector) (float64, error)
	// Multiply overwrites y with the pointwise product of x and y.
	Multiply(x, y *Vector) error
}

// RN is the real space R^n. It is stateless except for its dimension and the
// cached backend primitive handles, and is never mutated after construction.
type RN struct {
	n     int
	field Field
	impl  backend.Implementation
	// self points back to the concrete variant (RN, NormedRN or Euclidean)
	// so that vectors know which space actually owns them.
	self LinearSpace
}

// NewRN creates the real space of the given dimension on the default
// computational backend.
func NewRN(n int) (*RN, error) {
	return newRN(n, backend.Default())
}

func newRN(n int, impl backend.Implementation) (*RN, error) {
	if n < 1 {
		return nil, fmt.Errorf("dimension %d is not a positive integer: %w", n, ErrInvalidArgument)
	}
	s := &RN{
		n:     n,
		field: RealNumbers,
		impl:  impl,
	}
	s.self = s
	return s, nil
}

// N returns the dimension of the space.
func (s *RN) N() int {
	return s.n
}

// Field returns the scalar field tag of the space.
func (s *RN) Field() Field {
	return s.field
}

// Equals returns true if other is a plain RN of the same dimension.
func (s *RN) Equals(other LinearSpace) bool {
	o, ok := other.(*RN)
	return ok && o.n == s.n
}

func (s *RN) String() string {
	return fmt.Sprintf("RN(%d)", s.n)
}

func (s *RN) newVector(data []float64) *Vector {
	return &Vector{
		space: s.self,
		data:  data,
		vec:   s.impl.Wrap(s.n, data),
	}
}

// Zero returns a freshly allocated vector whose buffer is entirely zero
// filled. Every call returns a new, non aliased buffer.
func (s *RN) Zero() *Vector {
	return s.newVector(make([]float64, s.n))
}

// Empty returns a freshly allocated vector with unspecified buffer contents,
// possibly including non finite values. Callers must not assume any
// particular value: in particular Empty() scaled by zero need not be zero.
func (s *RN) Empty() *Vector {
	return s.newVector(make([]float64, s.n))
}

// Wrap adopts a caller provided buffer as a member of the space. The buffer
// is not copied, so the returned vector aliases data; wrapping the same
// buffer twice yields two handles over one buffer identity.
func (s *RN) Wrap(data []float64) (*Vector, error) {
	if len(data) != s.n {
		return nil, fmt.Errorf("got %d elements for %s: %w", len(data), s.self, ErrShapeMismatch)
	}
	return s.newVector(data), nil
}

// FromValues copies the given values into a fresh member of the space.
func (s *RN) FromValues(values ...float64) (*Vector, error) {
	if len(values) != s.n {
		return nil, fmt.Errorf("got %d elements for %s: %w", len(values), s.self, ErrShapeMismatch)
	}
	data := make([]float64, s.n)
	copy(data, values)
	return s.newVector(data), nil
}

// Convert builds a member of the space from an arbitrary array-like value,
// converting the elements to 64-bit reals.
func (s *RN) Convert(value interface{}) (*Vector, error) {
	var data []float64

	switch v := value.(type) {
	case []float64:
		data = append(data, v...)
	case []float32:
		data = make([]float64, 0, len(v))
		for _, e := range v {
			data = append(data, float64(e))
		}
	case []int:
		data = make([]float64, 0, len(v))
		for _, e := range v {
			data = append(data, float64(e))
		}
	case []int64:
		data = make([]float64, 0, len(v))
		for _, e := range v {
			data = append(data, float64(e))
		}
	default:
		return nil, fmt.Errorf("can not build a vector from %T: %w", value, ErrTypeMismatch)
	}

	if len(data) != s.n {
		return nil, fmt.Errorf("got %d elements for %s: %w", len(data), s.self, ErrShapeMismatch)
	}
	return s.newVector(data), nil
}

// contains tells if v can be used as an operand of this space.
func (s *RN) contains(v *Vector) bool {
	return v != nil && len(v.data) == s.n
}

func (s *RN) checkOperands(vs ...*Vector) error {
	for _, v := range vs {
		if !s.contains(v) {
			return fmt.Errorf("vector does not belong to %s: %w", s.self, ErrDimensionMismatch)
		}
	}
	return nil
}

var _ LinearSpace = (*RN)(nil)
