package space

// combPlan enumerates the primitive sequences the linear combination engine
// can issue. The plan is decided before any buffer is touched, so a write can
// never corrupt a value still needed by a later read of the same call.
type combPlan int

const (
	// x aliases y with b != 0: collapse to z = (a+b)*x and decide again.
	combCollapse combPlan = iota
	// z, x and y are all the same buffer: z = (a+b)*z in place.
	combScaleInPlace
	// z aliases x only: z = a*z + b*y.
	combAccumulateX
	// z aliases y only: z = a*x + b*z.
	combAccumulateY
	// no aliasing, a == 0 and b == 0: zero fill z without reading x or y.
	combZeroFill
	// no aliasing, b == 0: z = a*x.
	combCopyX
	// no aliasing, a == 0: z = b*y.
	combCopyY
	// no aliasing, a == 1: z = x + b*y.
	combCopyXAddY
	// no aliasing, general scalars: z = b*y, then z += a*x.
	combCopyYAddX
)

// combDecide picks the minimal primitive sequence for z = a*x + b*y given
// the aliasing relationship among the three buffer identities and the scalar
// values. Aliasing is resolved first since it changes which buffer may
// legally be read after a write, then scalar checks drop no-op primitives.
func combDecide(aliasZX, aliasZY, aliasXY bool, a, b float64) combPlan {
	switch {
	case aliasXY && b != 0:
		return combCollapse
	case aliasZX && aliasZY:
		return combScaleInPlace
	case aliasZX:
		return combAccumulateX
	case aliasZY:
		return combAccumulateY
	case a == 0 && b == 0:
		return combZeroFill
	case b == 0:
		return combCopyX
	case a == 0:
		return combCopyY
	case a == 1:
		return combCopyXAddY
	default:
		return combCopyYAddX
	}
}

// LinComb computes the linear combination z = a*x + b*y and writes it into
// z's buffer. The operands may alias one another pairwise or all three; the
// engine detects buffer identity and issues at most two vectorized primitive
// calls, never multiplying by one or zero when the result does not require
// it.
//
// It fails with ErrDimensionMismatch, before any primitive is invoked, if
// z, x or y do not have the dimension of this space. Side effects are
// confined to z's buffer (and to whatever buffer z shares with x and/or y).
func (s *RN) LinComb(z *Vector, a float64, x *Vector, b float64, y *Vector) error {
	if err := s.checkOperands(z, x, y); err != nil {
		return err
	}
	s.linComb(z, a, x, b, y)
	return nil
}

func (s *RN) linComb(z *Vector, a float64, x *Vector, b float64, y *Vector) {
	switch combDecide(z.Is(x), z.Is(y), x.Is(y), a, b) {
	case combCollapse:
		// a*x + b*x = (a+b)*x
		s.linComb(z, a+b, x, 0, x)
	case combScaleInPlace:
		s.impl.Scal(a+b, z.vec)
	case combAccumulateX:
		if a != 1 {
			s.impl.Scal(a, z.vec)
		}
		if b != 0 {
			s.impl.Axpy(b, y.vec, z.vec)
		}
	case combAccumulateY:
		if b != 1 {
			s.impl.Scal(b, z.vec)
		}
		if a != 0 {
			s.impl.Axpy(a, x.vec, z.vec)
		}
	case combZeroFill:
		for i := range z.data {
			z.data[i] = 0
		}
	case combCopyX:
		s.impl.Copy(x.vec, z.vec)
		if a != 1 {
			s.impl.Scal(a, z.vec)
		}
	case combCopyY:
		s.impl.Copy(y.vec, z.vec)
		if b != 1 {
			s.impl.Scal(b, z.vec)
		}
	case combCopyXAddY:
		s.impl.Copy(x.vec, z.vec)
		s.impl.Axpy(b, y.vec, z.vec)
	case combCopyYAddX:
		s.impl.Copy(y.vec, z.vec)
		if b != 1 {
			s.impl.Scal(b, z.vec)
		}
		s.impl.Axpy(a, x.vec, z.vec)
	}
}
