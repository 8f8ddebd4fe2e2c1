// Package operator defines the generic capability set that space backed
// operators implement: apply, compose, adjoint and inverse. Pipelines built
// on top of the vector spaces (ray transforms, filters, back projection glue)
// only consume this interface, the package itself ships the elementary
// operators.
package operator

import (
	"errors"
	"fmt"

	"github.com/rnlab/rnspace/space"
)

var (
	// ErrSpaceMismatch is returned when operators or operands live in
	// incompatible spaces.
	ErrSpaceMismatch = errors.New("operator spaces do not match")
	// ErrNotInvertible is returned when an operator has no inverse.
	ErrNotInvertible = errors.New("operator is not invertible")
)

// Operator maps vectors of its domain into vectors of its range.
type Operator interface {
	Domain() space.LinearSpace
	Range() space.LinearSpace
	// Apply evaluates the operator on x and writes the result into out.
	Apply(x, out *space.Vector) error
}

// Adjointable is implemented by operators that expose their adjoint.
type Adjointable interface {
	Operator
	Adjoint() Operator
}

// Invertible is implemented by operators that expose their inverse.
type Invertible interface {
	Operator
	Inverse() (Operator, error)
}

func checkApply(op Operator, x, out *space.Vector) error {
	if x == nil || x.Len() != op.Domain().N() {
		return fmt.Errorf("input does not belong to %v: %w", op.Domain(), ErrSpaceMismatch)
	}
	if out == nil || out.Len() != op.Range().N() {
		return fmt.Errorf("output does not belong to %v: %w", op.Range(), ErrSpaceMismatch)
	}
	return nil
}

// Identity is the operator that copies its input to its output.
type Identity struct {
	sp space.LinearSpace
}

// NewIdentity creates the identity operator on the given space.
func NewIdentity(sp space.LinearSpace) *Identity {
	return &Identity{sp: sp}
}

func (op *Identity) Domain() space.LinearSpace { return op.sp }
func (op *Identity) Range() space.LinearSpace  { return op.sp }

func (op *Identity) Apply(x, out *space.Vector) error {
	if err := checkApply(op, x, out); err != nil {
		return err
	}
	return op.sp.LinComb(out, 1, x, 0, x)
}

// Adjoint of the identity is the identity itself.
func (op *Identity) Adjoint() Operator {
	return op
}

// Inverse of the identity is the identity itself.
func (op *Identity) Inverse() (Operator, error) {
	return op, nil
}

// Scaling multiplies its input by a fixed scalar.
type Scaling struct {
	sp space.LinearSpace
	c  float64
}

// NewScaling creates the operator x -> c*x on the given space.
func NewScaling(sp space.LinearSpace, c float64) *Scaling {
	return &Scaling{sp: sp, c: c}
}

func (op *Scaling) Domain() space.LinearSpace { return op.sp }
func (op *Scaling) Range() space.LinearSpace  { return op.sp }

func (op *Scaling) Apply(x, out *space.Vector) error {
	if err := checkApply(op, x, out); err != nil {
		return err
	}
	return op.sp.LinComb(out, op.c, x, 0, x)
}

// Adjoint of a real scaling is the scaling itself.
func (op *Scaling) Adjoint() Operator {
	return op
}

// Inverse returns the scaling by 1/c, or ErrNotInvertible for c == 0.
func (op *Scaling) Inverse() (Operator, error) {
	if op.c == 0 {
		return nil, fmt.Errorf("scaling by zero: %w", ErrNotInvertible)
	}
	return NewScaling(op.sp, 1/op.c), nil
}

// PointwiseMultiply multiplies its input element-wise by a fixed factor
// vector. It is self adjoint, being a diagonal operator.
type PointwiseMultiply struct {
	sp     space.InnerProduct
	factor *space.Vector
}

// NewPointwiseMultiply creates the operator x -> factor .* x.
func NewPointwiseMultiply(sp space.InnerProduct, factor *space.Vector) (*PointwiseMultiply, error) {
	if factor == nil || factor.Len() != sp.N() {
		return nil, fmt.Errorf("factor does not belong to %v: %w", sp, ErrSpaceMismatch)
	}
	return &PointwiseMultiply{sp: sp, factor: factor}, nil
}

func (op *PointwiseMultiply) Domain() space.LinearSpace { return op.sp }
func (op *PointwiseMultiply) Range() space.LinearSpace  { return op.sp }

func (op *PointwiseMultiply) Apply(x, out *space.Vector) error {
	if err := checkApply(op, x, out); err != nil {
		return err
	}
	if err := op.sp.LinComb(out, 1, x, 0, x); err != nil {
		return err
	}
	return op.sp.Multiply(op.factor, out)
}

func (op *PointwiseMultiply) Adjoint() Operator {
	return op
}

// composition is outer after inner.
type composition struct {
	outer Operator
	inner Operator
}

// Compose returns the operator outer(inner(x)). It fails with
// ErrSpaceMismatch if the range of inner is not the domain of outer.
func Compose(outer, inner Operator) (Operator, error) {
	if !outer.Domain().Equals(inner.Range()) {
		return nil, fmt.Errorf("can not compose %v after %v: %w", outer.Domain(), inner.Range(), ErrSpaceMismatch)
	}
	return &composition{outer: outer, inner: inner}, nil
}

func (op *composition) Domain() space.LinearSpace { return op.inner.Domain() }
func (op *composition) Range() space.LinearSpace  { return op.outer.Range() }

func (op *composition) Apply(x, out *space.Vector) error {
	if err := checkApply(op, x, out); err != nil {
		return err
	}
	tmp := op.inner.Range().Empty()
	if err := op.inner.Apply(x, tmp); err != nil {
		return err
	}
	return op.outer.Apply(tmp, out)
}

// Adjoint of a composition reverses the order, when both factors expose
// their adjoints.
func (op *composition) Adjoint() Operator {
	outer, ok1 := op.outer.(Adjointable)
	inner, ok2 := op.inner.(Adjointable)
	if !ok1 || !ok2 {
		return nil
	}
	adj, err := Compose(inner.Adjoint(), outer.Adjoint())
	if err != nil {
		return nil
	}
	return adj
}

func (op *composition) Inverse() (Operator, error) {
	outer, ok1 := op.outer.(Invertible)
	inner, ok2 := op.inner.(Invertible)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("composition of non invertible operators: %w", ErrNotInvertible)
	}
	outerInv, err := outer.Inverse()
	if err != nil {
		return nil, err
	}
	innerInv, err := inner.Inverse()
	if err != nil {
		return nil, err
	}
	return Compose(innerInv, outerInv)
}
