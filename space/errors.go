package space

import "errors"

var (
	// ErrInvalidArgument is returned when a space or an operation is built
	// from nonsensical input, like a non positive dimension or a NaN norm
	// order.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShapeMismatch is returned when a caller provided buffer does not
	// have exactly as many elements as the space dimension.
	ErrShapeMismatch = errors.New("buffer length does not match space dimension")
	// ErrTypeMismatch is returned when a caller provided value can not be
	// converted to a buffer of 64-bit reals.
	ErrTypeMismatch = errors.New("value can not be converted to a real vector")
	// ErrDimensionMismatch is returned when the operands of a vector
	// operation do not belong to the same space.
	ErrDimensionMismatch = errors.New("operands belong to different spaces")
)
