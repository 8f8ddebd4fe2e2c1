package space

import (
	"fmt"

	"github.com/rnlab/rnspace/backend"
)

// Vector is a handle pairing a fixed length float64 buffer with the space
// that owns it. Buffer ownership is per handle and exclusive unless the
// handle was built by wrapping a shared buffer, in which case two handles
// alias one buffer identity (see Is).
type Vector struct {
	space LinearSpace
	data  []float64
	vec   backend.Vector
}

// Space returns the space this vector belongs to.
func (v *Vector) Space() LinearSpace {
	return v.space
}

// Len returns the number of elements in the vector.
func (v *Vector) Len() int {
	return len(v.data)
}

// Get returns the index-th element of the vector.
func (v *Vector) Get(index int) float64 {
	return v.data[index]
}

// Set assigns the index-th element of the vector.
func (v *Vector) Set(index int, value float64) {
	v.data[index] = value
}

// Values returns a copy of the buffer contents.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Is returns true if this handle and b are backed by the identical buffer.
// This is an exact identity check, two distinct buffers with equal contents
// do not alias.
func (v *Vector) Is(b *Vector) bool {
	if v == nil || b == nil || len(v.data) == 0 || len(b.data) == 0 {
		return false
	}
	return &v.data[0] == &b.data[0]
}

func (v *Vector) String() string {
	return fmt.Sprintf("%s.FromValues(%v)", v.space, v.data)
}
