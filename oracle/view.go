package oracle

import (
	"github.com/rnlab/rnspace/space"
)

// View is the read-only window over a single vector that functionals get
// access to while being evaluated.
type View struct {
	// Size is the number of elements in the vector.
	Size int

	vector *space.Vector
}

// WrapVector creates a View around a vector.
func WrapVector(v *space.Vector) *View {
	w := &View{vector: v}
	if v != nil {
		w.Size = v.Len()
	}
	return w
}

// IsNull returns true if the vector wrapped by this view is nil.
func (w *View) IsNull() bool {
	return w.vector == nil
}

// Get returns the index-th element of the vector.
func (w *View) Get(index int) float64 {
	return w.vector.Get(index)
}

// Values returns a copy of the vector contents.
func (w *View) Values() []float64 {
	return w.vector.Values()
}
