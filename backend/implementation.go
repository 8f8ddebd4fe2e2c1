package backend

// Vector is an opaque interface to whatever the specific backend implementation
// will return as an object wrapper/reference.
type Vector interface{}

// Implementation is the set of vectorized primitives each backend must expose.
// No aliasing or dimension logic lives at this level, callers are trusted to
// pass wrappers of equal size built by the same implementation.
type Implementation interface {
	Name() string
	Space() uint64

	Wrap(size int, data []float64) Vector

	// Scal performs the in place scaling x = a*x.
	Scal(a float64, x Vector)
	// Axpy performs the in place fused scale-add y = a*x + y.
	Axpy(a float64, x, y Vector)
	// Copy overwrites dst with the contents of src.
	Copy(src, dst Vector)
	// Dot returns the dot product of a and b.
	Dot(a, b Vector) float64
	// Nrm2 returns the Euclidean norm of a.
	Nrm2(a Vector) float64
	// Asum returns the sum of the absolute values of a.
	Asum(a Vector) float64
}
