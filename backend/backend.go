package backend

// TODO: pick at runtime the best backend available ( CUDA, OpenCL or BLAS64 ).
var impl Implementation = blas{}

// Default returns the backend implementation every new space is bound to.
func Default() Implementation {
	return impl
}

// Naive returns the pure Go fallback implementation, mostly useful for
// benchmarks and as a reference for correctness tests.
func Naive() Implementation {
	return naive{}
}

func Name() string {
	return impl.Name()
}

func Space() uint64 {
	return impl.Space()
}

func Wrap(size int, data []float64) Vector {
	return impl.Wrap(size, data)
}

func Dot(a, b Vector) float64 {
	return impl.Dot(a, b)
}
