/*
Package backend provides an abstraction layer to the available computational backends, currently implemented:

	- naive (naive implementation, no optimizations)
	- blas64 (gonum blas64 interface)

Future:

	- cuda
	- opencl
*/
package backend
