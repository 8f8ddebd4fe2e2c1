/*
Package space implements finite dimensional real coordinate spaces whose
vectors are backed by contiguous float64 buffers and whose arithmetic is
executed through the vectorized primitives of the backend package.

Three capability sets are layered on the raw buffer:

	- RN        linear space algebra (linear combination)
	- NormedRN  p-norms
	- Euclidean inner product, 2-norm and pointwise multiplication

The heart of the package is the linear combination engine, see LinComb.
*/
package space
