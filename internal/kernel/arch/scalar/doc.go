// Package scalar is the reference kernel set.
//
// Every operation iterates the live lanes of its buffers and applies the
// textbook formula. It is the fallback backend when no SIMD tier is built in,
// the implementation behind the operations that are never vectorized (Vec2,
// equality, quaternion product, transpose), and the oracle the SIMD kernel
// sets are tested against.
package scalar
