// Package math3d provides small fixed-size vectors, matrices and
// quaternions for graphics and physics geometry.
//
// Vec2, Vec3, Vec4, Mat3, Mat4 and Quat are generic over float32 and
// float64; the aliases Vec3f, Vec3d and so on name the two instantiations.
// All types are plain values: assignment copies, and no value shares
// storage with another.
//
// # Layout
//
// Vec3 is stored in four lanes with a padding lane that always holds zero.
// Matrices are column-major: entry (row, col) lives in column col. Mat3
// columns are padded like Vec3. Quat lanes are ordered (w, x, y, z).
//
// # Kernel sets
//
// Arithmetic is executed by one of three kernel sets chosen when the module
// is built:
//
//	go build                                           scalar (pure Go)
//	GOEXPERIMENT=simd go build -tags math3d_sse        128-bit registers
//	GOEXPERIMENT=simd go build -tags math3d_avx        256-bit registers
//
// The SIMD kernel sets exist on amd64 only, and the purego tag forces the
// scalar set. Backend reports the kernel set in use and BackendSupported
// whether the host can execute it.
//
// # Equality
//
// Equal compares lane by lane with the absolute tolerance Eps, identical for
// both precisions and independent of magnitude. It is reflexive and
// symmetric but not transitive.
package math3d
