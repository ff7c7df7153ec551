// Package layout defines the fixed-size storage buffers shared by the kernel
// sets and the public math3d types.
//
// Every buffer is a plain Go array, so it is a value type: copied on
// assignment, never shared, and free of heap allocation when held on the
// stack. The layout contract the SIMD kernels rely on is:
//
//   - Vec3 is stored in four lanes. The fourth lane is padding and must hold
//     exactly zero, so 4-lane reductions over the buffer equal the 3-lane
//     mathematical result.
//   - Vec4 and Quat use four lanes with no padding. Quat lanes are (w, x, y, z).
//   - Matrices are column-major arrays of column buffers: entry (row, col)
//     lives at m[col][row]. Mat3 columns are padded Vec3 buffers.
//   - Vec2 never enters a SIMD kernel and carries no alignment guarantee.
//
// Go does not let a type request an alignment larger than its element's, so
// the alignment figures below are the requirement of the matching register
// width. The kernels load and store through unaligned-tolerant moves, which
// keeps the contract valid for any Go-allocated buffer.
package layout

// Float is the set of scalar types a buffer can hold. The two precisions are
// never mixed within one operation.
type Float interface {
	float32 | float64
}

// Eps is the absolute tolerance used by every epsilon comparison, shared by
// both precisions and not scaled by magnitude.
const Eps = 1e-6

// Vec2 is the storage of a 2-wide vector.
type Vec2[T Float] [2]T

// Vec3 is the storage of a 3-wide vector, padded to four lanes.
type Vec3[T Float] [4]T

// Vec4 is the storage of a 4-wide vector.
type Vec4[T Float] [4]T

// Quat is the storage of a quaternion, ordered (w, x, y, z).
type Quat[T Float] [4]T

// Mat3 is the column-major storage of a 3x3 matrix.
type Mat3[T Float] [3]Vec3[T]

// Mat4 is the column-major storage of a 4x4 matrix.
type Mat4[T Float] [4]Vec4[T]

// Live-lane and storage sizes per buffer kind.
const (
	Vec2Size       = 2
	Vec2BufferSize = 2

	Vec3Size       = 3
	Vec3BufferSize = 4

	Vec4Size       = 4
	Vec4BufferSize = 4

	QuatSize       = 4
	QuatBufferSize = 4

	Mat3Size       = 3
	Mat3BufferSize = Mat3Size * Vec3BufferSize

	Mat4Size       = 4
	Mat4BufferSize = Mat4Size * Vec4BufferSize
)

// PaddingLane is the index of the Vec3 padding lane.
const PaddingLane = 3
