package registry

import "github.com/cwbudde/algo-math3d/internal/layout"

// Set is the operation surface every kernel set implements for one
// precision. Vec2 and the always-scalar operations (equality, transpose,
// quaternion product) are not part of it: they never vary between backends.
//
// Destinations are written in full. Reductions read all live lanes. Matrix
// products tolerate a destination that aliases one of the operands.
type Set[T layout.Float] interface {
	AddVec3(dst, lhs, rhs *layout.Vec3[T])
	SubVec3(dst, lhs, rhs *layout.Vec3[T])
	ScaleVec3(dst *layout.Vec3[T], scale T, vec *layout.Vec3[T])
	HadamardVec3(dst, lhs, rhs *layout.Vec3[T])
	DotVec3(lhs, rhs *layout.Vec3[T]) T
	CrossVec3(dst, lhs, rhs *layout.Vec3[T])
	LengthSquareVec3(vec *layout.Vec3[T]) T
	LengthVec3(vec *layout.Vec3[T]) T
	NormalizeInPlaceVec3(vec *layout.Vec3[T])
	LerpVec3(dst, from, to *layout.Vec3[T], alpha T)

	AddVec4(dst, lhs, rhs *layout.Vec4[T])
	SubVec4(dst, lhs, rhs *layout.Vec4[T])
	ScaleVec4(dst *layout.Vec4[T], scale T, vec *layout.Vec4[T])
	HadamardVec4(dst, lhs, rhs *layout.Vec4[T])
	DotVec4(lhs, rhs *layout.Vec4[T]) T
	LengthSquareVec4(vec *layout.Vec4[T]) T
	LengthVec4(vec *layout.Vec4[T]) T
	NormalizeInPlaceVec4(vec *layout.Vec4[T])
	LerpVec4(dst, from, to *layout.Vec4[T], alpha T)

	AddMat3(dst, lhs, rhs *layout.Mat3[T])
	SubMat3(dst, lhs, rhs *layout.Mat3[T])
	ScaleMat3(dst *layout.Mat3[T], scale T, mat *layout.Mat3[T])
	HadamardMat3(dst, lhs, rhs *layout.Mat3[T])
	MulMat3(dst, lhs, rhs *layout.Mat3[T])
	MulMat3Vec3(dst *layout.Vec3[T], mat *layout.Mat3[T], vec *layout.Vec3[T])

	AddMat4(dst, lhs, rhs *layout.Mat4[T])
	SubMat4(dst, lhs, rhs *layout.Mat4[T])
	ScaleMat4(dst *layout.Mat4[T], scale T, mat *layout.Mat4[T])
	HadamardMat4(dst, lhs, rhs *layout.Mat4[T])
	MulMat4(dst, lhs, rhs *layout.Mat4[T])
	MulMat4Vec4(dst *layout.Vec4[T], mat *layout.Mat4[T], vec *layout.Vec4[T])
}
