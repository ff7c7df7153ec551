package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// A quaternion shares the four-lane layout of Vec4, so its linear operations
// run on the Vec4 kernels.

func asVec4[T layout.Float](q *layout.Quat[T]) *layout.Vec4[T] {
	return (*layout.Vec4[T])(q)
}

// AddQuat computes dst = lhs + rhs.
func AddQuat[T layout.Float](dst, lhs, rhs *layout.Quat[T]) {
	AddVec4(asVec4(dst), asVec4(lhs), asVec4(rhs))
}

// SubQuat computes dst = lhs - rhs.
func SubQuat[T layout.Float](dst, lhs, rhs *layout.Quat[T]) {
	SubVec4(asVec4(dst), asVec4(lhs), asVec4(rhs))
}

// ScaleQuat computes dst = scale * q.
func ScaleQuat[T layout.Float](dst *layout.Quat[T], scale T, q *layout.Quat[T]) {
	ScaleVec4(asVec4(dst), scale, asVec4(q))
}

// DotQuat returns the dot product of lhs and rhs.
func DotQuat[T layout.Float](lhs, rhs *layout.Quat[T]) T {
	return DotVec4(asVec4(lhs), asVec4(rhs))
}

// LengthSquareQuat returns the squared norm of q.
func LengthSquareQuat[T layout.Float](q *layout.Quat[T]) T {
	return LengthSquareVec4(asVec4(q))
}

// LengthQuat returns the Euclidean norm of q.
func LengthQuat[T layout.Float](q *layout.Quat[T]) T {
	return LengthVec4(asVec4(q))
}

// NormalizeInPlaceQuat scales q to unit length.
func NormalizeInPlaceQuat[T layout.Float](q *layout.Quat[T]) {
	NormalizeInPlaceVec4(asVec4(q))
}

// MulQuat computes the Hamilton product lhs * rhs.
func MulQuat[T layout.Float](dst, lhs, rhs *layout.Quat[T]) {
	scalar.MulQuat(dst, lhs, rhs)
}

// ConjugateQuat computes dst = conj(q).
func ConjugateQuat[T layout.Float](dst, q *layout.Quat[T]) {
	scalar.ConjugateQuat(dst, q)
}

// InverseQuat computes dst = conj(q) / |q|^2.
func InverseQuat[T layout.Float](dst, q *layout.Quat[T]) {
	scalar.InverseQuat(dst, q)
}

// RotateVec3 rotates vec by q.
func RotateVec3[T layout.Float](dst *layout.Vec3[T], q *layout.Quat[T], vec *layout.Vec3[T]) {
	scalar.RotateVec3(dst, q, vec)
}

// EqualQuat reports whether lhs and rhs differ by less than layout.Eps in every lane.
func EqualQuat[T layout.Float](lhs, rhs *layout.Quat[T]) bool {
	return scalar.CompareEqQuat(lhs, rhs)
}
