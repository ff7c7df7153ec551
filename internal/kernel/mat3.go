package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddMat3 computes dst = lhs + rhs.
func AddMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.AddMat3(any(dst).(*m3f), any(lhs).(*m3f), any(rhs).(*m3f))
	case float64:
		active64{}.AddMat3(any(dst).(*m3d), any(lhs).(*m3d), any(rhs).(*m3d))
	}
}

// SubMat3 computes dst = lhs - rhs.
func SubMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.SubMat3(any(dst).(*m3f), any(lhs).(*m3f), any(rhs).(*m3f))
	case float64:
		active64{}.SubMat3(any(dst).(*m3d), any(lhs).(*m3d), any(rhs).(*m3d))
	}
}

// ScaleMat3 computes dst = scale * mat.
func ScaleMat3[T layout.Float](dst *layout.Mat3[T], scale T, mat *layout.Mat3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.ScaleMat3(any(dst).(*m3f), float32(scale), any(mat).(*m3f))
	case float64:
		active64{}.ScaleMat3(any(dst).(*m3d), float64(scale), any(mat).(*m3d))
	}
}

// HadamardMat3 computes the lane-wise product of lhs and rhs.
func HadamardMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.HadamardMat3(any(dst).(*m3f), any(lhs).(*m3f), any(rhs).(*m3f))
	case float64:
		active64{}.HadamardMat3(any(dst).(*m3d), any(lhs).(*m3d), any(rhs).(*m3d))
	}
}

// MulMat3 computes the matrix product lhs * rhs. dst may alias an operand.
func MulMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.MulMat3(any(dst).(*m3f), any(lhs).(*m3f), any(rhs).(*m3f))
	case float64:
		active64{}.MulMat3(any(dst).(*m3d), any(lhs).(*m3d), any(rhs).(*m3d))
	}
}

// MulMat3Vec3 computes dst = mat * vec.
func MulMat3Vec3[T layout.Float](dst *layout.Vec3[T], mat *layout.Mat3[T], vec *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.MulMat3Vec3(any(dst).(*v3f), any(mat).(*m3f), any(vec).(*v3f))
	case float64:
		active64{}.MulMat3Vec3(any(dst).(*v3d), any(mat).(*m3d), any(vec).(*v3d))
	}
}

// TransposeMat3 writes the transpose of mat to dst. dst may alias mat.
func TransposeMat3[T layout.Float](dst, mat *layout.Mat3[T]) {
	scalar.TransposeMat3(dst, mat)
}

// EqualMat3 reports whether lhs and rhs differ by less than layout.Eps in every lane.
func EqualMat3[T layout.Float](lhs, rhs *layout.Mat3[T]) bool {
	return scalar.CompareEqMat3(lhs, rhs)
}
