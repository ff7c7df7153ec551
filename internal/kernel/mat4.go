package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddMat4 computes dst = lhs + rhs.
func AddMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.AddMat4(any(dst).(*m4f), any(lhs).(*m4f), any(rhs).(*m4f))
	case float64:
		active64{}.AddMat4(any(dst).(*m4d), any(lhs).(*m4d), any(rhs).(*m4d))
	}
}

// SubMat4 computes dst = lhs - rhs.
func SubMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.SubMat4(any(dst).(*m4f), any(lhs).(*m4f), any(rhs).(*m4f))
	case float64:
		active64{}.SubMat4(any(dst).(*m4d), any(lhs).(*m4d), any(rhs).(*m4d))
	}
}

// ScaleMat4 computes dst = scale * mat.
func ScaleMat4[T layout.Float](dst *layout.Mat4[T], scale T, mat *layout.Mat4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.ScaleMat4(any(dst).(*m4f), float32(scale), any(mat).(*m4f))
	case float64:
		active64{}.ScaleMat4(any(dst).(*m4d), float64(scale), any(mat).(*m4d))
	}
}

// HadamardMat4 computes the lane-wise product of lhs and rhs.
func HadamardMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.HadamardMat4(any(dst).(*m4f), any(lhs).(*m4f), any(rhs).(*m4f))
	case float64:
		active64{}.HadamardMat4(any(dst).(*m4d), any(lhs).(*m4d), any(rhs).(*m4d))
	}
}

// MulMat4 computes the matrix product lhs * rhs. dst may alias an operand.
func MulMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.MulMat4(any(dst).(*m4f), any(lhs).(*m4f), any(rhs).(*m4f))
	case float64:
		active64{}.MulMat4(any(dst).(*m4d), any(lhs).(*m4d), any(rhs).(*m4d))
	}
}

// MulMat4Vec4 computes dst = mat * vec.
func MulMat4Vec4[T layout.Float](dst *layout.Vec4[T], mat *layout.Mat4[T], vec *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.MulMat4Vec4(any(dst).(*v4f), any(mat).(*m4f), any(vec).(*v4f))
	case float64:
		active64{}.MulMat4Vec4(any(dst).(*v4d), any(mat).(*m4d), any(vec).(*v4d))
	}
}

// TransposeMat4 computes dst = transpose(mat). dst may alias mat.
func TransposeMat4[T layout.Float](dst, mat *layout.Mat4[T]) {
	scalar.TransposeMat4(dst, mat)
}

// EqualMat4 reports whether lhs and rhs differ by less than layout.Eps in every lane.
func EqualMat4[T layout.Float](lhs, rhs *layout.Mat4[T]) bool {
	return scalar.CompareEqMat4(lhs, rhs)
}
