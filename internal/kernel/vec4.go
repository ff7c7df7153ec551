package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddVec4 computes dst = lhs + rhs.
func AddVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.AddVec4(any(dst).(*v4f), any(lhs).(*v4f), any(rhs).(*v4f))
	case float64:
		active64{}.AddVec4(any(dst).(*v4d), any(lhs).(*v4d), any(rhs).(*v4d))
	}
}

// SubVec4 computes dst = lhs - rhs.
func SubVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.SubVec4(any(dst).(*v4f), any(lhs).(*v4f), any(rhs).(*v4f))
	case float64:
		active64{}.SubVec4(any(dst).(*v4d), any(lhs).(*v4d), any(rhs).(*v4d))
	}
}

// ScaleVec4 computes dst = scale * vec.
func ScaleVec4[T layout.Float](dst *layout.Vec4[T], scale T, vec *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.ScaleVec4(any(dst).(*v4f), float32(scale), any(vec).(*v4f))
	case float64:
		active64{}.ScaleVec4(any(dst).(*v4d), float64(scale), any(vec).(*v4d))
	}
}

// HadamardVec4 computes the lane-wise product of lhs and rhs.
func HadamardVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.HadamardVec4(any(dst).(*v4f), any(lhs).(*v4f), any(rhs).(*v4f))
	case float64:
		active64{}.HadamardVec4(any(dst).(*v4d), any(lhs).(*v4d), any(rhs).(*v4d))
	}
}

// DotVec4 returns the dot product of lhs and rhs.
func DotVec4[T layout.Float](lhs, rhs *layout.Vec4[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.DotVec4(any(lhs).(*v4f), any(rhs).(*v4f)))
	case float64:
		return T(active64{}.DotVec4(any(lhs).(*v4d), any(rhs).(*v4d)))
	}
	return 0
}

// LengthSquareVec4 returns the squared norm of vec.
func LengthSquareVec4[T layout.Float](vec *layout.Vec4[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.LengthSquareVec4(any(vec).(*v4f)))
	case float64:
		return T(active64{}.LengthSquareVec4(any(vec).(*v4d)))
	}
	return 0
}

// LengthVec4 returns the Euclidean norm of vec.
func LengthVec4[T layout.Float](vec *layout.Vec4[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.LengthVec4(any(vec).(*v4f)))
	case float64:
		return T(active64{}.LengthVec4(any(vec).(*v4d)))
	}
	return 0
}

// NormalizeInPlaceVec4 scales vec to unit length.
func NormalizeInPlaceVec4[T layout.Float](vec *layout.Vec4[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.NormalizeInPlaceVec4(any(vec).(*v4f))
	case float64:
		active64{}.NormalizeInPlaceVec4(any(vec).(*v4d))
	}
}

// LerpVec4 computes dst = (1-alpha)*from + alpha*to.
func LerpVec4[T layout.Float](dst, from, to *layout.Vec4[T], alpha T) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.LerpVec4(any(dst).(*v4f), any(from).(*v4f), any(to).(*v4f), float32(alpha))
	case float64:
		active64{}.LerpVec4(any(dst).(*v4d), any(from).(*v4d), any(to).(*v4d), float64(alpha))
	}
}

// EqualVec4 reports whether lhs and rhs differ by less than layout.Eps in every lane.
func EqualVec4[T layout.Float](lhs, rhs *layout.Vec4[T]) bool {
	return scalar.CompareEqVec4(lhs, rhs)
}
