package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddVec3 computes dst = lhs + rhs.
func AddVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.AddVec3(any(dst).(*v3f), any(lhs).(*v3f), any(rhs).(*v3f))
	case float64:
		active64{}.AddVec3(any(dst).(*v3d), any(lhs).(*v3d), any(rhs).(*v3d))
	}
}

// SubVec3 computes dst = lhs - rhs.
func SubVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.SubVec3(any(dst).(*v3f), any(lhs).(*v3f), any(rhs).(*v3f))
	case float64:
		active64{}.SubVec3(any(dst).(*v3d), any(lhs).(*v3d), any(rhs).(*v3d))
	}
}

// ScaleVec3 computes dst = scale * vec.
func ScaleVec3[T layout.Float](dst *layout.Vec3[T], scale T, vec *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.ScaleVec3(any(dst).(*v3f), float32(scale), any(vec).(*v3f))
	case float64:
		active64{}.ScaleVec3(any(dst).(*v3d), float64(scale), any(vec).(*v3d))
	}
}

// HadamardVec3 computes the lane-wise product of lhs and rhs.
func HadamardVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.HadamardVec3(any(dst).(*v3f), any(lhs).(*v3f), any(rhs).(*v3f))
	case float64:
		active64{}.HadamardVec3(any(dst).(*v3d), any(lhs).(*v3d), any(rhs).(*v3d))
	}
}

// DotVec3 returns the dot product of the live lanes.
func DotVec3[T layout.Float](lhs, rhs *layout.Vec3[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.DotVec3(any(lhs).(*v3f), any(rhs).(*v3f)))
	case float64:
		return T(active64{}.DotVec3(any(lhs).(*v3d), any(rhs).(*v3d)))
	}
	return 0
}

// CrossVec3 computes the cross product lhs x rhs.
func CrossVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.CrossVec3(any(dst).(*v3f), any(lhs).(*v3f), any(rhs).(*v3f))
	case float64:
		active64{}.CrossVec3(any(dst).(*v3d), any(lhs).(*v3d), any(rhs).(*v3d))
	}
}

// LengthSquareVec3 returns the squared norm of vec.
func LengthSquareVec3[T layout.Float](vec *layout.Vec3[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.LengthSquareVec3(any(vec).(*v3f)))
	case float64:
		return T(active64{}.LengthSquareVec3(any(vec).(*v3d)))
	}
	return 0
}

// LengthVec3 returns the Euclidean norm of vec.
func LengthVec3[T layout.Float](vec *layout.Vec3[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(active32{}.LengthVec3(any(vec).(*v3f)))
	case float64:
		return T(active64{}.LengthVec3(any(vec).(*v3d)))
	}
	return 0
}

// NormalizeInPlaceVec3 scales vec to unit length. A zero vector yields NaN
// lanes; the padding lane stays zero.
func NormalizeInPlaceVec3[T layout.Float](vec *layout.Vec3[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.NormalizeInPlaceVec3(any(vec).(*v3f))
	case float64:
		active64{}.NormalizeInPlaceVec3(any(vec).(*v3d))
	}
}

// LerpVec3 computes dst = (1-alpha)*from + alpha*to.
func LerpVec3[T layout.Float](dst, from, to *layout.Vec3[T], alpha T) {
	var zero T
	switch any(zero).(type) {
	case float32:
		active32{}.LerpVec3(any(dst).(*v3f), any(from).(*v3f), any(to).(*v3f), float32(alpha))
	case float64:
		active64{}.LerpVec3(any(dst).(*v3d), any(from).(*v3d), any(to).(*v3d), float64(alpha))
	}
}

// EqualVec3 reports whether the live lanes of lhs and rhs differ by less
// than layout.Eps. Every build compares on the scalar path.
func EqualVec3[T layout.Float](lhs, rhs *layout.Vec3[T]) bool {
	return scalar.CompareEqVec3(lhs, rhs)
}
