package scalar

import (
	"math"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// The Vec3 kernels touch the three live lanes only; the padding lane of dst
// keeps whatever it held, which is zero for every buffer built by math3d.

// AddVec3 computes dst[i] = lhs[i] + rhs[i].
func AddVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	for i := 0; i < layout.Vec3Size; i++ {
		dst[i] = lhs[i] + rhs[i]
	}
}

// SubVec3 computes dst[i] = lhs[i] - rhs[i].
func SubVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	for i := 0; i < layout.Vec3Size; i++ {
		dst[i] = lhs[i] - rhs[i]
	}
}

// ScaleVec3 computes dst[i] = scale * vec[i].
func ScaleVec3[T layout.Float](dst *layout.Vec3[T], scale T, vec *layout.Vec3[T]) {
	for i := 0; i < layout.Vec3Size; i++ {
		dst[i] = scale * vec[i]
	}
}

// HadamardVec3 computes dst[i] = lhs[i] * rhs[i].
func HadamardVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	for i := 0; i < layout.Vec3Size; i++ {
		dst[i] = lhs[i] * rhs[i]
	}
}

// DotVec3 returns the sum of lhs[i] * rhs[i] over the live lanes.
func DotVec3[T layout.Float](lhs, rhs *layout.Vec3[T]) T {
	var accum T
	for i := 0; i < layout.Vec3Size; i++ {
		accum += lhs[i] * rhs[i]
	}
	return accum
}

// CrossVec3 computes the cross product lhs x rhs. dst may alias an operand.
func CrossVec3[T layout.Float](dst, lhs, rhs *layout.Vec3[T]) {
	x := lhs[1]*rhs[2] - lhs[2]*rhs[1]
	y := lhs[2]*rhs[0] - lhs[0]*rhs[2]
	z := lhs[0]*rhs[1] - lhs[1]*rhs[0]
	dst[0], dst[1], dst[2] = x, y, z
}

// LengthSquareVec3 returns the squared Euclidean length of vec.
func LengthSquareVec3[T layout.Float](vec *layout.Vec3[T]) T {
	return DotVec3(vec, vec)
}

// LengthVec3 returns the Euclidean length of vec.
func LengthVec3[T layout.Float](vec *layout.Vec3[T]) T {
	return T(math.Sqrt(float64(LengthSquareVec3(vec))))
}

// NormalizeInPlaceVec3 divides every live lane by the length of vec. A zero
// vector yields NaN lanes.
func NormalizeInPlaceVec3[T layout.Float](vec *layout.Vec3[T]) {
	length := LengthVec3(vec)
	for i := 0; i < layout.Vec3Size; i++ {
		vec[i] /= length
	}
}

// LerpVec3 computes dst = (1-alpha)*from + alpha*to.
func LerpVec3[T layout.Float](dst, from, to *layout.Vec3[T], alpha T) {
	beta := 1 - alpha
	for i := 0; i < layout.Vec3Size; i++ {
		dst[i] = beta*from[i] + alpha*to[i]
	}
}

// CompareEqVec3 reports whether every live lane differs by less than
// layout.Eps. The padding lane is ignored.
func CompareEqVec3[T layout.Float](lhs, rhs *layout.Vec3[T]) bool {
	for i := 0; i < layout.Vec3Size; i++ {
		if !withinEps(lhs[i], rhs[i]) {
			return false
		}
	}
	return true
}
