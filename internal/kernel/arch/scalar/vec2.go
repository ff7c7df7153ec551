package scalar

import (
	"math"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddVec2 computes dst[i] = lhs[i] + rhs[i].
func AddVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) {
	for i := 0; i < layout.Vec2Size; i++ {
		dst[i] = lhs[i] + rhs[i]
	}
}

// SubVec2 computes dst[i] = lhs[i] - rhs[i].
func SubVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) {
	for i := 0; i < layout.Vec2Size; i++ {
		dst[i] = lhs[i] - rhs[i]
	}
}

// ScaleVec2 computes dst[i] = scale * vec[i].
func ScaleVec2[T layout.Float](dst *layout.Vec2[T], scale T, vec *layout.Vec2[T]) {
	for i := 0; i < layout.Vec2Size; i++ {
		dst[i] = scale * vec[i]
	}
}

// HadamardVec2 computes dst[i] = lhs[i] * rhs[i].
func HadamardVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) {
	for i := 0; i < layout.Vec2Size; i++ {
		dst[i] = lhs[i] * rhs[i]
	}
}

// DotVec2 returns the sum of lhs[i] * rhs[i].
func DotVec2[T layout.Float](lhs, rhs *layout.Vec2[T]) T {
	var accum T
	for i := 0; i < layout.Vec2Size; i++ {
		accum += lhs[i] * rhs[i]
	}
	return accum
}

// LengthSquareVec2 returns the squared Euclidean length of vec.
func LengthSquareVec2[T layout.Float](vec *layout.Vec2[T]) T {
	return DotVec2(vec, vec)
}

// LengthVec2 returns the Euclidean length of vec.
func LengthVec2[T layout.Float](vec *layout.Vec2[T]) T {
	return T(math.Sqrt(float64(LengthSquareVec2(vec))))
}

// NormalizeInPlaceVec2 divides every lane by the length of vec. A zero
// vector yields NaN lanes.
func NormalizeInPlaceVec2[T layout.Float](vec *layout.Vec2[T]) {
	length := LengthVec2(vec)
	for i := 0; i < layout.Vec2Size; i++ {
		vec[i] /= length
	}
}

// CompareEqVec2 reports whether every lane differs by less than layout.Eps.
func CompareEqVec2[T layout.Float](lhs, rhs *layout.Vec2[T]) bool {
	for i := 0; i < layout.Vec2Size; i++ {
		if !withinEps(lhs[i], rhs[i]) {
			return false
		}
	}
	return true
}

// withinEps reports whether |a-b| < Eps, evaluated in the precision of T.
func withinEps[T layout.Float](a, b T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < T(layout.Eps)
}
