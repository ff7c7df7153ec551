package scalar

import (
	"math"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// AddVec4 computes dst[i] = lhs[i] + rhs[i].
func AddVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	for i := 0; i < layout.Vec4Size; i++ {
		dst[i] = lhs[i] + rhs[i]
	}
}

// SubVec4 computes dst[i] = lhs[i] - rhs[i].
func SubVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	for i := 0; i < layout.Vec4Size; i++ {
		dst[i] = lhs[i] - rhs[i]
	}
}

// ScaleVec4 computes dst[i] = scale * vec[i].
func ScaleVec4[T layout.Float](dst *layout.Vec4[T], scale T, vec *layout.Vec4[T]) {
	for i := 0; i < layout.Vec4Size; i++ {
		dst[i] = scale * vec[i]
	}
}

// HadamardVec4 computes dst[i] = lhs[i] * rhs[i].
func HadamardVec4[T layout.Float](dst, lhs, rhs *layout.Vec4[T]) {
	for i := 0; i < layout.Vec4Size; i++ {
		dst[i] = lhs[i] * rhs[i]
	}
}

// DotVec4 returns the sum of lhs[i] * rhs[i].
func DotVec4[T layout.Float](lhs, rhs *layout.Vec4[T]) T {
	var accum T
	for i := 0; i < layout.Vec4Size; i++ {
		accum += lhs[i] * rhs[i]
	}
	return accum
}

// LengthSquareVec4 returns the squared Euclidean length of vec.
func LengthSquareVec4[T layout.Float](vec *layout.Vec4[T]) T {
	return DotVec4(vec, vec)
}

// LengthVec4 returns the Euclidean length of vec.
func LengthVec4[T layout.Float](vec *layout.Vec4[T]) T {
	return T(math.Sqrt(float64(LengthSquareVec4(vec))))
}

// NormalizeInPlaceVec4 divides every lane by the length of vec.
func NormalizeInPlaceVec4[T layout.Float](vec *layout.Vec4[T]) {
	length := LengthVec4(vec)
	for i := 0; i < layout.Vec4Size; i++ {
		vec[i] /= length
	}
}

// LerpVec4 computes dst = (1-alpha)*from + alpha*to.
func LerpVec4[T layout.Float](dst, from, to *layout.Vec4[T], alpha T) {
	beta := 1 - alpha
	for i := 0; i < layout.Vec4Size; i++ {
		dst[i] = beta*from[i] + alpha*to[i]
	}
}

// CompareEqVec4 reports whether every lane differs by less than layout.Eps.
func CompareEqVec4[T layout.Float](lhs, rhs *layout.Vec4[T]) bool {
	for i := 0; i < layout.Vec4Size; i++ {
		if !withinEps(lhs[i], rhs[i]) {
			return false
		}
	}
	return true
}
