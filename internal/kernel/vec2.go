package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Vec2 buffers carry no alignment guarantee and never enter a SIMD kernel.

// AddVec2 computes dst = lhs + rhs.
func AddVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) { scalar.AddVec2(dst, lhs, rhs) }

// SubVec2 computes dst = lhs - rhs.
func SubVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) { scalar.SubVec2(dst, lhs, rhs) }

// ScaleVec2 computes dst = scale * vec.
func ScaleVec2[T layout.Float](dst *layout.Vec2[T], scale T, vec *layout.Vec2[T]) {
	scalar.ScaleVec2(dst, scale, vec)
}

// HadamardVec2 computes the lane-wise product of lhs and rhs.
func HadamardVec2[T layout.Float](dst, lhs, rhs *layout.Vec2[T]) { scalar.HadamardVec2(dst, lhs, rhs) }

// DotVec2 returns the dot product of lhs and rhs.
func DotVec2[T layout.Float](lhs, rhs *layout.Vec2[T]) T { return scalar.DotVec2(lhs, rhs) }

// LengthSquareVec2 returns the squared norm of vec.
func LengthSquareVec2[T layout.Float](vec *layout.Vec2[T]) T { return scalar.LengthSquareVec2(vec) }

// LengthVec2 returns the Euclidean norm of vec.
func LengthVec2[T layout.Float](vec *layout.Vec2[T]) T { return scalar.LengthVec2(vec) }

// NormalizeInPlaceVec2 scales vec to unit length.
func NormalizeInPlaceVec2[T layout.Float](vec *layout.Vec2[T]) { scalar.NormalizeInPlaceVec2(vec) }

// EqualVec2 reports whether lhs and rhs differ by less than layout.Eps in every lane.
func EqualVec2[T layout.Float](lhs, rhs *layout.Vec2[T]) bool { return scalar.CompareEqVec2(lhs, rhs) }
