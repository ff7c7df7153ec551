//go:build amd64 && goexperiment.simd && !purego

package sse

import (
	"math"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// F32 is the single-precision kernel set. Every 3- and 4-wide buffer is held
// in one Float32x4 register.
type F32 struct{}

func (F32) AddVec3(dst, lhs, rhs *layout.Vec3[float32]) {
	load32((*[4]float32)(lhs)).Add(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) SubVec3(dst, lhs, rhs *layout.Vec3[float32]) {
	load32((*[4]float32)(lhs)).Sub(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) ScaleVec3(dst *layout.Vec3[float32], scale float32, vec *layout.Vec3[float32]) {
	maskVec3f32(splat32(scale).Mul(load32((*[4]float32)(vec)))).Store((*[4]float32)(dst))
}

func (F32) HadamardVec3(dst, lhs, rhs *layout.Vec3[float32]) {
	load32((*[4]float32)(lhs)).Mul(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) DotVec3(lhs, rhs *layout.Vec3[float32]) float32 {
	prod := load32((*[4]float32)(lhs)).Mul(load32((*[4]float32)(rhs)))
	return hsum32(maskVec3f32(prod))
}

// CrossVec3 computes yzx(lhs)*zxy(rhs) - zxy(lhs)*yzx(rhs).
func (F32) CrossVec3(dst, lhs, rhs *layout.Vec3[float32]) {
	l := load32((*[4]float32)(lhs))
	r := load32((*[4]float32)(rhs))
	a := yzx32(l).Mul(zxy32(r))
	b := zxy32(l).Mul(yzx32(r))
	a.Sub(b).Store((*[4]float32)(dst))
}

func (k F32) LengthSquareVec3(vec *layout.Vec3[float32]) float32 {
	return k.DotVec3(vec, vec)
}

func (k F32) LengthVec3(vec *layout.Vec3[float32]) float32 {
	return float32(math.Sqrt(float64(k.DotVec3(vec, vec))))
}

func (k F32) NormalizeInPlaceVec3(vec *layout.Vec3[float32]) {
	length := k.LengthVec3(vec)
	v := load32((*[4]float32)(vec)).Div(splat32(length))
	maskVec3f32(v).Store((*[4]float32)(vec))
}

func (F32) LerpVec3(dst, from, to *layout.Vec3[float32], alpha float32) {
	a := splat32(1 - alpha).Mul(load32((*[4]float32)(from)))
	b := splat32(alpha).Mul(load32((*[4]float32)(to)))
	maskVec3f32(a.Add(b)).Store((*[4]float32)(dst))
}

func (F32) AddVec4(dst, lhs, rhs *layout.Vec4[float32]) {
	load32((*[4]float32)(lhs)).Add(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) SubVec4(dst, lhs, rhs *layout.Vec4[float32]) {
	load32((*[4]float32)(lhs)).Sub(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) ScaleVec4(dst *layout.Vec4[float32], scale float32, vec *layout.Vec4[float32]) {
	splat32(scale).Mul(load32((*[4]float32)(vec))).Store((*[4]float32)(dst))
}

func (F32) HadamardVec4(dst, lhs, rhs *layout.Vec4[float32]) {
	load32((*[4]float32)(lhs)).Mul(load32((*[4]float32)(rhs))).Store((*[4]float32)(dst))
}

func (F32) DotVec4(lhs, rhs *layout.Vec4[float32]) float32 {
	return hsum32(load32((*[4]float32)(lhs)).Mul(load32((*[4]float32)(rhs))))
}

func (k F32) LengthSquareVec4(vec *layout.Vec4[float32]) float32 {
	return k.DotVec4(vec, vec)
}

func (k F32) LengthVec4(vec *layout.Vec4[float32]) float32 {
	return float32(math.Sqrt(float64(k.DotVec4(vec, vec))))
}

func (k F32) NormalizeInPlaceVec4(vec *layout.Vec4[float32]) {
	length := k.LengthVec4(vec)
	load32((*[4]float32)(vec)).Div(splat32(length)).Store((*[4]float32)(vec))
}

func (F32) LerpVec4(dst, from, to *layout.Vec4[float32], alpha float32) {
	a := splat32(1 - alpha).Mul(load32((*[4]float32)(from)))
	b := splat32(alpha).Mul(load32((*[4]float32)(to)))
	a.Add(b).Store((*[4]float32)(dst))
}
