//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"math"

	"simd/archsimd"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// F64 is the double-precision kernel set. Every 3- and 4-wide buffer is held
// in one Float64x4 register.
type F64 struct{}

func (F64) AddVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	load64((*[4]float64)(lhs)).Add(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) SubVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	load64((*[4]float64)(lhs)).Sub(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) ScaleVec3(dst *layout.Vec3[float64], scale float64, vec *layout.Vec3[float64]) {
	v := archsimd.BroadcastFloat64x4(scale).Mul(load64((*[4]float64)(vec)))
	maskVec3(v).Store((*[4]float64)(dst))
}

func (F64) HadamardVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	load64((*[4]float64)(lhs)).Mul(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) DotVec3(lhs, rhs *layout.Vec3[float64]) float64 {
	prod := load64((*[4]float64)(lhs)).Mul(load64((*[4]float64)(rhs)))
	return hsum64(maskVec3(prod))
}

// CrossVec3 computes yzx(lhs)*zxy(rhs) - zxy(lhs)*yzx(rhs).
func (F64) CrossVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	a := permute64(lhs, 1, 2, 0).Mul(permute64(rhs, 2, 0, 1))
	b := permute64(lhs, 2, 0, 1).Mul(permute64(rhs, 1, 2, 0))
	a.Sub(b).Store((*[4]float64)(dst))
}

func (k F64) LengthSquareVec3(vec *layout.Vec3[float64]) float64 {
	return k.DotVec3(vec, vec)
}

func (k F64) LengthVec3(vec *layout.Vec3[float64]) float64 {
	return math.Sqrt(k.DotVec3(vec, vec))
}

func (k F64) NormalizeInPlaceVec3(vec *layout.Vec3[float64]) {
	length := archsimd.BroadcastFloat64x4(k.LengthVec3(vec))
	maskVec3(load64((*[4]float64)(vec)).Div(length)).Store((*[4]float64)(vec))
}

func (F64) LerpVec3(dst, from, to *layout.Vec3[float64], alpha float64) {
	a := archsimd.BroadcastFloat64x4(1 - alpha).Mul(load64((*[4]float64)(from)))
	b := archsimd.BroadcastFloat64x4(alpha).Mul(load64((*[4]float64)(to)))
	maskVec3(a.Add(b)).Store((*[4]float64)(dst))
}

func (F64) AddVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	load64((*[4]float64)(lhs)).Add(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) SubVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	load64((*[4]float64)(lhs)).Sub(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) ScaleVec4(dst *layout.Vec4[float64], scale float64, vec *layout.Vec4[float64]) {
	archsimd.BroadcastFloat64x4(scale).Mul(load64((*[4]float64)(vec))).Store((*[4]float64)(dst))
}

func (F64) HadamardVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	load64((*[4]float64)(lhs)).Mul(load64((*[4]float64)(rhs))).Store((*[4]float64)(dst))
}

func (F64) DotVec4(lhs, rhs *layout.Vec4[float64]) float64 {
	return hsum64(load64((*[4]float64)(lhs)).Mul(load64((*[4]float64)(rhs))))
}

func (k F64) LengthSquareVec4(vec *layout.Vec4[float64]) float64 {
	return k.DotVec4(vec, vec)
}

func (k F64) LengthVec4(vec *layout.Vec4[float64]) float64 {
	return math.Sqrt(k.DotVec4(vec, vec))
}

func (k F64) NormalizeInPlaceVec4(vec *layout.Vec4[float64]) {
	length := archsimd.BroadcastFloat64x4(k.LengthVec4(vec))
	load64((*[4]float64)(vec)).Div(length).Store((*[4]float64)(vec))
}

func (F64) LerpVec4(dst, from, to *layout.Vec4[float64], alpha float64) {
	a := archsimd.BroadcastFloat64x4(1 - alpha).Mul(load64((*[4]float64)(from)))
	b := archsimd.BroadcastFloat64x4(alpha).Mul(load64((*[4]float64)(to)))
	a.Add(b).Store((*[4]float64)(dst))
}
