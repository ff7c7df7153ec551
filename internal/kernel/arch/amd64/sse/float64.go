//go:build amd64 && goexperiment.simd && !purego

package sse

import (
	"math"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// F64 is the double-precision kernel set. Every 3- and 4-wide buffer is
// split into a lo and a hi Float64x2 register.
type F64 struct{}

func (F64) AddVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Add(bLo), aHi.Add(bHi))
}

func (F64) SubVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Sub(bLo), aHi.Sub(bHi))
}

func (F64) ScaleVec3(dst *layout.Vec3[float64], scale float64, vec *layout.Vec3[float64]) {
	s := splat64(scale)
	lo, hi := load64((*[4]float64)(vec))
	lo, hi = maskVec3f64(s.Mul(lo), s.Mul(hi))
	store64((*[4]float64)(dst), lo, hi)
}

func (F64) HadamardVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Mul(bLo), aHi.Mul(bHi))
}

func (F64) DotVec3(lhs, rhs *layout.Vec3[float64]) float64 {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	return hsum64(maskVec3f64(aLo.Mul(bLo), aHi.Mul(bHi)))
}

// CrossVec3 has no two-lane vector form and applies the scalar formula.
func (F64) CrossVec3(dst, lhs, rhs *layout.Vec3[float64]) {
	x := lhs[1]*rhs[2] - lhs[2]*rhs[1]
	y := lhs[2]*rhs[0] - lhs[0]*rhs[2]
	z := lhs[0]*rhs[1] - lhs[1]*rhs[0]
	*dst = layout.Vec3[float64]{x, y, z, 0}
}

func (k F64) LengthSquareVec3(vec *layout.Vec3[float64]) float64 {
	return k.DotVec3(vec, vec)
}

func (k F64) LengthVec3(vec *layout.Vec3[float64]) float64 {
	return math.Sqrt(k.DotVec3(vec, vec))
}

func (k F64) NormalizeInPlaceVec3(vec *layout.Vec3[float64]) {
	length := splat64(k.LengthVec3(vec))
	lo, hi := load64((*[4]float64)(vec))
	lo, hi = maskVec3f64(lo.Div(length), hi.Div(length))
	store64((*[4]float64)(vec), lo, hi)
}

func (F64) LerpVec3(dst, from, to *layout.Vec3[float64], alpha float64) {
	beta, a := splat64(1-alpha), splat64(alpha)
	fLo, fHi := load64((*[4]float64)(from))
	tLo, tHi := load64((*[4]float64)(to))
	lo, hi := maskVec3f64(beta.Mul(fLo).Add(a.Mul(tLo)), beta.Mul(fHi).Add(a.Mul(tHi)))
	store64((*[4]float64)(dst), lo, hi)
}

func (F64) AddVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Add(bLo), aHi.Add(bHi))
}

func (F64) SubVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Sub(bLo), aHi.Sub(bHi))
}

func (F64) ScaleVec4(dst *layout.Vec4[float64], scale float64, vec *layout.Vec4[float64]) {
	s := splat64(scale)
	lo, hi := load64((*[4]float64)(vec))
	store64((*[4]float64)(dst), s.Mul(lo), s.Mul(hi))
}

func (F64) HadamardVec4(dst, lhs, rhs *layout.Vec4[float64]) {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	store64((*[4]float64)(dst), aLo.Mul(bLo), aHi.Mul(bHi))
}

func (F64) DotVec4(lhs, rhs *layout.Vec4[float64]) float64 {
	aLo, aHi := load64((*[4]float64)(lhs))
	bLo, bHi := load64((*[4]float64)(rhs))
	return hsum64(aLo.Mul(bLo), aHi.Mul(bHi))
}

func (k F64) LengthSquareVec4(vec *layout.Vec4[float64]) float64 {
	return k.DotVec4(vec, vec)
}

func (k F64) LengthVec4(vec *layout.Vec4[float64]) float64 {
	return math.Sqrt(k.DotVec4(vec, vec))
}

func (k F64) NormalizeInPlaceVec4(vec *layout.Vec4[float64]) {
	length := splat64(k.LengthVec4(vec))
	lo, hi := load64((*[4]float64)(vec))
	store64((*[4]float64)(vec), lo.Div(length), hi.Div(length))
}

func (F64) LerpVec4(dst, from, to *layout.Vec4[float64], alpha float64) {
	beta, a := splat64(1-alpha), splat64(alpha)
	fLo, fHi := load64((*[4]float64)(from))
	tLo, tHi := load64((*[4]float64)(to))
	store64((*[4]float64)(dst), beta.Mul(fLo).Add(a.Mul(tLo)), beta.Mul(fHi).Add(a.Mul(tHi)))
}
