package scalar

import (
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Kernels binds the scalar functions of one precision to the registry.Set
// surface. F32 and F64 are the two instantiations the dispatch layer uses.
type Kernels[T layout.Float] struct{}

type (
	F32 = Kernels[float32]
	F64 = Kernels[float64]
)

var (
	_ registry.Set[float32] = F32{}
	_ registry.Set[float64] = F64{}
)

func (Kernels[T]) AddVec3(dst, lhs, rhs *layout.Vec3[T])      { AddVec3(dst, lhs, rhs) }
func (Kernels[T]) SubVec3(dst, lhs, rhs *layout.Vec3[T])      { SubVec3(dst, lhs, rhs) }
func (Kernels[T]) HadamardVec3(dst, lhs, rhs *layout.Vec3[T]) { HadamardVec3(dst, lhs, rhs) }
func (Kernels[T]) CrossVec3(dst, lhs, rhs *layout.Vec3[T])    { CrossVec3(dst, lhs, rhs) }
func (Kernels[T]) DotVec3(lhs, rhs *layout.Vec3[T]) T         { return DotVec3(lhs, rhs) }
func (Kernels[T]) LengthSquareVec3(vec *layout.Vec3[T]) T     { return LengthSquareVec3(vec) }
func (Kernels[T]) LengthVec3(vec *layout.Vec3[T]) T           { return LengthVec3(vec) }
func (Kernels[T]) NormalizeInPlaceVec3(vec *layout.Vec3[T])   { NormalizeInPlaceVec3(vec) }

func (Kernels[T]) ScaleVec3(dst *layout.Vec3[T], scale T, vec *layout.Vec3[T]) {
	ScaleVec3(dst, scale, vec)
}

func (Kernels[T]) LerpVec3(dst, from, to *layout.Vec3[T], alpha T) {
	LerpVec3(dst, from, to, alpha)
}

func (Kernels[T]) AddVec4(dst, lhs, rhs *layout.Vec4[T])      { AddVec4(dst, lhs, rhs) }
func (Kernels[T]) SubVec4(dst, lhs, rhs *layout.Vec4[T])      { SubVec4(dst, lhs, rhs) }
func (Kernels[T]) HadamardVec4(dst, lhs, rhs *layout.Vec4[T]) { HadamardVec4(dst, lhs, rhs) }
func (Kernels[T]) DotVec4(lhs, rhs *layout.Vec4[T]) T         { return DotVec4(lhs, rhs) }
func (Kernels[T]) LengthSquareVec4(vec *layout.Vec4[T]) T     { return LengthSquareVec4(vec) }
func (Kernels[T]) LengthVec4(vec *layout.Vec4[T]) T           { return LengthVec4(vec) }
func (Kernels[T]) NormalizeInPlaceVec4(vec *layout.Vec4[T])   { NormalizeInPlaceVec4(vec) }

func (Kernels[T]) ScaleVec4(dst *layout.Vec4[T], scale T, vec *layout.Vec4[T]) {
	ScaleVec4(dst, scale, vec)
}

func (Kernels[T]) LerpVec4(dst, from, to *layout.Vec4[T], alpha T) {
	LerpVec4(dst, from, to, alpha)
}

func (Kernels[T]) AddMat3(dst, lhs, rhs *layout.Mat3[T])      { AddMat3(dst, lhs, rhs) }
func (Kernels[T]) SubMat3(dst, lhs, rhs *layout.Mat3[T])      { SubMat3(dst, lhs, rhs) }
func (Kernels[T]) HadamardMat3(dst, lhs, rhs *layout.Mat3[T]) { HadamardMat3(dst, lhs, rhs) }
func (Kernels[T]) MulMat3(dst, lhs, rhs *layout.Mat3[T])      { MulMat3(dst, lhs, rhs) }

func (Kernels[T]) ScaleMat3(dst *layout.Mat3[T], scale T, mat *layout.Mat3[T]) {
	ScaleMat3(dst, scale, mat)
}

func (Kernels[T]) MulMat3Vec3(dst *layout.Vec3[T], mat *layout.Mat3[T], vec *layout.Vec3[T]) {
	MulMat3Vec3(dst, mat, vec)
}

func (Kernels[T]) AddMat4(dst, lhs, rhs *layout.Mat4[T])      { AddMat4(dst, lhs, rhs) }
func (Kernels[T]) SubMat4(dst, lhs, rhs *layout.Mat4[T])      { SubMat4(dst, lhs, rhs) }
func (Kernels[T]) HadamardMat4(dst, lhs, rhs *layout.Mat4[T]) { HadamardMat4(dst, lhs, rhs) }
func (Kernels[T]) MulMat4(dst, lhs, rhs *layout.Mat4[T])      { MulMat4(dst, lhs, rhs) }

func (Kernels[T]) ScaleMat4(dst *layout.Mat4[T], scale T, mat *layout.Mat4[T]) {
	ScaleMat4(dst, scale, mat)
}

func (Kernels[T]) MulMat4Vec4(dst *layout.Vec4[T], mat *layout.Mat4[T], vec *layout.Vec4[T]) {
	MulMat4Vec4(dst, mat, vec)
}
