//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

func (k F64) AddMat3(dst, lhs, rhs *layout.Mat3[float64]) {
	for c := range dst {
		k.AddVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F64) SubMat3(dst, lhs, rhs *layout.Mat3[float64]) {
	for c := range dst {
		k.SubVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F64) ScaleMat3(dst *layout.Mat3[float64], scale float64, mat *layout.Mat3[float64]) {
	for c := range dst {
		k.ScaleVec3(&dst[c], scale, &mat[c])
	}
}

func (k F64) HadamardMat3(dst, lhs, rhs *layout.Mat3[float64]) {
	for c := range dst {
		k.HadamardVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

// MulMat3Vec3 sums the columns of mat weighted by the lanes of vec.
func (F64) MulMat3Vec3(dst *layout.Vec3[float64], mat *layout.Mat3[float64], vec *layout.Vec3[float64]) {
	acc := load64((*[4]float64)(&mat[0])).Mul(archsimd.BroadcastFloat64x4(vec[0]))
	acc = acc.Add(load64((*[4]float64)(&mat[1])).Mul(archsimd.BroadcastFloat64x4(vec[1])))
	acc = acc.Add(load64((*[4]float64)(&mat[2])).Mul(archsimd.BroadcastFloat64x4(vec[2])))
	maskVec3(acc).Store((*[4]float64)(dst))
}

// MulMat3 accumulates into a local buffer so dst may alias an operand.
func (k F64) MulMat3(dst, lhs, rhs *layout.Mat3[float64]) {
	var out layout.Mat3[float64]
	for c := range out {
		k.MulMat3Vec3(&out[c], lhs, &rhs[c])
	}
	*dst = out
}

func (k F64) AddMat4(dst, lhs, rhs *layout.Mat4[float64]) {
	for c := range dst {
		k.AddVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F64) SubMat4(dst, lhs, rhs *layout.Mat4[float64]) {
	for c := range dst {
		k.SubVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F64) ScaleMat4(dst *layout.Mat4[float64], scale float64, mat *layout.Mat4[float64]) {
	for c := range dst {
		k.ScaleVec4(&dst[c], scale, &mat[c])
	}
}

func (k F64) HadamardMat4(dst, lhs, rhs *layout.Mat4[float64]) {
	for c := range dst {
		k.HadamardVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (F64) MulMat4Vec4(dst *layout.Vec4[float64], mat *layout.Mat4[float64], vec *layout.Vec4[float64]) {
	acc := load64((*[4]float64)(&mat[0])).Mul(archsimd.BroadcastFloat64x4(vec[0]))
	acc = acc.Add(load64((*[4]float64)(&mat[1])).Mul(archsimd.BroadcastFloat64x4(vec[1])))
	acc = acc.Add(load64((*[4]float64)(&mat[2])).Mul(archsimd.BroadcastFloat64x4(vec[2])))
	acc = acc.Add(load64((*[4]float64)(&mat[3])).Mul(archsimd.BroadcastFloat64x4(vec[3])))
	acc.Store((*[4]float64)(dst))
}

func (k F64) MulMat4(dst, lhs, rhs *layout.Mat4[float64]) {
	var out layout.Mat4[float64]
	for c := range out {
		k.MulMat4Vec4(&out[c], lhs, &rhs[c])
	}
	*dst = out
}
