//go:build amd64 && goexperiment.simd && !purego

package sse

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Matrix kernels run column by column through the vector kernels. Products
// accumulate into a local buffer so dst may alias an operand.

func (k F32) AddMat3(dst, lhs, rhs *layout.Mat3[float32]) {
	for c := range dst {
		k.AddVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F32) SubMat3(dst, lhs, rhs *layout.Mat3[float32]) {
	for c := range dst {
		k.SubVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F32) ScaleMat3(dst *layout.Mat3[float32], scale float32, mat *layout.Mat3[float32]) {
	for c := range dst {
		k.ScaleVec3(&dst[c], scale, &mat[c])
	}
}

func (k F32) HadamardMat3(dst, lhs, rhs *layout.Mat3[float32]) {
	for c := range dst {
		k.HadamardVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

// MulMat3Vec3 sums the columns of mat weighted by the lanes of vec.
func (F32) MulMat3Vec3(dst *layout.Vec3[float32], mat *layout.Mat3[float32], vec *layout.Vec3[float32]) {
	acc := load32((*[4]float32)(&mat[0])).Mul(splat32(vec[0]))
	acc = acc.Add(load32((*[4]float32)(&mat[1])).Mul(splat32(vec[1])))
	acc = acc.Add(load32((*[4]float32)(&mat[2])).Mul(splat32(vec[2])))
	maskVec3f32(acc).Store((*[4]float32)(dst))
}

func (k F32) MulMat3(dst, lhs, rhs *layout.Mat3[float32]) {
	var out layout.Mat3[float32]
	for c := range out {
		k.MulMat3Vec3(&out[c], lhs, &rhs[c])
	}
	*dst = out
}

func (k F32) AddMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	for c := range dst {
		k.AddVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F32) SubMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	for c := range dst {
		k.SubVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (k F32) ScaleMat4(dst *layout.Mat4[float32], scale float32, mat *layout.Mat4[float32]) {
	for c := range dst {
		k.ScaleVec4(&dst[c], scale, &mat[c])
	}
}

func (k F32) HadamardMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	for c := range dst {
		k.HadamardVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func (F32) MulMat4Vec4(dst *layout.Vec4[float32], mat *layout.Mat4[float32], vec *layout.Vec4[float32]) {
	var acc archsimd.Float32x4
	for c := range mat {
		col := load32((*[4]float32)(&mat[c])).Mul(splat32(vec[c]))
		if c == 0 {
			acc = col
		} else {
			acc = acc.Add(col)
		}
	}
	acc.Store((*[4]float32)(dst))
}

func (k F32) MulMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	var out layout.Mat4[float32]
	for c := range out {
		k.MulMat4Vec4(&out[c], lhs, &rhs[c])
	}
	*dst = out
}

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

func (F64) MulMat3Vec3(dst *layout.Vec3[float64], mat *layout.Mat3[float64], vec *layout.Vec3[float64]) {
	var accLo, accHi archsimd.Float64x2
	for c := range mat {
		s := splat64(vec[c])
		lo, hi := load64((*[4]float64)(&mat[c]))
		if c == 0 {
			accLo, accHi = lo.Mul(s), hi.Mul(s)
		} else {
			accLo, accHi = accLo.Add(lo.Mul(s)), accHi.Add(hi.Mul(s))
		}
	}
	accLo, accHi = maskVec3f64(accLo, accHi)
	store64((*[4]float64)(dst), accLo, accHi)
}

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
	var accLo, accHi archsimd.Float64x2
	for c := range mat {
		s := splat64(vec[c])
		lo, hi := load64((*[4]float64)(&mat[c]))
		if c == 0 {
			accLo, accHi = lo.Mul(s), hi.Mul(s)
		} else {
			accLo, accHi = accLo.Add(lo.Mul(s)), accHi.Add(hi.Mul(s))
		}
	}
	store64((*[4]float64)(dst), accLo, accHi)
}

func (k F64) MulMat4(dst, lhs, rhs *layout.Mat4[float64]) {
	var out layout.Mat4[float64]
	for c := range out {
		k.MulMat4Vec4(&out[c], lhs, &rhs[c])
	}
	*dst = out
}
