//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-math3d/internal/kernel/arch/amd64/sse"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// F32 is the single-precision kernel set. Vector kernels are the 128-bit
// ones; the element-wise Mat4 kernels are overridden with 256-bit forms.
type F32 struct {
	sse.F32
}

func (F32) AddMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	d, a, b := mat4Pairs(dst), mat4Pairs(lhs), mat4Pairs(rhs)
	for p := range d {
		archsimd.LoadFloat32x8(&a[p]).Add(archsimd.LoadFloat32x8(&b[p])).Store(&d[p])
	}
}

func (F32) SubMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	d, a, b := mat4Pairs(dst), mat4Pairs(lhs), mat4Pairs(rhs)
	for p := range d {
		archsimd.LoadFloat32x8(&a[p]).Sub(archsimd.LoadFloat32x8(&b[p])).Store(&d[p])
	}
}

func (F32) ScaleMat4(dst *layout.Mat4[float32], scale float32, mat *layout.Mat4[float32]) {
	s := archsimd.BroadcastFloat32x8(scale)
	d, m := mat4Pairs(dst), mat4Pairs(mat)
	for p := range d {
		s.Mul(archsimd.LoadFloat32x8(&m[p])).Store(&d[p])
	}
}

func (F32) HadamardMat4(dst, lhs, rhs *layout.Mat4[float32]) {
	d, a, b := mat4Pairs(dst), mat4Pairs(lhs), mat4Pairs(rhs)
	for p := range d {
		archsimd.LoadFloat32x8(&a[p]).Mul(archsimd.LoadFloat32x8(&b[p])).Store(&d[p])
	}
}
