//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"simd/archsimd"
	"unsafe"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

var vec3Mask64 = [4]int64{-1, -1, -1, 0}

func load64(v *[4]float64) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4(v)
}

// maskVec3 clears the padding lane.
func maskVec3(v archsimd.Float64x4) archsimd.Float64x4 {
	return v.AsInt64x4().And(archsimd.LoadInt64x4(&vec3Mask64)).AsFloat64x4()
}

func hsum64(v archsimd.Float64x4) float64 {
	var lanes [4]float64
	v.Store(&lanes)
	return (lanes[0] + lanes[1]) + (lanes[2] + lanes[3])
}

func permute64(v *layout.Vec3[float64], i0, i1, i2 int) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4(&[4]float64{v[i0], v[i1], v[i2], 0})
}

// mat4Pairs views a float32 Mat4 as two pairs of adjacent columns.
func mat4Pairs(m *layout.Mat4[float32]) *[2][8]float32 {
	return (*[2][8]float32)(unsafe.Pointer(m))
}
