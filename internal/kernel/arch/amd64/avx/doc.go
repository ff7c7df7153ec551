//go:build amd64 && goexperiment.simd && !purego

// Package avx implements the 256-bit register kernel set.
//
// A float64 Vec3, Vec4 or matrix column fits one Float64x4 register. float32
// vectors keep the 128-bit operations of the sse kernel set, and the
// element-wise Mat4 kernels process two float32 columns per Float32x8
// register. Padding and alignment rules are the same as in the sse kernel
// set.
package avx
