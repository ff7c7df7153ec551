//go:build amd64 && goexperiment.simd && !purego

// Package sse implements the 128-bit register kernel set.
//
// float32 buffers fill one Float32x4 register. float64 buffers are split
// into a lo half (lanes 0-1) and a hi half (lanes 2-3) held in two Float64x2
// registers and processed in lockstep. Reductions over a Vec3 clear the
// padding lane with a lane-selection mask before the horizontal sum, and the
// padding lane of every Vec3 result is masked back to zero, so a NaN or Inf
// operand never leaks into it.
//
// The instructions are emitted through simd/archsimd, which VEX-encodes
// 128-bit operations; the host therefore needs AVX even for this tier
// (see cpu.Supports). Misaligned buffers are not checked: all loads and
// stores are unaligned-tolerant.
package sse
