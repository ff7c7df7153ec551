//go:build amd64 && goexperiment.simd && !purego && math3d_avx

package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/amd64/avx"
)

// Backend is the SIMD level of the kernel set bound in this build.
const Backend = cpu.SIMDAVX

type (
	active32 = avx.F32
	active64 = avx.F64
)
