//go:build amd64 && goexperiment.simd && !purego && math3d_sse && !math3d_avx

package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/amd64/sse"
)

// Backend is the SIMD level of the kernel set bound in this build.
const Backend = cpu.SIMDSSE

type (
	active32 = sse.F32
	active64 = sse.F64
)
