//go:build !amd64 || !goexperiment.simd || purego || (!math3d_sse && !math3d_avx)

package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
)

// Backend is the SIMD level of the kernel set bound in this build.
const Backend = cpu.SIMDNone

type (
	active32 = scalar.F32
	active64 = scalar.F64
)
