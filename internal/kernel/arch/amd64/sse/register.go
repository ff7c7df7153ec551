//go:build amd64 && goexperiment.simd && !purego

package sse

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
)

var (
	_ registry.Set[float32] = F32{}
	_ registry.Set[float64] = F64{}
)

// init registers the 128-bit kernel set with the kernel registry.
//
// Priority: 10 (medium - preferred over scalar, but lower than AVX)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "sse",
		SIMDLevel: cpu.SIMDSSE,
		Priority:  10,
		F32:       F32{},
		F64:       F64{},
	})
}
