//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
)

var (
	_ registry.Set[float32] = F32{}
	_ registry.Set[float64] = F64{}
)

// init registers the 256-bit kernel set with the kernel registry.
//
// Priority: 20 (highest - preferred whenever the host supports it)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,
		F32:       F32{},
		F64:       F64{},
	})
}
