//go:build amd64 && goexperiment.simd && !purego

package kernel

// Every kernel set the toolchain can build is linked in and registered,
// whichever one is bound, so diagnostics and tests can cross-check them.
import (
	_ "github.com/cwbudde/algo-math3d/internal/kernel/arch/amd64/avx"
	_ "github.com/cwbudde/algo-math3d/internal/kernel/arch/amd64/sse"
)
