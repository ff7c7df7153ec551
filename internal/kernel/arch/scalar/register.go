package scalar

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
)

// init registers the scalar kernel set with the kernel registry.
//
// Priority: 0 (lowest - the reference every other kernel set is checked against)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "scalar",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		F32:       F32{},
		F64:       F64{},
	})
}
