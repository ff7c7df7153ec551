// Package kernel is the dispatch layer between the math3d types and the
// kernel sets.
//
// Exactly one kernel set is bound per build. The backend_*.go files alias
// active32 and active64 to the F32 and F64 types of the selected package:
//
//	math3d_avx tag                -> avx
//	math3d_sse tag (without avx)  -> sse
//	anything else                 -> scalar
//
// The SIMD tags only take effect on amd64 with GOEXPERIMENT=simd and without
// the purego tag. Every entry point is generic over layout.Float and
// switches on the precision of its type parameter; the compiler resolves the
// switch and the aliased method call statically, so the hot path has neither
// a runtime branch on CPU features nor a function pointer.
//
// Operations that never vary between kernel sets (Vec2, equality,
// transpose, quaternion algebra) call the scalar package directly.
package kernel

import (
	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

type (
	v3f = layout.Vec3[float32]
	v3d = layout.Vec3[float64]
	v4f = layout.Vec4[float32]
	v4d = layout.Vec4[float64]
	m3f = layout.Mat3[float32]
	m3d = layout.Mat3[float64]
	m4f = layout.Mat4[float32]
	m4d = layout.Mat4[float64]
)

// Name returns the name of the kernel set compiled into this build, as
// registered with the kernel registry.
func Name() string {
	return Backend.String()
}

// Supported reports whether the host CPU can execute the kernel set compiled
// into this build. Calling any dispatched entry point on a host where this
// returns false faults with an illegal instruction.
func Supported() bool {
	return cpu.Supports(cpu.DetectFeatures(), Backend)
}
