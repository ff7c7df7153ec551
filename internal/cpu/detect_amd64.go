//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads the CPUID flags the kernel tiers depend on. The
// sse tier is VEX-encoded by the compiler and so needs AVX alongside SSE4.1;
// the avx tier needs AVX2 for its lane masks.
func detectFeaturesImpl() Features {
	x86 := cpu.X86
	return Features{
		HasSSE2:      x86.HasSSE2,
		HasSSE41:     x86.HasSSE41,
		HasAVX:       x86.HasAVX && x86.HasOSXSAVE,
		HasAVX2:      x86.HasAVX2,
		HasFMA:       x86.HasFMA,
		Architecture: runtime.GOARCH,
	}
}
