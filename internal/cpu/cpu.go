// Package cpu provides CPU feature detection for the math3d kernel sets.
//
// The kernel backend is chosen when the module is built, not here. This
// package answers the complementary question: can the host actually execute
// the backend that was compiled in? It is also used by the kernel registry
// and the diagnostics command to report which kernel sets are usable.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set tier used by a kernel set.
type SIMDLevel int

const (
	// SIMDNone indicates the scalar (pure Go) kernel set.
	SIMDNone SIMDLevel = iota

	// SIMDSSE indicates the 128-bit register kernel set.
	SIMDSSE

	// SIMDAVX indicates the 256-bit register kernel set.
	SIMDAVX
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "scalar"
	case SIMDSSE:
		return "sse"
	case SIMDAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2  bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasSSE41 bool // SSE4.1 (dot-product and blend instructions)
	HasAVX   bool // Advanced Vector Extensions
	HasAVX2  bool // Advanced Vector Extensions 2
	HasFMA   bool // Fused multiply-add

	// Control flags
	ForceGeneric bool // Disable all SIMD kernel sets (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features can execute a kernel set
// of the specified SIMD level.
//
// The 128-bit kernels are emitted through simd/archsimd, which encodes even
// 128-bit operations with VEX prefixes, so SIMDSSE needs AVX as well as SSE4.1.
// SIMDAVX masks 256-bit registers with integer ops, which need AVX2.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE:
		return features.HasSSE41 && features.HasAVX
	case SIMDAVX:
		return features.HasAVX && features.HasAVX2
	default:
		return false
	}
}
