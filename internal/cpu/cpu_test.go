package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIMDLevel_String(t *testing.T) {
	tests := []struct {
		level SIMDLevel
		want  string
	}{
		{SIMDNone, "scalar"},
		{SIMDSSE, "sse"},
		{SIMDAVX, "avx"},
		{SIMDLevel(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"scalar always supported", Features{}, SIMDNone, true},
		{"sse with SSE4.1 and AVX", Features{HasSSE41: true, HasAVX: true}, SIMDSSE, true},
		{"sse without VEX encoding", Features{HasSSE41: true}, SIMDSSE, false},
		{"sse without SSE4.1", Features{HasAVX: true}, SIMDSSE, false},
		{"avx with AVX2", Features{HasAVX: true, HasAVX2: true}, SIMDAVX, true},
		{"avx without AVX2", Features{HasAVX: true}, SIMDAVX, false},
		{"avx without AVX", Features{HasSSE2: true, HasSSE41: true}, SIMDAVX, false},
		{"force generic blocks avx", Features{HasAVX: true, HasAVX2: true, HasSSE41: true, ForceGeneric: true}, SIMDAVX, false},
		{"force generic blocks sse", Features{HasAVX: true, HasSSE41: true, ForceGeneric: true}, SIMDSSE, false},
		{"force generic allows scalar", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX: true}, SIMDLevel(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Supports(tt.features, tt.level))
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX: true, Architecture: "test"})
	got := DetectFeatures()
	require.True(t, got.HasAVX, "forced features not returned: %+v", got)
	require.Equal(t, "test", got.Architecture)
	assert.False(t, got.HasSSE41)

	ResetDetection()
	assert.Equal(t, runtime.GOARCH, DetectFeatures().Architecture)
}

func TestDetectFeatures_Stable(t *testing.T) {
	first := DetectFeatures()
	assert.Equal(t, first, DetectFeatures(), "detection not cached")
	if runtime.GOARCH == "amd64" {
		assert.True(t, first.HasSSE2, "SSE2 is part of the amd64 baseline")
	}
}
