package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/cpu"
)

func TestRegistry_Register(t *testing.T) {
	reg := &Registry{}

	reg.Register(Entry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(Entry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20})

	entries := reg.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "avx", entries[0].Name, "entries sorted by priority")
}

func TestRegistry_Lookup_Priority(t *testing.T) {
	reg := &Registry{}

	// Registered out of order to exercise sorting.
	reg.Register(Entry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(Entry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20})
	reg.Register(Entry{Name: "sse", SIMDLevel: cpu.SIMDSSE, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX2 available - select avx",
			features: cpu.Features{HasSSE41: true, HasAVX: true, HasAVX2: true},
			want:     "avx",
		},
		{
			name:     "AVX without AVX2 - select sse",
			features: cpu.Features{HasSSE41: true, HasAVX: true},
			want:     "sse",
		},
		{
			name:     "SSE4.1 only - select scalar",
			features: cpu.Features{HasSSE2: true, HasSSE41: true},
			want:     "scalar",
		},
		{
			name:     "No SIMD - select scalar",
			features: cpu.Features{},
			want:     "scalar",
		},
		{
			name:     "ForceGeneric - select scalar",
			features: cpu.Features{HasSSE41: true, HasAVX: true, HasAVX2: true, ForceGeneric: true},
			want:     "scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			require.NotNil(t, entry)
			assert.Equal(t, tt.want, entry.Name)
		})
	}
}

func TestRegistry_Lookup_Empty(t *testing.T) {
	reg := &Registry{}
	assert.Nil(t, reg.Lookup(cpu.Features{}))
}

func TestRegistry_Find(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "sse", SIMDLevel: cpu.SIMDSSE, Priority: 10})

	e, ok := reg.Find("sse")
	assert.True(t, ok)
	assert.Equal(t, 10, e.Priority)

	_, ok = reg.Find("neon")
	assert.False(t, ok)
}

func TestRegistry_Supported(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(Entry{Name: "sse", SIMDLevel: cpu.SIMDSSE, Priority: 10})
	reg.Register(Entry{Name: "avx", SIMDLevel: cpu.SIMDAVX, Priority: 20})

	got := reg.Supported(cpu.Features{HasAVX: true, HasAVX2: true})
	assert.Equal(t, []string{"avx", "scalar"}, names(got))
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
