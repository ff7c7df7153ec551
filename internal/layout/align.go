package layout

import "unsafe"

// Register widths in bytes for the two SIMD tiers.
const (
	SSEAlignment = 16
	AVXAlignment = 32
)

// Alignment returns the start-address alignment a 3- or 4-wide buffer of
// element type T needs for aligned loads in the widest tier that holds the
// whole buffer in one register: 16 bytes for float32 (4x32 bits), 32 bytes
// for float64 (4x64 bits).
func Alignment[T Float]() uintptr {
	var zero T
	return unsafe.Sizeof(zero) * Vec4BufferSize
}

// IsAligned reports whether p is a multiple of align. align must be a power
// of two.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}

// AlignedSlice allocates a slice of n elements whose first element starts at
// a multiple of align bytes. align must be a power of two no smaller than the
// element size.
func AlignedSlice[T Float](n int, align uintptr) []T {
	if n == 0 {
		return []T{}
	}
	var zero T
	size := unsafe.Sizeof(zero)
	extra := int(align / size)
	raw := make([]T, n+extra)

	offset := 0
	for !IsAligned(unsafe.Pointer(&raw[offset]), align) {
		offset++
	}
	return raw[offset : offset+n : offset+n]
}
