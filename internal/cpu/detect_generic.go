//go:build !amd64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures.
//
// Only the scalar kernel set exists off amd64, so every SIMD flag stays false.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
