package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Tol returns the relative tolerance used to compare results of the same
// operation computed by different kernel sets. Kernel sets may sum lanes in a
// different order, so results agree to a few ulps rather than exactly.
func Tol[T layout.Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 1e-5
	}
	return 1e-12
}

// NearlyEqual reports whether a and b agree within eps, scaled by the larger
// magnitude once it exceeds one. NaNs compare equal to NaNs and infinities
// to infinities of the same sign.
func NearlyEqual(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= eps*scale
}

// RequireNearlyEqual fails t if got and want differ by more than eps.
func RequireNearlyEqual[T layout.Float](t testing.TB, got, want T, eps float64) {
	t.Helper()
	if !NearlyEqual(float64(got), float64(want), eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual[T layout.Float](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !NearlyEqual(float64(got[i]), float64(want[i]), eps) {
			diff := math.Abs(float64(got[i] - want[i]))
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T layout.Float](t testing.TB, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePaddingZero fails t unless the padding lane of v holds exactly zero
// (positive or negative).
func RequirePaddingZero[T layout.Float](t testing.TB, v *layout.Vec3[T]) {
	t.Helper()
	if v[layout.PaddingLane] != 0 {
		t.Fatalf("padding lane = %v, want 0 (buffer %v)", v[layout.PaddingLane], *v)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T layout.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i] - b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
