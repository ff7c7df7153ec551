package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"identical", 1, 1, 0, true},
		{"within absolute", 0.1, 0.1 + 1e-7, 1e-6, true},
		{"outside absolute", 0.1, 0.1 + 1e-5, 1e-6, false},
		{"relative for large magnitudes", 1e6, 1e6 + 0.5, 1e-6, true},
		{"nan matches nan", math.NaN(), math.NaN(), 1e-6, true},
		{"nan vs number", math.NaN(), 0, 1e-6, false},
		{"same infinity", math.Inf(1), math.Inf(1), 1e-6, true},
		{"opposite infinity", math.Inf(1), math.Inf(-1), 1e-6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearlyEqual(tt.a, tt.b, tt.eps))
		})
	}
}

func TestTol(t *testing.T) {
	assert.Greater(t, Tol[float32](), Tol[float64](), "float32 tolerance should be looser")
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float32{1, 2, 3}, []float32{1, 2.5, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	_, err = MaxAbsDiff([]float64{1}, []float64{1, 2})
	assert.Error(t, err, "length mismatch")
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-13}, 1e-12)
	RequireFinite(t, []float32{0, -1, 3.5})
}
