package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise[float64](42, 1.0, 64)
	b := DeterministicNoise[float64](42, 1.0, 64)
	require.Len(t, a, 64)
	assert.Equal(t, a, b, "noise not deterministic")
	for i := range a {
		assert.GreaterOrEqual(t, a[i], -1.0, "a[%d]", i)
		assert.Less(t, a[i], 1.0, "a[%d]", i)
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise[float32](1, 1.0, 16)
	b := DeterministicNoise[float32](2, 1.0, 16)
	assert.NotEqual(t, a, b, "different seeds produced identical noise")
}

func TestRandomVec3Padding(t *testing.T) {
	rng := Rand(7)
	for range 100 {
		v := RandomVec3[float32](rng, 10)
		RequirePaddingZero(t, &v)
	}
	m := RandomMat3[float64](rng, 10)
	for c := range m {
		RequirePaddingZero(t, &m[c])
	}
}
