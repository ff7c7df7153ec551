package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Rand returns a generator with a fixed seed for reproducible inputs.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise[T layout.Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := Rand(seed)
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

func uniform[T layout.Float](rng *rand.Rand, amplitude float64) T {
	return T((rng.Float64()*2 - 1) * amplitude)
}

// RandomVec2 returns a vector with lanes in [-amplitude, amplitude).
func RandomVec2[T layout.Float](rng *rand.Rand, amplitude float64) layout.Vec2[T] {
	return layout.Vec2[T]{uniform[T](rng, amplitude), uniform[T](rng, amplitude)}
}

// RandomVec3 returns a vector with live lanes in [-amplitude, amplitude) and
// a zero padding lane.
func RandomVec3[T layout.Float](rng *rand.Rand, amplitude float64) layout.Vec3[T] {
	var v layout.Vec3[T]
	for i := 0; i < layout.Vec3Size; i++ {
		v[i] = uniform[T](rng, amplitude)
	}
	return v
}

// RandomVec4 returns a vector with lanes in [-amplitude, amplitude).
func RandomVec4[T layout.Float](rng *rand.Rand, amplitude float64) layout.Vec4[T] {
	var v layout.Vec4[T]
	for i := range v {
		v[i] = uniform[T](rng, amplitude)
	}
	return v
}

// RandomMat3 returns a matrix whose columns come from RandomVec3.
func RandomMat3[T layout.Float](rng *rand.Rand, amplitude float64) layout.Mat3[T] {
	var m layout.Mat3[T]
	for c := range m {
		m[c] = RandomVec3[T](rng, amplitude)
	}
	return m
}

// RandomMat4 returns a matrix whose columns come from RandomVec4.
func RandomMat4[T layout.Float](rng *rand.Rand, amplitude float64) layout.Mat4[T] {
	var m layout.Mat4[T]
	for c := range m {
		m[c] = RandomVec4[T](rng, amplitude)
	}
	return m
}
