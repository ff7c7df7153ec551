package kernel

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
	"github.com/cwbudde/algo-math3d/internal/layout"
	"github.com/cwbudde/algo-math3d/internal/testutil"
)

func TestMain(m *testing.M) {
	features := cpu.DetectFeatures()
	fmt.Printf("kernel set: %s (host supported: %v)\n", Name(), Supported())
	fmt.Printf("cpu: arch=%s sse4.1=%v avx=%v avx2=%v\n",
		features.Architecture, features.HasSSE41, features.HasAVX, features.HasAVX2)
	if !Supported() {
		fmt.Println("skipping: the compiled kernel set cannot run on this host")
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestBoundBackendIsRegistered(t *testing.T) {
	entry, ok := registry.Global.Find(Name())
	require.True(t, ok, "bound kernel set %q missing from registry", Name())
	assert.Equal(t, Backend, entry.SIMDLevel)

	_, ok = registry.Global.Find("scalar")
	assert.True(t, ok, "scalar reference must always be registered")
}

func TestScenarios(t *testing.T) {
	t.Run("vec3 f32 equality", func(t *testing.T) {
		a := layout.Vec3[float32]{1, 2, 3, 0}
		b := layout.Vec3[float32]{1, 2, 3, 0}
		assert.True(t, EqualVec3(&a, &b))
	})

	t.Run("vec2 f64 arithmetic", func(t *testing.T) {
		a := layout.Vec2[float64]{1, 2}
		b := layout.Vec2[float64]{3, 5}
		var sum, diff layout.Vec2[float64]
		AddVec2(&sum, &a, &b)
		SubVec2(&diff, &a, &b)
		assert.True(t, EqualVec2(&sum, &layout.Vec2[float64]{4, 7}))
		assert.True(t, EqualVec2(&diff, &layout.Vec2[float64]{-2, -3}))
		assert.Equal(t, 13.0, DotVec2(&a, &b))
	})

	t.Run("vec4 f32 orthogonal dot", func(t *testing.T) {
		a := layout.Vec4[float32]{1, 0, 0, 0}
		b := layout.Vec4[float32]{0, 1, 0, 0}
		assert.Equal(t, float32(0), DotVec4(&a, &b))
	})

	t.Run("vec3 f64 cross", func(t *testing.T) {
		x := layout.Vec3[float64]{1, 0, 0, 0}
		y := layout.Vec3[float64]{0, 1, 0, 0}
		var z layout.Vec3[float64]
		CrossVec3(&z, &x, &y)
		assert.True(t, EqualVec3(&z, &layout.Vec3[float64]{0, 0, 1, 0}))
		testutil.RequirePaddingZero(t, &z)
	})
}

func TestAlgebraicProperties(t *testing.T) {
	t.Run("f32", func(t *testing.T) { algebraicProperties[float32](t) })
	t.Run("f64", func(t *testing.T) { algebraicProperties[float64](t) })
}

func algebraicProperties[T layout.Float](t *testing.T) {
	rng := testutil.Rand(31)
	for range 100 {
		a := testutil.RandomVec3[T](rng, 1)
		b := testutil.RandomVec3[T](rng, 1)

		var ab, ba layout.Vec3[T]
		AddVec3(&ab, &a, &b)
		AddVec3(&ba, &b, &a)
		require.True(t, EqualVec3(&ab, &ba), "add not commutative")

		HadamardVec3(&ab, &a, &b)
		HadamardVec3(&ba, &b, &a)
		require.True(t, EqualVec3(&ab, &ba), "hadamard not commutative")

		require.Equal(t, DotVec3(&a, &b), DotVec3(&b, &a), "dot not commutative")

		CrossVec3(&ab, &a, &b)
		CrossVec3(&ba, &b, &a)
		var neg layout.Vec3[T]
		ScaleVec3(&neg, -1, &ba)
		require.True(t, EqualVec3(&ab, &neg), "cross not anti-commutative")

		n := a
		NormalizeInPlaceVec3(&n)
		nn := n
		NormalizeInPlaceVec3(&nn)
		require.True(t, EqualVec3(&n, &nn), "normalize not idempotent")

		require.True(t, EqualVec3(&a, &a), "equality not reflexive")
		require.Equal(t, EqualVec3(&a, &b), EqualVec3(&b, &a), "equality not symmetric")
	}
}

func TestPaddingInvariantAcrossSequence(t *testing.T) {
	rng := testutil.Rand(32)
	v := testutil.RandomVec3[float32](rng, 1)
	w := testutil.RandomVec3[float32](rng, 1)
	m := testutil.RandomMat3[float32](rng, 1)

	for range 20 {
		AddVec3(&v, &v, &w)
		ScaleVec3(&v, 0.5, &v)
		CrossVec3(&w, &v, &w)
		HadamardVec3(&v, &v, &w)
		SubVec3(&v, &w, &v)
		LerpVec3(&v, &v, &w, 0.3)
		MulMat3Vec3(&v, &m, &v)
		NormalizeInPlaceVec3(&v)
		NormalizeInPlaceVec3(&w)

		testutil.RequirePaddingZero(t, &v)
		testutil.RequirePaddingZero(t, &w)
	}

	MulMat3(&m, &m, &m)
	ScaleMat3(&m, 2, &m)
	for c := range m {
		testutil.RequirePaddingZero(t, &m[c])
	}
}

func TestQuatUsesVec4Kernels(t *testing.T) {
	q := layout.Quat[float64]{1, 2, 3, 4}
	assert.Equal(t, 30.0, LengthSquareQuat(&q))

	var sum layout.Quat[float64]
	AddQuat(&sum, &q, &q)
	assert.Equal(t, layout.Quat[float64]{2, 4, 6, 8}, sum)

	NormalizeInPlaceQuat(&sum)
	assert.InDelta(t, 1, LengthQuat(&sum), 1e-12)

	var inv, prod layout.Quat[float64]
	InverseQuat(&inv, &q)
	MulQuat(&prod, &q, &inv)
	assert.True(t, EqualQuat(&prod, &layout.Quat[float64]{1, 0, 0, 0}))
}
