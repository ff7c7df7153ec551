//go:build amd64 && goexperiment.simd && !purego

package avx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/cpu"
	"github.com/cwbudde/algo-math3d/internal/kernel/arch/scalar"
	"github.com/cwbudde/algo-math3d/internal/layout"
	"github.com/cwbudde/algo-math3d/internal/testutil"
)

func requireAVX(t *testing.T) {
	t.Helper()
	if !cpu.Supports(cpu.DetectFeatures(), cpu.SIMDAVX) {
		t.Skip("host cannot execute the avx kernel set")
	}
}

func TestMat4ElementwiseF32_AVX(t *testing.T) {
	requireAVX(t)

	rng := testutil.Rand(21)
	for range 50 {
		a := testutil.RandomMat4[float32](rng, 10)
		b := testutil.RandomMat4[float32](rng, 10)

		var got, want layout.Mat4[float32]
		F32{}.AddMat4(&got, &a, &b)
		scalar.AddMat4(&want, &a, &b)
		require.Equal(t, want, got)

		F32{}.SubMat4(&got, &a, &b)
		scalar.SubMat4(&want, &a, &b)
		require.Equal(t, want, got)

		F32{}.HadamardMat4(&got, &a, &b)
		scalar.HadamardMat4(&want, &a, &b)
		require.Equal(t, want, got)

		F32{}.ScaleMat4(&got, 1.5, &a)
		scalar.ScaleMat4(&want, 1.5, &a)
		require.Equal(t, want, got)
	}
}

func TestCrossVec3F64_AVX(t *testing.T) {
	requireAVX(t)

	x := layout.Vec3[float64]{1, 0, 0, 0}
	y := layout.Vec3[float64]{0, 1, 0, 0}
	var z layout.Vec3[float64]
	F64{}.CrossVec3(&z, &x, &y)
	assert.Equal(t, layout.Vec3[float64]{0, 0, 1, 0}, z)

	// Anti-commutative.
	rng := testutil.Rand(22)
	a := testutil.RandomVec3[float64](rng, 10)
	b := testutil.RandomVec3[float64](rng, 10)
	var ab, ba layout.Vec3[float64]
	F64{}.CrossVec3(&ab, &a, &b)
	F64{}.CrossVec3(&ba, &b, &a)
	for i := 0; i < layout.Vec3Size; i++ {
		assert.Equal(t, ab[i], -ba[i])
	}
}

func TestPaddingStaysZero_AVX(t *testing.T) {
	requireAVX(t)

	v := layout.Vec3[float64]{1, 2, 3, 0}
	var out layout.Vec3[float64]
	F64{}.ScaleVec3(&out, math.Inf(1), &v)
	testutil.RequirePaddingZero(t, &out)

	m := layout.Mat3[float64]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
	in := layout.Vec3[float64]{math.Inf(1), 0, 0, 0}
	F64{}.MulMat3Vec3(&out, &m, &in)
	testutil.RequirePaddingZero(t, &out)

	var zero layout.Vec3[float64]
	F64{}.NormalizeInPlaceVec3(&zero)
	testutil.RequirePaddingZero(t, &zero)
}

func TestAgainstScalar_AVX(t *testing.T) {
	requireAVX(t)

	rng := testutil.Rand(23)
	tol := testutil.Tol[float64]()

	for range 200 {
		a := testutil.RandomVec4[float64](rng, 10)
		b := testutil.RandomVec4[float64](rng, 10)
		testutil.RequireNearlyEqual(t, F64{}.DotVec4(&a, &b), scalar.DotVec4(&a, &b), tol)

		var got, want layout.Vec4[float64]
		F64{}.LerpVec4(&got, &a, &b, 0.25)
		scalar.LerpVec4(&want, &a, &b, 0.25)
		testutil.RequireSliceNearlyEqual(t, got[:], want[:], tol)

		m := testutil.RandomMat4[float64](rng, 10)
		F64{}.MulMat4Vec4(&got, &m, &a)
		scalar.MulMat4Vec4(&want, &m, &a)
		testutil.RequireSliceNearlyEqual(t, got[:], want[:], tol)
	}
}
