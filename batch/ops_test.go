package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d"
	"github.com/cwbudde/algo-math3d/internal/testutil"
)

func randomVec3s[T math3d.Float](seed int64, n int) (*Vec3s[T], []math3d.Vec3[T]) {
	noise := testutil.DeterministicNoise[T](seed, 1, 3*n)
	vs := make([]math3d.Vec3[T], n)
	for i := range vs {
		vs[i] = math3d.NewVec3(noise[3*i], noise[3*i+1], noise[3*i+2])
	}
	return Pack3(vs), vs
}

func requirePadding[T math3d.Float](t *testing.T, v *Vec3s[T]) {
	t.Helper()
	for i := 0; i < v.Len(); i++ {
		require.Zero(t, v.Data()[i*Stride+3], "padding of vector %d", i)
	}
}

func testElementwise[T math3d.Float](t *testing.T) {
	const n = 37
	a, va := randomVec3s[T](1, n)
	b, vb := randomVec3s[T](2, n)
	dst := New[T](n)

	Add(dst, a, b)
	for i := range va {
		assert.True(t, dst.At(i).Equal(va[i].Add(vb[i])), "add %d", i)
	}
	requirePadding(t, dst)

	Sub(dst, a, b)
	for i := range va {
		assert.True(t, dst.At(i).Equal(va[i].Sub(vb[i])), "sub %d", i)
	}
	requirePadding(t, dst)

	Scale(dst, -3, a)
	for i := range va {
		assert.True(t, dst.At(i).Equal(va[i].Scale(-3)), "scale %d", i)
	}
	requirePadding(t, dst)

	Hadamard(dst, a, b)
	for i := range va {
		assert.True(t, dst.At(i).Equal(va[i].Hadamard(vb[i])), "hadamard %d", i)
	}
	requirePadding(t, dst)

	dots := make([]T, n)
	Dot(dots, a, b)
	lengths := make([]T, n)
	Lengths(lengths, a)
	squares := make([]T, n)
	LengthSquares(squares, a)
	for i := range va {
		testutil.RequireNearlyEqual(t, dots[i], va[i].Dot(vb[i]), testutil.Tol[T]())
		testutil.RequireNearlyEqual(t, lengths[i], va[i].Length(), testutil.Tol[T]())
		testutil.RequireNearlyEqual(t, squares[i], va[i].LengthSquare(), testutil.Tol[T]())
	}

	NormalizeInPlace(a)
	for i := range va {
		assert.True(t, a.At(i).Equal(va[i].Normalize()), "normalize %d", i)
	}
	requirePadding(t, a)
}

func TestElementwise(t *testing.T) {
	t.Run("float32", testElementwise[float32])
	t.Run("float64", testElementwise[float64])
}

func TestAliasing(t *testing.T) {
	a := Pack3([]math3d.Vec3d{math3d.NewVec3(1.0, 2.0, 3.0)})
	b := Pack3([]math3d.Vec3d{math3d.NewVec3(10.0, 20.0, 30.0)})

	Sub(b, a, b)
	assert.Equal(t, math3d.NewVec3(-9.0, -18.0, -27.0), b.At(0))

	Add(a, a, a)
	assert.Equal(t, math3d.NewVec3(2.0, 4.0, 6.0), a.At(0))

	f := Pack3([]math3d.Vec3f{math3d.NewVec3[float32](1, 2, 3)})
	Hadamard(f, f, f)
	assert.Equal(t, math3d.NewVec3[float32](1, 4, 9), f.At(0))
	Sub(f, f, f)
	assert.Equal(t, math3d.NewVec3[float32](0, 0, 0), f.At(0))
}

func TestZeroVectorNormalize(t *testing.T) {
	v := New[float32](2)
	v.Set(1, math3d.NewVec3[float32](0, 3, 4))
	NormalizeInPlace(v)
	assert.Equal(t, math3d.NewVec3[float32](0, 0, 0), v.At(0))
	assert.True(t, v.At(1).Equal(math3d.NewVec3[float32](0, 0.6, 0.8)))
}

func TestScaleByInfinityKeepsPadding(t *testing.T) {
	v := Pack3([]math3d.Vec3d{math3d.NewVec3(1.0, 0.0, -1.0)})
	Scale(v, math.Inf(1), v)
	assert.Equal(t, 0.0, v.Data()[3])
}

func TestTransform(t *testing.T) {
	src := Pack3([]math3d.Vec3d{
		math3d.NewVec3(1.0, 0.0, 0.0),
		math3d.NewVec3(0.0, 2.0, 0.0),
	})
	dst := New[float64](2)

	Transform(dst, math3d.Mat3RotationZ(math.Pi/2), src)
	assert.True(t, dst.At(0).Equal(math3d.NewVec3(0.0, 1.0, 0.0)))
	assert.True(t, dst.At(1).Equal(math3d.NewVec3(-2.0, 0.0, 0.0)))

	Rotate(dst, math3d.QuatRotationZ(math.Pi/2).Scale(2), src)
	assert.True(t, dst.At(0).Equal(math3d.NewVec3(0.0, 1.0, 0.0)))
	requirePadding(t, dst)
}

func TestLengths2(t *testing.T) {
	xs := []float64{3, 0, -5}
	ys := []float64{4, 2, 12}
	dst := make([]float64, 3)

	Lengths2(dst, xs, ys)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{5, 2, 13}, 1e-12)

	LengthSquares2(dst, xs, ys)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{25, 4, 169}, 1e-12)
}

func TestLengthMismatchPanics(t *testing.T) {
	a := New[float64](2)
	b := New[float64](3)

	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { Add(a, a, b) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { Scale(b, 2, a) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { Dot(make([]float64, 1), a, a) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() {
		Lengths2(make([]float64, 2), make([]float64, 2), make([]float64, 1))
	})
}
