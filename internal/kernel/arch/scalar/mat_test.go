package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/layout"
	"github.com/cwbudde/algo-math3d/internal/testutil"
)

func identity3[T layout.Float]() layout.Mat3[T] {
	return layout.Mat3[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
}

func identity4[T layout.Float]() layout.Mat4[T] {
	return layout.Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func TestMulMat3Vec3(t *testing.T) {
	// Columns (1,4,7), (2,5,8), (3,6,9): row-major [[1 2 3] [4 5 6] [7 8 9]].
	m := layout.Mat3[float64]{{1, 4, 7, 0}, {2, 5, 8, 0}, {3, 6, 9, 0}}
	v := layout.Vec3[float64]{1, 0, -1, 0}

	var out layout.Vec3[float64]
	MulMat3Vec3(&out, &m, &v)
	assert.Equal(t, layout.Vec3[float64]{-2, -2, -2, 0}, out)
}

func TestMulMat3Identity(t *testing.T) {
	rng := testutil.Rand(3)
	m := testutil.RandomMat3[float32](rng, 5)
	id := identity3[float32]()

	var out layout.Mat3[float32]
	MulMat3(&out, &m, &id)
	assert.Equal(t, m, out)
	MulMat3(&out, &id, &m)
	assert.Equal(t, m, out)
}

func TestMulMat3Aliasing(t *testing.T) {
	rng := testutil.Rand(4)
	a := testutil.RandomMat3[float64](rng, 5)
	b := testutil.RandomMat3[float64](rng, 5)

	var want layout.Mat3[float64]
	MulMat3(&want, &a, &b)

	got := a
	MulMat3(&got, &got, &b)
	require.True(t, CompareEqMat3(&got, &want))
}

func TestMulMat4(t *testing.T) {
	// Translation by (1,2,3) applied twice is a translation by (2,4,6).
	tr := identity4[float64]()
	tr[3] = layout.Vec4[float64]{1, 2, 3, 1}

	var out layout.Mat4[float64]
	MulMat4(&out, &tr, &tr)
	assert.Equal(t, layout.Vec4[float64]{2, 4, 6, 1}, out[3])

	p := layout.Vec4[float64]{1, 1, 1, 1}
	var moved layout.Vec4[float64]
	MulMat4Vec4(&moved, &tr, &p)
	assert.Equal(t, layout.Vec4[float64]{2, 3, 4, 1}, moved)
}

func TestTranspose(t *testing.T) {
	m3 := layout.Mat3[float64]{{1, 4, 7, 0}, {2, 5, 8, 0}, {3, 6, 9, 0}}
	TransposeMat3(&m3, &m3)
	assert.Equal(t, layout.Mat3[float64]{{1, 2, 3, 0}, {4, 5, 6, 0}, {7, 8, 9, 0}}, m3)

	rng := testutil.Rand(5)
	m4 := testutil.RandomMat4[float32](rng, 5)
	var tt, back layout.Mat4[float32]
	TransposeMat4(&tt, &m4)
	TransposeMat4(&back, &tt)
	assert.Equal(t, m4, back)
	assert.Equal(t, m4[1][2], tt[2][1])
}

func TestMatElementwise(t *testing.T) {
	a := layout.Mat3[float64]{{1, 2, 3, 0}, {4, 5, 6, 0}, {7, 8, 9, 0}}
	b := identity3[float64]()

	var out layout.Mat3[float64]
	AddMat3(&out, &a, &b)
	assert.Equal(t, layout.Mat3[float64]{{2, 2, 3, 0}, {4, 6, 6, 0}, {7, 8, 10, 0}}, out)
	SubMat3(&out, &a, &a)
	assert.Equal(t, layout.Mat3[float64]{}, out)
	HadamardMat3(&out, &a, &b)
	assert.Equal(t, layout.Mat3[float64]{{1, 0, 0, 0}, {0, 5, 0, 0}, {0, 0, 9, 0}}, out)
	ScaleMat3(&out, 2, &b)
	assert.Equal(t, layout.Mat3[float64]{{2, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 2, 0}}, out)

	c := identity4[float32]()
	var out4 layout.Mat4[float32]
	AddMat4(&out4, &c, &c)
	ScaleMat4(&out4, 0.5, &out4)
	assert.True(t, CompareEqMat4(&out4, &c))
	HadamardMat4(&out4, &c, &c)
	assert.Equal(t, c, out4)
	SubMat4(&out4, &c, &c)
	assert.Equal(t, layout.Mat4[float32]{}, out4)
}
