package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/testutil"
)

func TestMat3Layout(t *testing.T) {
	m := NewMat3(
		1.0, 2.0, 3.0,
		4.0, 5.0, 6.0,
		7.0, 8.0, 9.0,
	)

	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 7.0, m.At(2, 0))
	assert.Equal(t, NewVec3(1.0, 4.0, 7.0), m.Col(0))
	assert.Equal(t, NewVec3(4.0, 5.0, 6.0), m.Row(1))
	assert.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.Elements())
	assert.Equal(t, [3][4]float64{{1, 4, 7, 0}, {2, 5, 8, 0}, {3, 6, 9, 0}}, m.Buffer())

	data := m.Data()
	require.Len(t, data, 12)
	assert.Equal(t, 2.0, data[4])
	assert.Equal(t, 0.0, data[3])
	data[8] = 30
	assert.Equal(t, 30.0, m.At(0, 2))

	assert.Panics(t, func() { _ = m.At(3, 0) })
	assert.Panics(t, func() { m.Set(0, 3, 1) })

	m.Set(2, 2, -1)
	assert.Equal(t, -1.0, m.Col(2).Z())
}

func TestMat3PaddingWrittenThroughData(t *testing.T) {
	m := Mat3Identity[float64]()
	data := m.Data()
	data[3], data[7], data[11] = 5, -5, 9

	for i := 0; i < 3; i++ {
		col := m.Col(i)
		testutil.RequirePaddingZero(t, &col.buf)
	}
	assert.Equal(t, [3][4]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}, m.Buffer())

	v := m.MulVec(NewVec3(1.0, 2.0, 3.0))
	testutil.RequirePaddingZero(t, &v.buf)
	assert.Equal(t, NewVec3(1.0, 2.0, 3.0), v)

	p := m.Mul(m).Add(m).Transpose()
	for i := 0; i < 3; i++ {
		col := p.Col(i)
		assert.Zero(t, p.buf[i][3], "column %d", i)
		testutil.RequirePaddingZero(t, &col.buf)
	}

	m4 := Mat4FromMat3(m, NewVec3(1.0, 2.0, 3.0))
	assert.Equal(t, NewVec4(0.0, 0.0, 0.0, 1.0), m4.Row(3))
}

func TestMat3FromSlice(t *testing.T) {
	m, err := Mat3FromSlice([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, NewMat3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9), m)

	_, err = Mat3FromSlice([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Panics(t, func() { MustMat3FromSlice(make([]float64, 12)) })

	cols := Mat3FromColumns(NewVec3(1.0, 4.0, 7.0), NewVec3(2.0, 5.0, 8.0), NewVec3(3.0, 6.0, 9.0))
	assert.Equal(t, MustMat3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}), cols)
}

func TestMat3Arithmetic(t *testing.T) {
	a := NewMat3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := NewMat3[float32](9, 8, 7, 6, 5, 4, 3, 2, 1)

	assert.Equal(t, NewMat3[float32](10, 10, 10, 10, 10, 10, 10, 10, 10), a.Add(b))
	assert.Equal(t, NewMat3[float32](-8, -6, -4, -2, 0, 2, 4, 6, 8), a.Sub(b))
	assert.Equal(t, NewMat3[float32](2, 4, 6, 8, 10, 12, 14, 16, 18), a.Scale(2))
	assert.Equal(t, NewMat3[float32](9, 16, 21, 24, 25, 24, 21, 16, 9), a.Hadamard(b))
	assert.Equal(t, NewMat3[float32](30, 24, 18, 84, 69, 54, 138, 114, 90), a.Mul(b))
	assert.Equal(t, NewVec3[float32](14, 32, 50), a.MulVec(NewVec3[float32](1, 2, 3)))

	assert.Equal(t, a, a.Mul(Mat3Identity[float32]()))
	assert.Equal(t, Mat3Zeros[float32](), a.Mul(Mat3Zeros[float32]()))
}

func TestMat3Transpose(t *testing.T) {
	m := NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)
	want := NewMat3(1.0, 4.0, 7.0, 2.0, 5.0, 8.0, 3.0, 6.0, 9.0)

	assert.Equal(t, want, m.Transpose())
	assert.Equal(t, NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0), m, "Transpose must not mutate the receiver")

	m.TransposeInPlace()
	assert.Equal(t, want, m)
	assert.Equal(t, [3][4]float64{{1, 2, 3, 0}, {4, 5, 6, 0}, {7, 8, 9, 0}}, m.Buffer())
}

func TestMat3Rotations(t *testing.T) {
	x := NewVec3(1.0, 0.0, 0.0)
	y := NewVec3(0.0, 1.0, 0.0)
	z := NewVec3(0.0, 0.0, 1.0)
	quarter := math.Pi / 2

	assert.True(t, Mat3RotationZ(quarter).MulVec(x).Equal(y))
	assert.True(t, Mat3RotationX(quarter).MulVec(y).Equal(z))
	assert.True(t, Mat3RotationY(quarter).MulVec(z).Equal(x))

	r := Mat3RotationX(0.3).Mul(Mat3RotationY(-1.1)).Mul(Mat3RotationZ(2.0))
	assert.True(t, r.Mul(r.Transpose()).Equal(Mat3Identity[float64]()), "rotations are orthogonal")

	s := Mat3Scale(2.0, 3.0, 4.0)
	assert.Equal(t, NewVec3(2.0, 3.0, 4.0), s.MulVec(NewVec3(1.0, 1.0, 1.0)))
}

func TestMatProperties(t *testing.T) {
	rng := testutil.Rand(5)
	for i := 0; i < 32; i++ {
		a := Mat3[float64]{buf: testutil.RandomMat3[float64](rng, 1)}
		b := Mat3[float64]{buf: testutil.RandomMat3[float64](rng, 1)}
		c := Mat3[float64]{buf: testutil.RandomMat3[float64](rng, 1)}
		v := Vec3[float64]{buf: testutil.RandomVec3[float64](rng, 1)}

		assert.True(t, a.Add(b).Equal(b.Add(a)))
		assert.True(t, a.Hadamard(b).Equal(b.Hadamard(a)))
		assert.True(t, a.Mul(b).Transpose().Equal(b.Transpose().Mul(a.Transpose())))
		assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
		assert.True(t, a.Mul(b).MulVec(v).Equal(a.MulVec(b.MulVec(v))))

		ab := a.Mul(b)
		for col := range ab.buf {
			testutil.RequirePaddingZero(t, &ab.buf[col])
		}

		p := Mat4[float64]{buf: testutil.RandomMat4[float64](rng, 1)}
		q := Mat4[float64]{buf: testutil.RandomMat4[float64](rng, 1)}
		w := Vec4[float64]{buf: testutil.RandomVec4[float64](rng, 1)}
		assert.True(t, p.Mul(q).Transpose().Equal(q.Transpose().Mul(p.Transpose())))
		assert.True(t, p.Mul(q).MulVec(w).Equal(p.MulVec(q.MulVec(w))))
		assert.True(t, p.Sub(q).Add(q).Equal(p))
	}
}

func TestMat4(t *testing.T) {
	a := NewMat4[float32](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	assert.Equal(t, float32(8), a.At(1, 3))
	assert.Equal(t, NewVec4[float32](4, 8, 12, 16), a.Col(3))
	assert.Equal(t, NewVec4[float32](9, 10, 11, 12), a.Row(2))
	assert.Equal(t, a, a.Mul(Mat4Identity[float32]()))
	assert.Equal(t, NewVec4[float32](10, 26, 42, 58), a.MulVec(NewVec4[float32](1, 1, 1, 1)))
	assert.Equal(t, a.Scale(2), a.Add(a))
	assert.Equal(t, Mat4Zeros[float32](), a.Sub(a))
	assert.Equal(t, NewMat4Diag[float32](1, 36, 121, 256), a.Hadamard(Mat4Identity[float32]()).Hadamard(a))

	tr := a.Transpose()
	assert.Equal(t, a.Row(0), tr.Col(0))
	a.TransposeInPlace()
	assert.Equal(t, tr, a)

	m, err := Mat4FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 5.0, m.Data()[1])
	assert.Len(t, m.Elements(), 16)
	assert.Equal(t, [4]float64{1, 5, 9, 13}, m.Buffer()[0])
	assert.Equal(t, m, Mat4FromColumns(m.Col(0), m.Col(1), m.Col(2), m.Col(3)))

	_, err = Mat4FromSlice(make([]float64, 9))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Panics(t, func() { MustMat4FromSlice(make([]float32, 15)) })
}

func TestMat4Transforms(t *testing.T) {
	tr := Mat4Translation(1.0, 2.0, 3.0)
	assert.Equal(t, NewVec3(2.0, 3.0, 4.0), tr.TransformPoint(NewVec3(1.0, 1.0, 1.0)))
	assert.Equal(t, NewVec4(1.0, 1.0, 1.0, 0.0), tr.MulVec(NewVec4(1.0, 1.0, 1.0, 0.0)), "directions ignore translation")

	m := Mat4FromMat3(Mat3RotationZ(math.Pi/2), NewVec3(1.0, 2.0, 3.0))
	assert.True(t, m.TransformPoint(NewVec3(1.0, 0.0, 0.0)).Equal(NewVec3(1.0, 3.0, 3.0)))
	assert.Equal(t, 1.0, m.At(3, 3))
	assert.Equal(t, 0.0, m.At(3, 0))
}

func TestMatString(t *testing.T) {
	assert.Equal(t, "Matrix3d((1, 2, 3), (4, 5, 6), (7, 8, 9))",
		NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0).String())
	assert.Equal(t, "Matrix4f((1, 0, 0, 0.5), (0, 1, 0, 0), (0, 0, 1, 0), (0, 0, 0, 1))",
		Mat4Translation[float32](0.5, 0, 0).String())
}
