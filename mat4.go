package math3d

import (
	"strings"
	"unsafe"

	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Mat4 is a 4x4 matrix stored column-major in four Vec4 columns.
type Mat4[T Float] struct {
	buf layout.Mat4[T]
}

type (
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// NewMat4 returns the matrix with the given entries, listed row by row.
func NewMat4[T Float](
	x00, x01, x02, x03,
	x10, x11, x12, x13,
	x20, x21, x22, x23,
	x30, x31, x32, x33 T,
) Mat4[T] {
	return Mat4[T]{buf: layout.Mat4[T]{
		{x00, x10, x20, x30},
		{x01, x11, x21, x31},
		{x02, x12, x22, x32},
		{x03, x13, x23, x33},
	}}
}

// NewMat4Diag returns the diagonal matrix diag(x00, x11, x22, x33).
func NewMat4Diag[T Float](x00, x11, x22, x33 T) Mat4[T] {
	return Mat4[T]{buf: layout.Mat4[T]{
		{x00, 0, 0, 0},
		{0, x11, 0, 0},
		{0, 0, x22, 0},
		{0, 0, 0, x33},
	}}
}

// Mat4FromColumns returns the matrix whose columns are c0 to c3.
func Mat4FromColumns[T Float](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{buf: layout.Mat4[T]{c0.buf, c1.buf, c2.buf, c3.buf}}
}

// Mat4FromSlice builds a matrix from exactly sixteen entries in row-major
// order.
func Mat4FromSlice[T Float](s []T) (Mat4[T], error) {
	if err := checkLen("Mat4", layout.Mat4Size*layout.Mat4Size, len(s)); err != nil {
		return Mat4[T]{}, err
	}
	var m Mat4[T]
	for r := 0; r < layout.Mat4Size; r++ {
		for c := 0; c < layout.Mat4Size; c++ {
			m.buf[c][r] = s[r*layout.Mat4Size+c]
		}
	}
	return m, nil
}

// MustMat4FromSlice is like Mat4FromSlice but panics on error.
func MustMat4FromSlice[T Float](s []T) Mat4[T] {
	m, err := Mat4FromSlice(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity[T Float]() Mat4[T] { return NewMat4Diag[T](1, 1, 1, 1) }

// Mat4Zeros returns the 4x4 zero matrix.
func Mat4Zeros[T Float]() Mat4[T] { return Mat4[T]{} }

// Mat4Translation returns the homogeneous translation by (x, y, z).
func Mat4Translation[T Float](x, y, z T) Mat4[T] {
	m := Mat4Identity[T]()
	m.buf[3] = layout.Vec4[T]{x, y, z, 1}
	return m
}

// Mat4FromMat3 embeds rot in the upper-left block of a homogeneous
// transform whose translation is t.
func Mat4FromMat3[T Float](rot Mat3[T], t Vec3[T]) Mat4[T] {
	var m Mat4[T]
	rot = rot.masked()
	for c := 0; c < layout.Mat3Size; c++ {
		m.buf[c] = layout.Vec4[T](rot.buf[c])
	}
	m.buf[3] = layout.Vec4[T]{t.buf[0], t.buf[1], t.buf[2], 1}
	return m
}

// At returns entry (row, col). It panics unless both indices are in [0, 4).
func (m Mat4[T]) At(row, col int) T { return m.buf[col][row] }

// Set assigns entry (row, col). It panics unless both indices are in [0, 4).
func (m *Mat4[T]) Set(row, col int, x T) { m.buf[col][row] = x }

// Col returns column i.
func (m Mat4[T]) Col(i int) Vec4[T] { return Vec4[T]{buf: m.buf[i]} }

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return NewVec4(m.buf[0][i], m.buf[1][i], m.buf[2][i], m.buf[3][i])
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	kernel.AddMat4(&out.buf, &m.buf, &o.buf)
	return out
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	kernel.SubMat4(&out.buf, &m.buf, &o.buf)
	return out
}

// Scale returns s*m.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	var out Mat4[T]
	kernel.ScaleMat4(&out.buf, s, &m.buf)
	return out
}

// Hadamard returns the lane-wise product of m and o.
func (m Mat4[T]) Hadamard(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	kernel.HadamardMat4(&out.buf, &m.buf, &o.buf)
	return out
}

// Mul returns the matrix product m * o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	kernel.MulMat4(&out.buf, &m.buf, &o.buf)
	return out
}

// MulVec returns the product m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	var out Vec4[T]
	kernel.MulMat4Vec4(&out.buf, &m.buf, &v.buf)
	return out
}

// TransformPoint applies m to the point p (w = 1) and drops w.
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return m.MulVec(NewVec4FromVec3(p, 1)).XYZ()
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	kernel.TransposeMat4(&m.buf, &m.buf)
	return m
}

// TransposeInPlace transposes m.
func (m *Mat4[T]) TransposeInPlace() { kernel.TransposeMat4(&m.buf, &m.buf) }

// Equal reports whether every entry of m and o differs by less than Eps.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return kernel.EqualMat4(&m.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (m Mat4[T]) NotEqual(o Mat4[T]) bool { return !m.Equal(o) }

// Elements returns a copy of the sixteen entries in column-major order.
func (m Mat4[T]) Elements() []T {
	out := make([]T, 0, layout.Mat4BufferSize)
	for c := range m.buf {
		out = append(out, m.buf[c][:]...)
	}
	return out
}

// Buffer returns the column-major storage of m.
func (m Mat4[T]) Buffer() [4][4]T {
	return [4][4]T{m.buf[0], m.buf[1], m.buf[2], m.buf[3]}
}

// Data returns a view of the column-major storage of m: column c starts at
// index 4*c.
func (m *Mat4[T]) Data() []T {
	return unsafe.Slice(&m.buf[0][0], layout.Mat4BufferSize)
}

// String implements fmt.Stringer.
func (m Mat4[T]) String() string {
	rows := make([]string, layout.Mat4Size)
	for r := range rows {
		rows[r] = formatElems(m.buf[0][r], m.buf[1][r], m.buf[2][r], m.buf[3][r])
	}
	return "Matrix4" + suffix[T]() + "(" + strings.Join(rows, ", ") + ")"
}
