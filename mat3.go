package math3d

import (
	"strings"
	"unsafe"

	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Mat3 is a 3x3 matrix stored column-major in three padded Vec3 columns.
type Mat3[T Float] struct {
	buf layout.Mat3[T]
}

type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
)

// NewMat3 returns the matrix with the given entries, listed row by row.
func NewMat3[T Float](
	x00, x01, x02,
	x10, x11, x12,
	x20, x21, x22 T,
) Mat3[T] {
	return Mat3[T]{buf: layout.Mat3[T]{
		{x00, x10, x20, 0},
		{x01, x11, x21, 0},
		{x02, x12, x22, 0},
	}}
}

// NewMat3Diag returns the diagonal matrix diag(x00, x11, x22).
func NewMat3Diag[T Float](x00, x11, x22 T) Mat3[T] {
	return NewMat3(
		x00, 0, 0,
		0, x11, 0,
		0, 0, x22,
	)
}

// Mat3FromColumns returns the matrix whose columns are c0, c1 and c2.
func Mat3FromColumns[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{buf: layout.Mat3[T]{c0.buf, c1.buf, c2.buf}}
}

// Mat3FromSlice builds a matrix from exactly nine entries in row-major
// order.
func Mat3FromSlice[T Float](s []T) (Mat3[T], error) {
	if err := checkLen("Mat3", layout.Mat3Size*layout.Mat3Size, len(s)); err != nil {
		return Mat3[T]{}, err
	}
	return NewMat3(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8]), nil
}

// MustMat3FromSlice is like Mat3FromSlice but panics on error.
func MustMat3FromSlice[T Float](s []T) Mat3[T] {
	m, err := Mat3FromSlice(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Float]() Mat3[T] { return NewMat3Diag[T](1, 1, 1) }

// Mat3Zeros returns the 3x3 zero matrix.
func Mat3Zeros[T Float]() Mat3[T] { return Mat3[T]{} }

// Mat3RotationX returns the rotation by angle radians about the x axis.
func Mat3RotationX[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// Mat3RotationY returns the rotation by angle radians about the y axis.
func Mat3RotationY[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// Mat3RotationZ returns the rotation by angle radians about the z axis.
func Mat3RotationZ[T Float](angle T) Mat3[T] {
	s, c := sincos(angle)
	return NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// Mat3Scale returns the scaling matrix diag(sx, sy, sz).
func Mat3Scale[T Float](sx, sy, sz T) Mat3[T] { return NewMat3Diag(sx, sy, sz) }

// Mat3FromQuat returns the rotation matrix of q. q is expected to be a unit
// quaternion.
func Mat3FromQuat[T Float](q Quat[T]) Mat3[T] {
	w, x, y, z := q.buf[0], q.buf[1], q.buf[2], q.buf[3]
	return NewMat3(
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// At returns entry (row, col). It panics unless both indices are in [0, 3).
func (m Mat3[T]) At(row, col int) T { return m.buf[col][:layout.Vec3Size][row] }

// Set assigns entry (row, col). It panics unless both indices are in [0, 3).
func (m *Mat3[T]) Set(row, col int, x T) { m.buf[col][:layout.Vec3Size][row] = x }

// Col returns column i. Its padding lane is zero even if the storage
// padding was written through Data.
func (m Mat3[T]) Col(i int) Vec3[T] {
	c := m.buf[i]
	c[layout.Vec3Size] = 0
	return Vec3[T]{buf: c}
}

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return NewVec3(m.At(i, 0), m.At(i, 1), m.At(i, 2))
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	m, o = m.masked(), o.masked()
	kernel.AddMat3(&out.buf, &m.buf, &o.buf)
	return out
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	m, o = m.masked(), o.masked()
	kernel.SubMat3(&out.buf, &m.buf, &o.buf)
	return out
}

// Scale returns s*m.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	var out Mat3[T]
	m = m.masked()
	kernel.ScaleMat3(&out.buf, s, &m.buf)
	return out
}

// Hadamard returns the entry-wise product of m and o.
func (m Mat3[T]) Hadamard(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	m, o = m.masked(), o.masked()
	kernel.HadamardMat3(&out.buf, &m.buf, &o.buf)
	return out
}

// Mul returns the matrix product m * o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	m, o = m.masked(), o.masked()
	kernel.MulMat3(&out.buf, &m.buf, &o.buf)
	return out
}

// MulVec returns the product m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	var out Vec3[T]
	m = m.masked()
	kernel.MulMat3Vec3(&out.buf, &m.buf, &v.buf)
	return out
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	m = m.masked()
	kernel.TransposeMat3(&m.buf, &m.buf)
	return m
}

// TransposeInPlace transposes m.
func (m *Mat3[T]) TransposeInPlace() { kernel.TransposeMat3(&m.buf, &m.buf) }

// Equal reports whether every entry of m and o differs by less than Eps.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return kernel.EqualMat3(&m.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (m Mat3[T]) NotEqual(o Mat3[T]) bool { return !m.Equal(o) }

// Elements returns a copy of the nine entries in column-major order.
func (m Mat3[T]) Elements() []T {
	out := make([]T, 0, layout.Mat3Size*layout.Mat3Size)
	for c := range m.buf {
		out = append(out, m.buf[c][:layout.Vec3Size]...)
	}
	return out
}

// Buffer returns the padded column-major storage of m.
func (m Mat3[T]) Buffer() [3][4]T {
	m = m.masked()
	return [3][4]T{m.buf[0], m.buf[1], m.buf[2]}
}

// masked returns m with the padding lane of every column cleared.
func (m Mat3[T]) masked() Mat3[T] {
	for c := range m.buf {
		m.buf[c][layout.Vec3Size] = 0
	}
	return m
}

// Data returns a view of the padded column-major storage of m: column c
// starts at index 4*c. The entries at indices 3, 7 and 11 are padding and
// must be left zero.
func (m *Mat3[T]) Data() []T {
	return unsafe.Slice(&m.buf[0][0], layout.Mat3BufferSize)
}

// String renders the matrix row by row.
func (m Mat3[T]) String() string {
	rows := make([]string, layout.Mat3Size)
	for r := range rows {
		row := m.Row(r)
		rows[r] = formatElems(row.buf[0], row.buf[1], row.buf[2])
	}
	return "Matrix3" + suffix[T]() + "(" + strings.Join(rows, ", ") + ")"
}
