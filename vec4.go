package math3d

import (
	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Vec4 is a 4-wide vector, typically a point or direction in homogeneous
// coordinates.
type Vec4[T Float] struct {
	buf layout.Vec4[T]
}

type (
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
)

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{buf: layout.Vec4[T]{x, y, z, w}}
}

// NewVec4FromVec3 extends v with the fourth lane w.
func NewVec4FromVec3[T Float](v Vec3[T], w T) Vec4[T] {
	return NewVec4(v.buf[0], v.buf[1], v.buf[2], w)
}

// Vec4FromSlice builds a vector from exactly four elements.
func Vec4FromSlice[T Float](s []T) (Vec4[T], error) {
	if err := checkLen("Vec4", layout.Vec4Size, len(s)); err != nil {
		return Vec4[T]{}, err
	}
	return NewVec4(s[0], s[1], s[2], s[3]), nil
}

// MustVec4FromSlice is like Vec4FromSlice but panics on error.
func MustVec4FromSlice[T Float](s []T) Vec4[T] {
	v, err := Vec4FromSlice(s)
	if err != nil {
		panic(err)
	}
	return v
}

// X returns the x component.
func (v Vec4[T]) X() T { return v.buf[0] }
// Y returns the y component.
func (v Vec4[T]) Y() T { return v.buf[1] }
// Z returns the z component.
func (v Vec4[T]) Z() T { return v.buf[2] }
// W returns the w component.
func (v Vec4[T]) W() T { return v.buf[3] }

// SetX assigns the x component.
func (v *Vec4[T]) SetX(x T) { v.buf[0] = x }
// SetY assigns the y component.
func (v *Vec4[T]) SetY(y T) { v.buf[1] = y }
// SetZ assigns the z component.
func (v *Vec4[T]) SetZ(z T) { v.buf[2] = z }
// SetW assigns the w component.
func (v *Vec4[T]) SetW(w T) { v.buf[3] = w }

// XYZ drops the fourth lane.
func (v Vec4[T]) XYZ() Vec3[T] { return NewVec3(v.buf[0], v.buf[1], v.buf[2]) }

// At returns lane i. It panics unless 0 <= i < 4.
func (v Vec4[T]) At(i int) T { return v.buf[i] }

// Set assigns lane i. It panics unless 0 <= i < 4.
func (v *Vec4[T]) Set(i int, x T) { v.buf[i] = x }

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	var out Vec4[T]
	kernel.AddVec4(&out.buf, &v.buf, &o.buf)
	return out
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	var out Vec4[T]
	kernel.SubVec4(&out.buf, &v.buf, &o.buf)
	return out
}

// Scale returns s*v.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	var out Vec4[T]
	kernel.ScaleVec4(&out.buf, s, &v.buf)
	return out
}

// Hadamard returns the lane-wise product of v and o.
func (v Vec4[T]) Hadamard(o Vec4[T]) Vec4[T] {
	var out Vec4[T]
	kernel.HadamardVec4(&out.buf, &v.buf, &o.buf)
	return out
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return v.Scale(-1) }

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return kernel.DotVec4(&v.buf, &o.buf) }

// Length returns the Euclidean norm of v.
func (v Vec4[T]) Length() T { return kernel.LengthVec4(&v.buf) }

// LengthSquare returns the squared norm of v.
func (v Vec4[T]) LengthSquare() T { return kernel.LengthSquareVec4(&v.buf) }

// Normalize returns v scaled to unit length.
func (v Vec4[T]) Normalize() Vec4[T] {
	kernel.NormalizeInPlaceVec4(&v.buf)
	return v
}

// NormalizeInPlace scales v to unit length.
func (v *Vec4[T]) NormalizeInPlace() { kernel.NormalizeInPlaceVec4(&v.buf) }

// Lerp returns (1-alpha)*v + alpha*o.
func (v Vec4[T]) Lerp(o Vec4[T], alpha T) Vec4[T] {
	var out Vec4[T]
	kernel.LerpVec4(&out.buf, &v.buf, &o.buf, alpha)
	return out
}

// Equal reports whether every lane of v and o differs by less than Eps.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return kernel.EqualVec4(&v.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (v Vec4[T]) NotEqual(o Vec4[T]) bool { return !v.Equal(o) }

// Elements returns a copy of the four lanes.
func (v Vec4[T]) Elements() []T { return []T{v.buf[0], v.buf[1], v.buf[2], v.buf[3]} }

// Buffer returns a copy of the storage of v.
func (v Vec4[T]) Buffer() [4]T { return v.buf }

// Data returns a mutable view of the storage of v.
func (v *Vec4[T]) Data() []T { return v.buf[:] }

// String implements fmt.Stringer.
func (v Vec4[T]) String() string {
	return formatTuple("Vector4", v.buf[0], v.buf[1], v.buf[2], v.buf[3])
}
