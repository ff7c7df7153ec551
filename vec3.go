package math3d

import (
	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Vec3 is a 3-wide vector stored in four lanes. The fourth lane is padding
// and holds zero for the whole life of the value; no method exposes it for
// writing.
type Vec3[T Float] struct {
	buf layout.Vec3[T]
}

type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)

// NewVec3 returns the vector (x, y, z).
func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{buf: layout.Vec3[T]{x, y, z, 0}}
}

// NewVec3Splat returns the vector (x, x, x).
func NewVec3Splat[T Float](x T) Vec3[T] {
	return NewVec3(x, x, x)
}

// NewVec3XY returns the vector (x, y, y).
func NewVec3XY[T Float](x, y T) Vec3[T] {
	return NewVec3(x, y, y)
}

// Vec3FromSlice builds a vector from exactly three elements.
func Vec3FromSlice[T Float](s []T) (Vec3[T], error) {
	if err := checkLen("Vec3", layout.Vec3Size, len(s)); err != nil {
		return Vec3[T]{}, err
	}
	return NewVec3(s[0], s[1], s[2]), nil
}

// MustVec3FromSlice is like Vec3FromSlice but panics on error.
func MustVec3FromSlice[T Float](s []T) Vec3[T] {
	v, err := Vec3FromSlice(s)
	if err != nil {
		panic(err)
	}
	return v
}

// X returns the x component.
func (v Vec3[T]) X() T { return v.buf[0] }
// Y returns the y component.
func (v Vec3[T]) Y() T { return v.buf[1] }
// Z returns the z component.
func (v Vec3[T]) Z() T { return v.buf[2] }

// SetX assigns the x component.
func (v *Vec3[T]) SetX(x T) { v.buf[0] = x }
// SetY assigns the y component.
func (v *Vec3[T]) SetY(y T) { v.buf[1] = y }
// SetZ assigns the z component.
func (v *Vec3[T]) SetZ(z T) { v.buf[2] = z }

// At returns lane i. It panics unless 0 <= i < 3.
func (v Vec3[T]) At(i int) T { return v.buf[:layout.Vec3Size][i] }

// Set assigns lane i. It panics unless 0 <= i < 3.
func (v *Vec3[T]) Set(i int, x T) { v.buf[:layout.Vec3Size][i] = x }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	kernel.AddVec3(&out.buf, &v.buf, &o.buf)
	return out
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	kernel.SubVec3(&out.buf, &v.buf, &o.buf)
	return out
}

// Scale returns s*v.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	var out Vec3[T]
	kernel.ScaleVec3(&out.buf, s, &v.buf)
	return out
}

// Hadamard returns the lane-wise product of v and o.
func (v Vec3[T]) Hadamard(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	kernel.HadamardVec3(&out.buf, &v.buf, &o.buf)
	return out
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return v.Scale(-1) }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return kernel.DotVec3(&v.buf, &o.buf) }

// Cross returns the cross product v x o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	kernel.CrossVec3(&out.buf, &v.buf, &o.buf)
	return out
}

// Length returns the Euclidean norm of v.
func (v Vec3[T]) Length() T { return kernel.LengthVec3(&v.buf) }

// LengthSquare returns the squared norm of v.
func (v Vec3[T]) LengthSquare() T { return kernel.LengthSquareVec3(&v.buf) }

// Normalize returns v scaled to unit length. A zero vector yields NaN lanes.
func (v Vec3[T]) Normalize() Vec3[T] {
	kernel.NormalizeInPlaceVec3(&v.buf)
	return v
}

// NormalizeInPlace scales v to unit length.
func (v *Vec3[T]) NormalizeInPlace() { kernel.NormalizeInPlaceVec3(&v.buf) }

// Lerp returns (1-alpha)*v + alpha*o.
func (v Vec3[T]) Lerp(o Vec3[T], alpha T) Vec3[T] {
	var out Vec3[T]
	kernel.LerpVec3(&out.buf, &v.buf, &o.buf, alpha)
	return out
}

// Equal reports whether every lane of v and o differs by less than Eps.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return kernel.EqualVec3(&v.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (v Vec3[T]) NotEqual(o Vec3[T]) bool { return !v.Equal(o) }

// Elements returns a copy of the three lanes.
func (v Vec3[T]) Elements() []T { return []T{v.buf[0], v.buf[1], v.buf[2]} }

// Buffer returns the padded storage of v. The last lane is always zero.
func (v Vec3[T]) Buffer() [4]T { return v.buf }

// Data returns a view of the three lanes of v. Writes through it modify v;
// the padding lane lies outside the view.
func (v *Vec3[T]) Data() []T { return v.buf[:layout.Vec3Size:layout.Vec3Size] }

// String implements fmt.Stringer.
func (v Vec3[T]) String() string {
	return formatTuple("Vector3", v.buf[0], v.buf[1], v.buf[2])
}

// Dot returns the dot product of a and b.
func Dot[T Float](a, b Vec3[T]) T { return a.Dot(b) }

// Cross returns the cross product a x b.
func Cross[T Float](a, b Vec3[T]) Vec3[T] { return a.Cross(b) }

// Norm returns the Euclidean length of v.
func Norm[T Float](v Vec3[T]) T { return v.Length() }

// SquareNorm returns the squared Euclidean length of v.
func SquareNorm[T Float](v Vec3[T]) T { return v.LengthSquare() }

// Normalize returns v scaled to unit length.
func Normalize[T Float](v Vec3[T]) Vec3[T] { return v.Normalize() }

// NormalizeInPlace scales *v to unit length.
func NormalizeInPlace[T Float](v *Vec3[T]) { v.NormalizeInPlace() }

// Lerp returns (1-alpha)*a + alpha*b.
func Lerp[T Float](a, b Vec3[T], alpha T) Vec3[T] { return a.Lerp(b, alpha) }
