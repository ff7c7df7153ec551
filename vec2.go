package math3d

import (
	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Vec2 is a 2-wide vector. Its operations always run on the scalar kernels.
type Vec2[T Float] struct {
	buf layout.Vec2[T]
}

type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
)

// NewVec2 returns the vector (x, y).
func NewVec2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{buf: layout.Vec2[T]{x, y}}
}

// Vec2FromSlice builds a vector from exactly two elements.
func Vec2FromSlice[T Float](s []T) (Vec2[T], error) {
	if err := checkLen("Vec2", layout.Vec2Size, len(s)); err != nil {
		return Vec2[T]{}, err
	}
	return NewVec2(s[0], s[1]), nil
}

// MustVec2FromSlice is like Vec2FromSlice but panics on error.
func MustVec2FromSlice[T Float](s []T) Vec2[T] {
	v, err := Vec2FromSlice(s)
	if err != nil {
		panic(err)
	}
	return v
}

// X returns the x component.
func (v Vec2[T]) X() T { return v.buf[0] }
// Y returns the y component.
func (v Vec2[T]) Y() T { return v.buf[1] }

// SetX assigns the x component.
func (v *Vec2[T]) SetX(x T) { v.buf[0] = x }
// SetY assigns the y component.
func (v *Vec2[T]) SetY(y T) { v.buf[1] = y }

// At returns lane i. It panics if i is not 0 or 1.
func (v Vec2[T]) At(i int) T { return v.buf[i] }

// Set assigns lane i. It panics if i is not 0 or 1.
func (v *Vec2[T]) Set(i int, x T) { v.buf[i] = x }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	var out Vec2[T]
	kernel.AddVec2(&out.buf, &v.buf, &o.buf)
	return out
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	var out Vec2[T]
	kernel.SubVec2(&out.buf, &v.buf, &o.buf)
	return out
}

// Scale returns s*v.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	var out Vec2[T]
	kernel.ScaleVec2(&out.buf, s, &v.buf)
	return out
}

// Hadamard returns the lane-wise product of v and o.
func (v Vec2[T]) Hadamard(o Vec2[T]) Vec2[T] {
	var out Vec2[T]
	kernel.HadamardVec2(&out.buf, &v.buf, &o.buf)
	return out
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return v.Scale(-1) }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return kernel.DotVec2(&v.buf, &o.buf) }

// Length returns the Euclidean norm of v.
func (v Vec2[T]) Length() T { return kernel.LengthVec2(&v.buf) }

// LengthSquare returns the squared norm of v.
func (v Vec2[T]) LengthSquare() T { return kernel.LengthSquareVec2(&v.buf) }

// Normalize returns v scaled to unit length. A zero vector yields NaN lanes.
func (v Vec2[T]) Normalize() Vec2[T] {
	kernel.NormalizeInPlaceVec2(&v.buf)
	return v
}

// NormalizeInPlace scales v to unit length.
func (v *Vec2[T]) NormalizeInPlace() { kernel.NormalizeInPlaceVec2(&v.buf) }

// Equal reports whether every lane of v and o differs by less than Eps.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return kernel.EqualVec2(&v.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (v Vec2[T]) NotEqual(o Vec2[T]) bool { return !v.Equal(o) }

// Elements returns a copy of the lanes.
func (v Vec2[T]) Elements() []T { return []T{v.buf[0], v.buf[1]} }

// Buffer returns the storage of v.
func (v Vec2[T]) Buffer() [2]T { return v.buf }

// Data returns a view of the lanes of v. Writes through it modify v.
func (v *Vec2[T]) Data() []T { return v.buf[:] }

// String implements fmt.Stringer.
func (v Vec2[T]) String() string {
	return formatTuple("Vector2", v.buf[0], v.buf[1])
}
