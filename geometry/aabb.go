package geometry

import (
	"github.com/cwbudde/algo-math3d"
)

// AABB is an axis-aligned box spanning Min to Max, bounds included.
type AABB[T math3d.Float] struct {
	Min math3d.Vec3[T]
	Max math3d.Vec3[T]
}

// NewAABB returns the smallest box holding both corners a and b, in any
// order.
func NewAABB[T math3d.Float](a, b math3d.Vec3[T]) AABB[T] {
	var box AABB[T]
	for i := 0; i < 3; i++ {
		lo, hi := a.At(i), b.At(i)
		if lo > hi {
			lo, hi = hi, lo
		}
		box.Min.Set(i, lo)
		box.Max.Set(i, hi)
	}
	return box
}

// AABBFromPoints returns the bounds of points. ok is false when points is
// empty.
func AABBFromPoints[T math3d.Float](points []math3d.Vec3[T]) (box AABB[T], ok bool) {
	if len(points) == 0 {
		return box, false
	}
	box = AABB[T]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Expand(p)
	}
	return box, true
}

// Expand returns the smallest box holding b and p.
func (b AABB[T]) Expand(p math3d.Vec3[T]) AABB[T] {
	for i := 0; i < 3; i++ {
		if v := p.At(i); v < b.Min.At(i) {
			b.Min.Set(i, v)
		} else if v > b.Max.At(i) {
			b.Max.Set(i, v)
		}
	}
	return b
}

// Contains reports whether p lies inside b or on its boundary.
func (b AABB[T]) Contains(p math3d.Vec3[T]) bool {
	for i := 0; i < 3; i++ {
		if v := p.At(i); v < b.Min.At(i) || v > b.Max.At(i) {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o overlap. Touching boxes intersect.
func (b AABB[T]) Intersects(o AABB[T]) bool {
	for i := 0; i < 3; i++ {
		if b.Max.At(i) < o.Min.At(i) || o.Max.At(i) < b.Min.At(i) {
			return false
		}
	}
	return true
}

// Center returns the midpoint of b.
func (b AABB[T]) Center() math3d.Vec3[T] { return b.Min.Lerp(b.Max, 0.5) }

// Extents returns the half size of b along each axis.
func (b AABB[T]) Extents() math3d.Vec3[T] { return b.Max.Sub(b.Min).Scale(0.5) }

// Size returns Max - Min.
func (b AABB[T]) Size() math3d.Vec3[T] { return b.Max.Sub(b.Min) }

// String implements fmt.Stringer.
func (b AABB[T]) String() string {
	return "AABB(min: " + b.Min.String() + ", max: " + b.Max.String() + ")"
}
