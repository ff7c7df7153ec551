package geometry

import (
	"github.com/cwbudde/algo-math3d"
)

// Plane is the plane through Point with normal Normal. Distances are in
// units of |Normal|; NewPlane keeps Normal at unit length.
type Plane[T math3d.Float] struct {
	Point  math3d.Vec3[T]
	Normal math3d.Vec3[T]
}

// NewPlane returns the plane through point with the given normal. The normal
// is normalized and must not be zero.
func NewPlane[T math3d.Float](point, normal math3d.Vec3[T]) Plane[T] {
	return Plane[T]{Point: point, Normal: normal.Normalize()}
}

// XYPlane returns the plane z = 0 with normal +z.
func XYPlane[T math3d.Float]() Plane[T] {
	return Plane[T]{Normal: math3d.NewVec3[T](0, 0, 1)}
}

// SignedDistanceTo returns the distance from p to the plane, positive on the
// side Normal points to.
func (pl Plane[T]) SignedDistanceTo(p math3d.Vec3[T]) T {
	return p.Sub(pl.Point).Dot(pl.Normal)
}

// DistanceTo returns the unsigned distance from p to the plane.
func (pl Plane[T]) DistanceTo(p math3d.Vec3[T]) T {
	d := pl.SignedDistanceTo(p)
	if d < 0 {
		return -d
	}
	return d
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane[T]) Project(p math3d.Vec3[T]) math3d.Vec3[T] {
	return p.Sub(pl.Normal.Scale(pl.SignedDistanceTo(p)))
}

// String implements fmt.Stringer.
func (pl Plane[T]) String() string {
	return "Plane(point: " + pl.Point.String() + ", normal: " + pl.Normal.String() + ")"
}
