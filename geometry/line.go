package geometry

import (
	"github.com/cwbudde/algo-math3d"
)

// Line is the line through Start and End.
type Line[T math3d.Float] struct {
	Start math3d.Vec3[T]
	End   math3d.Vec3[T]
}

// NewLine returns the line through start and end.
func NewLine[T math3d.Float](start, end math3d.Vec3[T]) Line[T] {
	return Line[T]{Start: start, End: end}
}

// Direction returns End - Start.
func (l Line[T]) Direction() math3d.Vec3[T] { return l.End.Sub(l.Start) }

// Length returns the distance between Start and End.
func (l Line[T]) Length() T { return l.Direction().Length() }

// DistanceTo returns the distance from p to the infinite line through Start
// and End. The result is undefined when Start equals End.
func (l Line[T]) DistanceTo(p math3d.Vec3[T]) T {
	a := p.Sub(l.Start)
	b := p.Sub(l.End)
	return a.Cross(b).Length() / l.Direction().Length()
}

// ClosestPoint returns the point on the infinite line nearest to p.
func (l Line[T]) ClosestPoint(p math3d.Vec3[T]) math3d.Vec3[T] {
	d := l.Direction()
	t := p.Sub(l.Start).Dot(d) / d.LengthSquare()
	return l.Start.Lerp(l.End, t)
}

// String implements fmt.Stringer.
func (l Line[T]) String() string {
	return "Line(start: " + l.Start.String() + ", end: " + l.End.String() + ")"
}
