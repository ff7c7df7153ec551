package math3d

import (
	"strconv"

	"github.com/cwbudde/algo-math3d/internal/kernel"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Quat is a quaternion w + xi + yj + zk, stored (w, x, y, z).
type Quat[T Float] struct {
	buf layout.Quat[T]
}

type (
	Quatf = Quat[float32]
	Quatd = Quat[float64]
)

// NewQuat returns the quaternion w + xi + yj + zk.
func NewQuat[T Float](w, x, y, z T) Quat[T] {
	return Quat[T]{buf: layout.Quat[T]{w, x, y, z}}
}

// QuatIdentity returns the identity rotation 1 + 0i + 0j + 0k.
func QuatIdentity[T Float]() Quat[T] { return NewQuat[T](1, 0, 0, 0) }

// QuatFromSlice builds a quaternion from exactly four elements (w, x, y, z).
func QuatFromSlice[T Float](s []T) (Quat[T], error) {
	if err := checkLen("Quat", layout.QuatSize, len(s)); err != nil {
		return Quat[T]{}, err
	}
	return NewQuat(s[0], s[1], s[2], s[3]), nil
}

// MustQuatFromSlice is like QuatFromSlice but panics on error.
func MustQuatFromSlice[T Float](s []T) Quat[T] {
	q, err := QuatFromSlice(s)
	if err != nil {
		panic(err)
	}
	return q
}

// QuatFromAxisAngle returns the rotation by angle radians about axis. The
// axis is normalized first.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	axis.NormalizeInPlace()
	s, c := sincos(angle / 2)
	return NewQuat(c, s*axis.buf[0], s*axis.buf[1], s*axis.buf[2])
}

// QuatRotationX returns the rotation by angle radians about the x axis.
func QuatRotationX[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return NewQuat(c, s, 0, 0)
}

// QuatRotationY returns the rotation by angle radians about the y axis.
func QuatRotationY[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return NewQuat(c, 0, s, 0)
}

// QuatRotationZ returns the rotation by angle radians about the z axis.
func QuatRotationZ[T Float](angle T) Quat[T] {
	s, c := sincos(angle / 2)
	return NewQuat(c, 0, 0, s)
}

// EulerOrder names the axis sequence of an Euler angle triple. For order
// ABC the resulting rotation is RA * RB * RC, so C is applied first.
type EulerOrder int

const (
	EulerXYZ EulerOrder = iota
	EulerYXZ
	EulerZXY
	EulerZYX
	EulerYZX
	EulerXZY
)

var eulerOrderNames = [...]string{"XYZ", "YXZ", "ZXY", "ZYX", "YZX", "XZY"}

// String returns the axis sequence, such as "ZYX".
func (o EulerOrder) String() string {
	if o < 0 || int(o) >= len(eulerOrderNames) {
		return "EulerOrder(" + strconv.Itoa(int(o)) + ")"
	}
	return eulerOrderNames[o]
}

// QuatFromEuler returns the rotation by the Euler angles x, y and z (in
// radians, about the respective axes) composed in the given order. An
// unknown order yields the identity.
func QuatFromEuler[T Float](x, y, z T, order EulerOrder) Quat[T] {
	s1, c1 := sincos(x / 2)
	s2, c2 := sincos(y / 2)
	s3, c3 := sincos(z / 2)

	switch order {
	case EulerXYZ:
		return NewQuat(
			c1*c2*c3-s1*s2*s3,
			s1*c2*c3+c1*s2*s3,
			c1*s2*c3-s1*c2*s3,
			c1*c2*s3+s1*s2*c3)
	case EulerYXZ:
		return NewQuat(
			c1*c2*c3+s1*s2*s3,
			s1*c2*c3+c1*s2*s3,
			c1*s2*c3-s1*c2*s3,
			c1*c2*s3-s1*s2*c3)
	case EulerZXY:
		return NewQuat(
			c1*c2*c3-s1*s2*s3,
			s1*c2*c3-c1*s2*s3,
			c1*s2*c3+s1*c2*s3,
			c1*c2*s3+s1*s2*c3)
	case EulerZYX:
		return NewQuat(
			c1*c2*c3+s1*s2*s3,
			s1*c2*c3-c1*s2*s3,
			c1*s2*c3+s1*c2*s3,
			c1*c2*s3-s1*s2*c3)
	case EulerYZX:
		return NewQuat(
			c1*c2*c3-s1*s2*s3,
			s1*c2*c3+c1*s2*s3,
			c1*s2*c3+s1*c2*s3,
			c1*c2*s3-s1*s2*c3)
	case EulerXZY:
		return NewQuat(
			c1*c2*c3+s1*s2*s3,
			s1*c2*c3-c1*s2*s3,
			c1*s2*c3-s1*c2*s3,
			c1*c2*s3+s1*s2*c3)
	}
	return QuatIdentity[T]()
}

// QuatFromMat4 returns the unit quaternion of the rotation held in the
// upper-left 3x3 block of m. The translation column and bottom row are
// ignored.
func QuatFromMat4[T Float](m Mat4[T]) Quat[T] {
	return QuatFromMat3(NewMat3(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	))
}

// QuatFromMat3 returns the unit quaternion of the rotation matrix m. The
// solution is built around the largest of w, x, y and z to stay well
// conditioned.
func QuatFromMat3[T Float](m Mat3[T]) Quat[T] {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := 0.5 / sqrt(trace+1)
		return NewQuat(0.25/s, (m21-m12)*s, (m02-m20)*s, (m10-m01)*s)
	case m00 > m11 && m00 > m22:
		s := 2 * sqrt(1+m00-m11-m22)
		return NewQuat((m21-m12)/s, 0.25*s, (m01+m10)/s, (m02+m20)/s)
	case m11 > m22:
		s := 2 * sqrt(1+m11-m00-m22)
		return NewQuat((m02-m20)/s, (m01+m10)/s, 0.25*s, (m12+m21)/s)
	default:
		s := 2 * sqrt(1+m22-m00-m11)
		return NewQuat((m10-m01)/s, (m02+m20)/s, (m12+m21)/s, 0.25*s)
	}
}

// W returns the scalar part w.
func (q Quat[T]) W() T { return q.buf[0] }
// X returns the i coefficient.
func (q Quat[T]) X() T { return q.buf[1] }
// Y returns the j coefficient.
func (q Quat[T]) Y() T { return q.buf[2] }
// Z returns the k coefficient.
func (q Quat[T]) Z() T { return q.buf[3] }

// SetW assigns the scalar part w.
func (q *Quat[T]) SetW(w T) { q.buf[0] = w }
// SetX assigns the i coefficient.
func (q *Quat[T]) SetX(x T) { q.buf[1] = x }
// SetY assigns the j coefficient.
func (q *Quat[T]) SetY(y T) { q.buf[2] = y }
// SetZ assigns the k coefficient.
func (q *Quat[T]) SetZ(z T) { q.buf[3] = z }

// Vec returns the vector part (x, y, z).
func (q Quat[T]) Vec() Vec3[T] { return NewVec3(q.buf[1], q.buf[2], q.buf[3]) }

// Add returns q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	var out Quat[T]
	kernel.AddQuat(&out.buf, &q.buf, &o.buf)
	return out
}

// Sub returns q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	var out Quat[T]
	kernel.SubQuat(&out.buf, &q.buf, &o.buf)
	return out
}

// Scale returns s*q.
func (q Quat[T]) Scale(s T) Quat[T] {
	var out Quat[T]
	kernel.ScaleQuat(&out.buf, s, &q.buf)
	return out
}

// Mul returns the Hamilton product q * o, the rotation o followed by q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	var out Quat[T]
	kernel.MulQuat(&out.buf, &q.buf, &o.buf)
	return out
}

// Dot returns the dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T { return kernel.DotQuat(&q.buf, &o.buf) }

// Length returns the Euclidean norm of q.
func (q Quat[T]) Length() T { return kernel.LengthQuat(&q.buf) }

// LengthSquare returns the squared norm of q.
func (q Quat[T]) LengthSquare() T { return kernel.LengthSquareQuat(&q.buf) }

// Normalize returns q scaled to unit length.
func (q Quat[T]) Normalize() Quat[T] {
	kernel.NormalizeInPlaceQuat(&q.buf)
	return q
}

// NormalizeInPlace scales q to unit length.
func (q *Quat[T]) NormalizeInPlace() { kernel.NormalizeInPlaceQuat(&q.buf) }

// Conjugate returns w - xi - yj - zk.
func (q Quat[T]) Conjugate() Quat[T] {
	var out Quat[T]
	kernel.ConjugateQuat(&out.buf, &q.buf)
	return out
}

// Inverse returns conj(q) / |q|^2.
func (q Quat[T]) Inverse() Quat[T] {
	var out Quat[T]
	kernel.InverseQuat(&out.buf, &q.buf)
	return out
}

// Rotate applies the rotation q to v.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	var out Vec3[T]
	kernel.RotateVec3(&out.buf, &q.buf, &v.buf)
	return out
}

// Equal reports whether every lane of q and o differs by less than Eps.
func (q Quat[T]) Equal(o Quat[T]) bool { return kernel.EqualQuat(&q.buf, &o.buf) }

// NotEqual is the negation of Equal.
func (q Quat[T]) NotEqual(o Quat[T]) bool { return !q.Equal(o) }

// Elements returns a copy of the lanes (w, x, y, z).
func (q Quat[T]) Elements() []T { return []T{q.buf[0], q.buf[1], q.buf[2], q.buf[3]} }

// Buffer returns a copy of the storage of q.
func (q Quat[T]) Buffer() [4]T { return q.buf }

// Data returns a mutable view of the storage of q.
func (q *Quat[T]) Data() []T { return q.buf[:] }

// String implements fmt.Stringer.
func (q Quat[T]) String() string {
	return formatTuple("Quaternion", q.buf[0], q.buf[1], q.buf[2], q.buf[3])
}
