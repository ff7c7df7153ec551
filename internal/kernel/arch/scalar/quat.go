package scalar

import "github.com/cwbudde/algo-math3d/internal/layout"

// MulQuat computes the Hamilton product lhs * rhs. Lanes are (w, x, y, z).
// dst may alias an operand.
func MulQuat[T layout.Float](dst, lhs, rhs *layout.Quat[T]) {
	aw, ax, ay, az := lhs[0], lhs[1], lhs[2], lhs[3]
	bw, bx, by, bz := rhs[0], rhs[1], rhs[2], rhs[3]

	dst[0] = aw*bw - ax*bx - ay*by - az*bz
	dst[1] = aw*bx + ax*bw + ay*bz - az*by
	dst[2] = aw*by - ax*bz + ay*bw + az*bx
	dst[3] = aw*bz + ax*by - ay*bx + az*bw
}

// ConjugateQuat negates the vector part of q.
func ConjugateQuat[T layout.Float](dst, q *layout.Quat[T]) {
	dst[0], dst[1], dst[2], dst[3] = q[0], -q[1], -q[2], -q[3]
}

// InverseQuat computes conj(q) / |q|^2. A zero quaternion yields NaN lanes.
func InverseQuat[T layout.Float](dst, q *layout.Quat[T]) {
	norm := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	ConjugateQuat(dst, q)
	for i := range dst {
		dst[i] /= norm
	}
}

// RotateVec3 rotates vec by q as q * (0, vec) * q^-1. q need not be a unit
// quaternion; the inverse absorbs its scale.
func RotateVec3[T layout.Float](dst *layout.Vec3[T], q *layout.Quat[T], vec *layout.Vec3[T]) {
	p := layout.Quat[T]{0, vec[0], vec[1], vec[2]}
	var inv layout.Quat[T]
	InverseQuat(&inv, q)

	MulQuat(&p, q, &p)
	MulQuat(&p, &p, &inv)
	*dst = layout.Vec3[T]{p[1], p[2], p[3], 0}
}

// CompareEqQuat reports whether every lane differs by less than layout.Eps.
func CompareEqQuat[T layout.Float](lhs, rhs *layout.Quat[T]) bool {
	return CompareEqVec4((*layout.Vec4[T])(lhs), (*layout.Vec4[T])(rhs))
}
