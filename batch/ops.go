package batch

import (
	"github.com/cwbudde/algo-math3d"
)

// The bulk operations below panic with "batch: slice length mismatch" when
// their operands hold different numbers of vectors. dst may alias any
// operand.

// Add stores a + b into dst.
func Add[T math3d.Float](dst, a, b *Vec3s[T]) {
	checkLen(dst.Len(), a.Len(), b.Len())
	switch d := any(dst.data).(type) {
	case []float32:
		add32(d, any(a.data).([]float32), any(b.data).([]float32))
	case []float64:
		add64(d, any(a.data).([]float64), any(b.data).([]float64))
	}
}

// Sub stores a - b into dst.
func Sub[T math3d.Float](dst, a, b *Vec3s[T]) {
	checkLen(dst.Len(), a.Len(), b.Len())
	switch d := any(dst.data).(type) {
	case []float32:
		sub32(d, any(a.data).([]float32), any(b.data).([]float32))
	case []float64:
		sub64(d, any(a.data).([]float64), any(b.data).([]float64))
	}
}

// Scale stores s * a into dst.
func Scale[T math3d.Float](dst *Vec3s[T], s T, a *Vec3s[T]) {
	checkLen(dst.Len(), a.Len())
	switch d := any(dst.data).(type) {
	case []float32:
		scale32(d, float32(s), any(a.data).([]float32))
	case []float64:
		scale64(d, float64(s), any(a.data).([]float64))
	}
	dst.clearPadding(0, dst.Len())
}

// Hadamard stores the lane-wise product of a and b into dst.
func Hadamard[T math3d.Float](dst, a, b *Vec3s[T]) {
	checkLen(dst.Len(), a.Len(), b.Len())
	switch d := any(dst.data).(type) {
	case []float32:
		hadamard32(d, any(a.data).([]float32), any(b.data).([]float32))
	case []float64:
		hadamard64(d, any(a.data).([]float64), any(b.data).([]float64))
	}
	dst.clearPadding(0, dst.Len())
}

// Dot stores the dot product of each vector pair into dst.
func Dot[T math3d.Float](dst []T, a, b *Vec3s[T]) {
	checkLen(len(dst), a.Len(), b.Len())
	switch d := any(dst).(type) {
	case []float32:
		dot32(d, any(a.data).([]float32), any(b.data).([]float32))
	case []float64:
		dot64(d, any(a.data).([]float64), any(b.data).([]float64))
	}
}

// LengthSquares stores the squared length of each vector of a into dst.
func LengthSquares[T math3d.Float](dst []T, a *Vec3s[T]) {
	Dot(dst, a, a)
}

// Lengths stores the length of each vector of a into dst.
func Lengths[T math3d.Float](dst []T, a *Vec3s[T]) {
	checkLen(len(dst), a.Len())
	switch d := any(dst).(type) {
	case []float32:
		lengths32(d, any(a.data).([]float32))
	case []float64:
		lengths64(d, any(a.data).([]float64))
	}
}

// NormalizeInPlace scales every nonzero vector of a to unit length. Zero
// vectors are left unchanged.
func NormalizeInPlace[T math3d.Float](a *Vec3s[T]) {
	switch d := any(a.data).(type) {
	case []float32:
		normalize32(d)
	case []float64:
		normalize64(d)
	}
}

// Transform stores m * v for every vector v of src into dst.
func Transform[T math3d.Float](dst *Vec3s[T], m math3d.Mat3[T], src *Vec3s[T]) {
	checkLen(dst.Len(), src.Len())
	for i := 0; i < src.Len(); i++ {
		dst.Set(i, m.MulVec(src.At(i)))
	}
}

// Rotate stores the rotation of every vector of src by q into dst.
func Rotate[T math3d.Float](dst *Vec3s[T], q math3d.Quat[T], src *Vec3s[T]) {
	Transform(dst, math3d.Mat3FromQuat(q.Normalize()), src)
}

func checkLen(n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic("batch: slice length mismatch")
		}
	}
}
