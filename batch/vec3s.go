package batch

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-math3d"
	"github.com/cwbudde/algo-math3d/internal/layout"
)

// Stride is the number of backing elements per vector.
const Stride = 4

// ErrStride is returned when a backing slice is not a whole number of
// padded vectors.
var ErrStride = errors.New("batch: length is not a multiple of the stride")

// Vec3s is a resizable array of 3-wide vectors in padded interleaved layout.
type Vec3s[T math3d.Float] struct {
	data []T
}

// New returns n zero vectors. The backing slice is aligned for the widest
// vector register that holds one padded vector.
func New[T math3d.Float](n int) *Vec3s[T] {
	if n < 0 {
		n = 0
	}
	return &Vec3s[T]{data: alloc[T](n * Stride)}
}

func alloc[T math3d.Float](size int) []T {
	return layout.AlignedSlice[T](size, layout.Alignment[T]())
}

// FromSlice wraps data without copying. data must hold whole padded vectors;
// its padding lanes are cleared.
func FromSlice[T math3d.Float](data []T) (*Vec3s[T], error) {
	if len(data)%Stride != 0 {
		return nil, fmt.Errorf("%w: got %d elements", ErrStride, len(data))
	}
	v := &Vec3s[T]{data: data}
	v.clearPadding(0, v.Len())
	return v, nil
}

// Pack3 copies vs into a new Vec3s.
func Pack3[T math3d.Float](vs []math3d.Vec3[T]) *Vec3s[T] {
	out := New[T](len(vs))
	for i, v := range vs {
		out.Set(i, v)
	}
	return out
}

// Unpack3 copies the vectors of v into dst, growing it as needed, and
// returns the result.
func Unpack3[T math3d.Float](dst []math3d.Vec3[T], v *Vec3s[T]) []math3d.Vec3[T] {
	dst = dst[:0]
	for i := 0; i < v.Len(); i++ {
		dst = append(dst, v.At(i))
	}
	return dst
}

// Data returns the backing slice, Stride elements per vector.
func (v *Vec3s[T]) Data() []T { return v.data }

// Len returns the number of vectors.
func (v *Vec3s[T]) Len() int { return len(v.data) / Stride }

// Cap returns the number of vectors the backing slice can hold.
func (v *Vec3s[T]) Cap() int { return cap(v.data) / Stride }

// At returns vector i.
func (v *Vec3s[T]) At(i int) math3d.Vec3[T] {
	s := v.data[i*Stride : i*Stride+3]
	return math3d.NewVec3(s[0], s[1], s[2])
}

// Set stores x as vector i.
func (v *Vec3s[T]) Set(i int, x math3d.Vec3[T]) {
	copy(v.data[i*Stride:i*Stride+Stride], x.Data())
}

// Resize sets the length to n vectors, reusing existing capacity when
// possible. Vectors beyond the previous length are zero.
func (v *Vec3s[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(v.data)
	size := n * Stride
	if size <= cap(v.data) {
		v.data = v.data[:size]
	} else {
		s := alloc[T](size)
		copy(s, v.data)
		v.data = s
	}
	if size > oldLen {
		clear(v.data[oldLen:])
	}
}

// Zero sets every vector to the origin.
func (v *Vec3s[T]) Zero() { clear(v.data) }

// Copy returns a deep copy of v.
func (v *Vec3s[T]) Copy() *Vec3s[T] {
	s := alloc[T](len(v.data))
	copy(s, v.data)
	return &Vec3s[T]{data: s}
}

func (v *Vec3s[T]) clearPadding(from, to int) {
	for i := from; i < to; i++ {
		v.data[i*Stride+3] = 0
	}
}
