package batch

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

func add64(dst, a, b []float64) {
	tmp := scratch64.Get(len(a) / Stride)
	defer scratch64.Put(tmp)

	copy(tmp.data, a)
	vecmath.AddBlockInPlace(tmp.data, b)
	copy(dst, tmp.data)
}

func sub64(dst, a, b []float64) {
	tmp := scratch64.Get(len(a) / Stride)
	defer scratch64.Put(tmp)

	vecmath.ScaleBlock(tmp.data, b, -1)
	vecmath.AddBlockInPlace(tmp.data, a)
	copy(dst, tmp.data)
}

func scale64(dst []float64, s float64, a []float64) {
	vecmath.ScaleBlock(dst, a, s)
}

func hadamard64(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

func dot64(dst, a, b []float64) {
	tmp := scratch64.Get(len(dst))
	defer scratch64.Put(tmp)

	vecmath.MulBlock(tmp.data, a, b)
	for i := range dst {
		p := tmp.data[i*Stride : i*Stride+Stride]
		dst[i] = (p[0] + p[1]) + (p[2] + p[3])
	}
}

func lengths64(dst, a []float64) {
	dot64(dst, a, a)
	for i, sq := range dst {
		dst[i] = math.Sqrt(sq)
	}
}

func normalize64(a []float64) {
	for i := 0; i < len(a); i += Stride {
		v := a[i : i+Stride]
		n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if n == 0 {
			continue
		}
		vecmath.ScaleBlock(v, v, 1/n)
	}
}

// Lengths2 stores sqrt(xs[i]^2 + ys[i]^2) into dst, for 2-wide vectors held
// as separate component slices.
func Lengths2(dst, xs, ys []float64) {
	checkLen(len(dst), len(xs), len(ys))
	vecmath.Magnitude(dst, xs, ys)
}

// LengthSquares2 stores xs[i]^2 + ys[i]^2 into dst.
func LengthSquares2(dst, xs, ys []float64) {
	checkLen(len(dst), len(xs), len(ys))
	vecmath.Power(dst, xs, ys)
}
