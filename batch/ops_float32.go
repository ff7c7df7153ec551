package batch

import (
	"github.com/viterin/vek/vek32"
)

func add32(dst, a, b []float32) {
	tmp := scratch32.Get(len(a) / Stride)
	defer scratch32.Put(tmp)

	copy(tmp.data, a)
	vek32.Add_Inplace(tmp.data, b)
	copy(dst, tmp.data)
}

func sub32(dst, a, b []float32) {
	tmp := scratch32.Get(len(a) / Stride)
	defer scratch32.Put(tmp)

	copy(tmp.data, a)
	vek32.Sub_Inplace(tmp.data, b)
	copy(dst, tmp.data)
}

func scale32(dst []float32, s float32, a []float32) {
	copy(dst, a)
	vek32.MulNumber_Inplace(dst, s)
}

func hadamard32(dst, a, b []float32) {
	tmp := scratch32.Get(len(a) / Stride)
	defer scratch32.Put(tmp)

	copy(tmp.data, a)
	vek32.Mul_Inplace(tmp.data, b)
	copy(dst, tmp.data)
}

func dot32(dst, a, b []float32) {
	for i := range dst {
		lo, hi := i*Stride, i*Stride+Stride
		dst[i] = vek32.Dot(a[lo:hi], b[lo:hi])
	}
}

func lengths32(dst, a []float32) {
	for i := range dst {
		dst[i] = vek32.Norm(a[i*Stride : i*Stride+Stride])
	}
}

func normalize32(a []float32) {
	for i := 0; i < len(a); i += Stride {
		v := a[i : i+Stride]
		n := vek32.Norm(v)
		if n == 0 {
			continue
		}
		vek32.DivNumber_Inplace(v, n)
	}
}
