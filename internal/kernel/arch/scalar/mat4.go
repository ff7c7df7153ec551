package scalar

import "github.com/cwbudde/algo-math3d/internal/layout"

func AddMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	for c := range dst {
		AddVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func SubMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	for c := range dst {
		SubVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

func ScaleMat4[T layout.Float](dst *layout.Mat4[T], scale T, mat *layout.Mat4[T]) {
	for c := range dst {
		ScaleVec4(&dst[c], scale, &mat[c])
	}
}

func HadamardMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	for c := range dst {
		HadamardVec4(&dst[c], &lhs[c], &rhs[c])
	}
}

// MulMat4 computes the matrix product lhs * rhs.
func MulMat4[T layout.Float](dst, lhs, rhs *layout.Mat4[T]) {
	var out layout.Mat4[T]
	for c := 0; c < layout.Mat4Size; c++ {
		MulMat4Vec4(&out[c], lhs, &rhs[c])
	}
	*dst = out
}

// MulMat4Vec4 computes dst = mat * vec.
func MulMat4Vec4[T layout.Float](dst *layout.Vec4[T], mat *layout.Mat4[T], vec *layout.Vec4[T]) {
	var out layout.Vec4[T]
	for r := 0; r < layout.Mat4Size; r++ {
		out[r] = mat[0][r]*vec[0] + mat[1][r]*vec[1] + mat[2][r]*vec[2] + mat[3][r]*vec[3]
	}
	*dst = out
}

// TransposeMat4 writes the transpose of mat to dst. dst may alias mat.
func TransposeMat4[T layout.Float](dst, mat *layout.Mat4[T]) {
	var out layout.Mat4[T]
	for c := 0; c < layout.Mat4Size; c++ {
		for r := 0; r < layout.Mat4Size; r++ {
			out[r][c] = mat[c][r]
		}
	}
	*dst = out
}

// CompareEqMat4 reports whether every entry differs by less than layout.Eps.
func CompareEqMat4[T layout.Float](lhs, rhs *layout.Mat4[T]) bool {
	for c := range lhs {
		if !CompareEqVec4(&lhs[c], &rhs[c]) {
			return false
		}
	}
	return true
}
