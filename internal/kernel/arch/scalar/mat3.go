package scalar

import "github.com/cwbudde/algo-math3d/internal/layout"

func AddMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	for c := range dst {
		AddVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func SubMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	for c := range dst {
		SubVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

func ScaleMat3[T layout.Float](dst *layout.Mat3[T], scale T, mat *layout.Mat3[T]) {
	for c := range dst {
		ScaleVec3(&dst[c], scale, &mat[c])
	}
}

func HadamardMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	for c := range dst {
		HadamardVec3(&dst[c], &lhs[c], &rhs[c])
	}
}

// MulMat3 computes the matrix product lhs * rhs.
func MulMat3[T layout.Float](dst, lhs, rhs *layout.Mat3[T]) {
	var out layout.Mat3[T]
	for c := 0; c < layout.Mat3Size; c++ {
		MulMat3Vec3(&out[c], lhs, &rhs[c])
	}
	*dst = out
}

// MulMat3Vec3 computes dst = mat * vec: a linear combination of the columns
// of mat weighted by the lanes of vec.
func MulMat3Vec3[T layout.Float](dst *layout.Vec3[T], mat *layout.Mat3[T], vec *layout.Vec3[T]) {
	var out layout.Vec3[T]
	for r := 0; r < layout.Mat3Size; r++ {
		out[r] = mat[0][r]*vec[0] + mat[1][r]*vec[1] + mat[2][r]*vec[2]
	}
	*dst = out
}

// TransposeMat3 writes the transpose of mat to dst. dst may alias mat.
func TransposeMat3[T layout.Float](dst, mat *layout.Mat3[T]) {
	var out layout.Mat3[T]
	for c := 0; c < layout.Mat3Size; c++ {
		for r := 0; r < layout.Mat3Size; r++ {
			out[r][c] = mat[c][r]
		}
	}
	*dst = out
}

// CompareEqMat3 reports whether every entry differs by less than layout.Eps.
func CompareEqMat3[T layout.Float](lhs, rhs *layout.Mat3[T]) bool {
	for c := range lhs {
		if !CompareEqVec3(&lhs[c], &rhs[c]) {
			return false
		}
	}
	return true
}
