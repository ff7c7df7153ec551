//go:build amd64 && goexperiment.simd && !purego

package sse

import "simd/archsimd"

// Lane-selection masks. They live in memory and are loaded per call so that
// package initialization never executes a vector instruction.
var (
	vec3Mask32   = [4]int32{-1, -1, -1, 0}
	vec3MaskLo64 = [2]int64{-1, -1}
	vec3MaskHi64 = [2]int64{-1, 0}
)

func load32(v *[4]float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4(v)
}

func splat32(s float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4(&[4]float32{s, s, s, s})
}

// maskVec3f32 clears the padding lane.
func maskVec3f32(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.AsInt32x4().And(archsimd.LoadInt32x4(&vec3Mask32)).AsFloat32x4()
}

// hsum32 is the horizontal sum of all four lanes, (l0+l1)+(l2+l3), built
// from two pairwise adds.
func hsum32(v archsimd.Float32x4) float32 {
	pairs := v.AddPairs(v)
	return pairs.AddPairs(pairs).GetElem(0)
}

// yzx32 and zxy32 rotate the live lanes of a Vec3 register in place. The
// padding lane stays in lane 3, so it remains zero.
func yzx32(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(1, 2, 0, 3, v)
}

func zxy32(v archsimd.Float32x4) archsimd.Float32x4 {
	return v.SelectFromPair(2, 0, 1, 3, v)
}

// load64 splits a 4-lane buffer into its lo and hi halves.
func load64(v *[4]float64) (lo, hi archsimd.Float64x2) {
	return archsimd.LoadFloat64x2((*[2]float64)(v[0:2])), archsimd.LoadFloat64x2((*[2]float64)(v[2:4]))
}

func store64(dst *[4]float64, lo, hi archsimd.Float64x2) {
	lo.Store((*[2]float64)(dst[0:2]))
	hi.Store((*[2]float64)(dst[2:4]))
}

func splat64(s float64) archsimd.Float64x2 {
	return archsimd.LoadFloat64x2(&[2]float64{s, s})
}

// maskVec3f64 clears the padding lane, which sits in the upper lane of hi.
func maskVec3f64(lo, hi archsimd.Float64x2) (archsimd.Float64x2, archsimd.Float64x2) {
	lo = lo.AsInt64x2().And(archsimd.LoadInt64x2(&vec3MaskLo64)).AsFloat64x2()
	hi = hi.AsInt64x2().And(archsimd.LoadInt64x2(&vec3MaskHi64)).AsFloat64x2()
	return lo, hi
}

// hsum64 is the horizontal sum of both halves.
func hsum64(lo, hi archsimd.Float64x2) float64 {
	var lanes [2]float64
	lo.Add(hi).Store(&lanes)
	return lanes[0] + lanes[1]
}
