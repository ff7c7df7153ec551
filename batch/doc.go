// Package batch provides flat arrays of 3-wide vectors for bulk processing
// and for exchange with numeric code that expects contiguous memory.
//
// A Vec3s stores its vectors interleaved with a stride of four elements,
// the same padded layout math3d.Vec3 uses, so element 4*i+3 of the backing
// slice is always zero. Bulk operations run over the whole backing slice
// with github.com/cwbudde/algo-vecmath (float64) and
// github.com/viterin/vek/vek32 (float32).
package batch
