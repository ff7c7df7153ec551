// Package geometry provides small geometric primitives built on the math3d
// vector types: line segments, planes and axis-aligned bounding boxes.
//
// All values are plain structs with exported fields and are safe to copy.
package geometry
