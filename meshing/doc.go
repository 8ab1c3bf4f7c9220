// Package meshing implements a binary greedy mesher for 64³ voxel chunks.
//
// A chunk is a cube of side LEN (64 voxels, 262144 total). Voxels are
// 16-bit identifiers; 0 means air. Meshing walks the six axis-aligned face
// directions and emits, per face, a list of merged rectangular Quads that
// cover every exposed (visible) voxel face exactly once.
//
// The hot path is two stages over bit-packed column masks: build a
// visibility mask per (y, z) row per face, then greedily merge set bits
// into rectangles. Triangulation, texturing, and GPU upload are not this
// package's job — see Quad.Vertices for the one documented seam a caller
// uses to turn a quad into geometry.
package meshing
