package meshing

import (
	"sort"

	"greedymesh/internal/profiling"
)

// MeshChanges records which x, y, z planes of a chunk contain any voxel
// edited since the last mesh, as three 64-bit words. A caller accumulates
// these as edits happen and passes the accumulated value to Remesh, which
// dilates each plane by one in both directions (an edit at plane p can
// change the visibility of its immediate neighbours) and re-merges only
// the affected slabs.
type MeshChanges struct {
	x, y, z uint64
}

// Push records a voxel edit at (x, y, z).
func (c *MeshChanges) Push(x, y, z uint32) {
	c.x |= 1 << uint(x)
	c.y |= 1 << uint(y)
	c.z |= 1 << uint(z)
}

// IsEmpty reports whether any edit has been recorded. It inspects only the
// x word — correct only because Push always sets all three words together
// (spec.md §9's documented quirk, kept rather than "fixed" since there's
// nothing to fix: the invariant holds by construction).
func (c MeshChanges) IsEmpty() bool {
	return c.x == 0
}

// Clear resets all recorded changes.
func (c *MeshChanges) Clear() {
	c.x, c.y, c.z = 0, 0, 0
}

func (c MeshChanges) dilate() (xs, ys, zs uint64) {
	dilate := func(w uint64) uint64 {
		return ((w << 1) | (w >> 1) | w) &^ padMask
	}
	return dilate(c.x), dilate(c.y), dilate(c.z)
}

// Remesh incrementally re-meshes only the slabs touched by changes,
// splicing the result into the existing mesh in place. After Remesh
// returns, mesh is equal to what a full Mesh call on the post-edit buffer
// would have produced (spec.md §4.5, the Remesh-equivalence property).
func (m *Mesher) Remesh(voxels *[CUBE]Voxel, opaqueMasks, transparentMasks *[SQUARE]uint64, mesh *Mesh, changes MeshChanges) {
	defer profiling.Track("meshing.Remesh")()
	xs, ys, zs := changes.dilate()
	m.inner.buildVisible(voxels, opaqueMasks, transparentMasks, xs, ys, zs)
	m.mergeAndSplice(voxels, mesh, xs, ys, zs)
}

// RemeshSlow is the no-precomputed-masks counterpart of Remesh. It
// rebuilds the visibility masks of the whole chunk from neighbour ids,
// then re-merges and splices only the dilated change planes.
func (m *Mesher) RemeshSlow(voxels *[CUBE]Voxel, transparents Transparents, mesh *Mesh, changes MeshChanges) {
	defer profiling.Track("meshing.RemeshSlow")()
	xs, ys, zs := changes.dilate()
	m.inner.buildAllVisibleSlow(voxels, transparents)
	m.mergeAndSplice(voxels, mesh, xs, ys, zs)
}

// build_visible (the fast path) covers the interior rows with three
// nested-loop regimes so that each row is handled exactly once: rows with
// z in zs (every y, every x), rows with z outside zs and y in ys (every
// x), and the remaining rows, recomputed only at the x bits in xs —
// matching original_source/src/lib.rs build_visible exactly
// (spec.md §6 "Supplemented features").
func (im *innerMesher) buildVisible(voxels *[CUBE]Voxel, opaqueMasks, transparentMasks *[SQUARE]uint64, xs, ys, zs uint64) {
	invYs := ^ys &^ padMask
	invZs := ^zs &^ padMask

	bitSet64(zs).each(func(z int) {
		for y := 1; y < LEN-1; y++ {
			im.fastRowHandler(voxels, opaqueMasks, transparentMasks, ^uint64(0), y, z)
		}
	})

	bitSet64(invZs).each(func(z int) {
		bitSet64(ys).each(func(y int) {
			im.fastRowHandler(voxels, opaqueMasks, transparentMasks, ^uint64(0), y, z)
		})
	})

	bitSet64(invZs).each(func(z int) {
		bitSet64(invYs).each(func(y int) {
			im.fastRowHandler(voxels, opaqueMasks, transparentMasks, xs, y, z)
		})
	})
}

// mergeAndSplice re-runs the merge routines restricted to the dilated
// planes into m.spliceScratch, then replaces the matching subrange of each
// face's quad list per affected plane index — relying on both lists being
// sorted by that face's primary coordinate (spec.md §4.5). mergeX and
// mergeY each enforce this with a trailing sort; mergeZ's outer loop is z
// itself, so it's sorted by construction and needs no sort.
func (m *Mesher) mergeAndSplice(voxels *[CUBE]Voxel, mesh *Mesh, xs, ys, zs uint64) {
	for _, face := range All {
		m.spliceScratch = m.spliceScratch[:0]

		switch face {
		case PosX, NegX:
			m.spliceScratch = m.inner.mergeX(voxels, xs, face, m.spliceScratch)
			splice(mesh, face, xs, m.spliceScratch, Quad.X)
		case PosY, NegY:
			m.spliceScratch = m.inner.mergeY(voxels, bitSet64(ys), face, m.spliceScratch)
			splice(mesh, face, ys, m.spliceScratch, Quad.Y)
		case PosZ, NegZ:
			m.spliceScratch = m.inner.mergeZ(voxels, bitSet64(zs), face, m.spliceScratch)
			splice(mesh, face, zs, m.spliceScratch, Quad.Z)
		}
	}
}

// splice replaces, for every plane index k set in affected, the subrange
// of dst's quad list whose primary coordinate equals k with the matching
// subrange of scratch. Both dst and scratch must already be sorted
// nondecreasing by coord.
func splice(mesh *Mesh, face Face, affected uint64, scratch []Quad, coord func(Quad) uint32) {
	dst := mesh.Face(face)
	srcStart := 0

	bitSet64(affected).each(func(kInt int) {
		k := uint32(kInt)

		dstStart := sort.Search(len(dst), func(i int) bool { return coord(dst[i]) >= k })
		dstEnd := sort.Search(len(dst), func(i int) bool { return coord(dst[i]) > k })

		srcEnd := srcStart
		for srcEnd < len(scratch) && coord(scratch[srcEnd]) <= k {
			srcEnd++
		}
		replacement := scratch[srcStart:srcEnd]
		srcStart = srcEnd

		merged := make([]Quad, 0, len(dst)-(dstEnd-dstStart)+len(replacement))
		merged = append(merged, dst[:dstStart]...)
		merged = append(merged, replacement...)
		merged = append(merged, dst[dstEnd:]...)
		dst = merged
	})

	mesh.setFace(face, dst)
}
