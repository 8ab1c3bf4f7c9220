package meshing

import (
	"math/bits"

	"greedymesh/internal/profiling"
)

// Mesher holds the reusable scratch buffers a mesh/remesh call needs:
// six per-face visibility masks, and the forward/upward merge-run
// counters. It is created once and reused across many chunks to amortise
// allocation (spec.md §5) — a Mesher's scratch is exclusive to whichever
// goroutine holds it; see Pool for meshing many chunks concurrently.
//
// Split into an outer Mesher and an inner mesher the way the original
// splits Mesher/InnerMesher: it lets methods borrow the forward/upward
// scratch mutably while a separate splice scratch (in Remesh) is borrowed
// at the same time.
type Mesher struct {
	inner innerMesher
	// spliceScratch holds quads from a partial remesh before they're
	// spliced into the caller's existing Mesh (see remesh.go).
	spliceScratch []Quad
}

type innerMesher struct {
	visibleMasks  [6][SQUARE]uint64
	forwardMerged [SQUARE]uint8
	upwardMerged  [LEN]uint8
}

// NewMesher returns a ready-to-use Mesher with zeroed scratch.
func NewMesher() *Mesher {
	return &Mesher{}
}

// Mesh meshes a voxel buffer using caller-maintained opaque/transparent
// column masks. This is the fast path: about 4x faster than SlowMesh but
// requires the caller to keep both masks in sync with voxels.
func (m *Mesher) Mesh(voxels *[CUBE]Voxel, opaqueMasks, transparentMasks *[SQUARE]uint64) *Mesh {
	defer profiling.Track("meshing.Mesh")()
	m.inner.buildAllVisible(voxels, opaqueMasks, transparentMasks)
	return m.inner.faceMerging(voxels)
}

// SlowMesh meshes a voxel buffer by reading neighbour ids directly,
// without precomputed masks. ~4x slower than Mesh but needs no mask
// bookkeeping. Produces identical output to Mesh given equivalent inputs
// (spec.md §8, the Equivalence property).
func (m *Mesher) SlowMesh(voxels *[CUBE]Voxel, transparents Transparents) *Mesh {
	defer profiling.Track("meshing.SlowMesh")()
	m.inner.buildAllVisibleSlow(voxels, transparents)
	return m.inner.faceMerging(voxels)
}

// buildAllVisibleSlow computes every face's visibility mask for the whole
// chunk by reading the six neighbour ids of every non-empty interior
// voxel. The 1-voxel shell is assumed empty (the unpadded fast-path
// convention, spec.md §4.1) and is left unvisited/zeroed.
func (im *innerMesher) buildAllVisibleSlow(voxels *[CUBE]Voxel, transparents Transparents) {
	im.buildVisibleSlow(voxels, transparents, fullRange(), fullRange(), fullRange())
}

type intRange struct{ lo, hi int } // [lo, hi)

func fullRange() intRange { return intRange{1, LEN - 1} }

func (r intRange) each(f func(int)) {
	for i := r.lo; i < r.hi; i++ {
		f(i)
	}
}

func (im *innerMesher) buildVisibleSlow(voxels *[CUBE]Voxel, transparents Transparents, xs, ys, zs intIter) {
	for face := range im.visibleMasks {
		for i := range im.visibleMasks[face] {
			im.visibleMasks[face][i] = 0
		}
	}

	zs.each(func(z int) {
		ys.each(func(y int) {
			i2 := linearize2D(y, z)
			xs.each(func(x int) {
				i3 := linearize3D(x, y, z)
				voxel := voxels[i3]
				if voxel == 0 {
					return
				}
				bit := uint64(1) << uint(x)
				for _, face := range All {
					off := offset3D(face)
					adjI3 := i3 + off
					adjVoxel := voxels[adjI3]
					if adjVoxel == 0 || (voxel != adjVoxel && transparents.has(adjVoxel)) {
						im.visibleMasks[face][i2] |= bit
					}
				}
			})
		})
	})
}

// buildAllVisible computes every face's visibility mask for the whole
// chunk from the caller-maintained opaque/transparent masks.
func (im *innerMesher) buildAllVisible(voxels *[CUBE]Voxel, opaqueMasks, transparentMasks *[SQUARE]uint64) {
	for z := 1; z < LEN-1; z++ {
		for y := 1; y < LEN-1; y++ {
			im.fastRowHandler(voxels, opaqueMasks, transparentMasks, ^uint64(0), y, z)
		}
	}
}

// fastRowHandler computes the visibility mask of every face at column
// (y, z), restricted to the bits set in xs (used by Remesh to bound work
// to the dilated change planes).
func (im *innerMesher) fastRowHandler(voxels *[CUBE]Voxel, opaqueMasks, transparentMasks *[SQUARE]uint64, xs uint64, y, z int) {
	i2 := linearize2D(y, z)

	padOpaque := opaqueMasks[i2]
	opaque := padOpaque &^ padMask & xs
	transparent := transparentMasks[i2] &^ padMask & xs

	if opaque == 0 && transparent == 0 {
		for face := range im.visibleMasks {
			im.visibleMasks[face][i2] = 0
		}
		return
	}

	for _, face := range All {
		off := offset3D(face)
		adj := adjOpaque(face, padOpaque, opaqueMasks, i2)

		im.visibleMasks[face][i2] = opaque &^ adj

		for rest := transparent &^ adj; rest != 0; rest &= rest - 1 {
			x := bits.TrailingZeros64(rest)
			i3 := linearize2Dto3D(x, i2)
			voxel := voxels[i3]
			adjVoxel := voxels[i3+off]
			if voxel != adjVoxel {
				im.visibleMasks[face][i2] |= 1 << uint(x)
			}
		}
	}
}

// faceMerging runs the greedy merge for every face and returns the
// resulting Mesh.
func (im *innerMesher) faceMerging(voxels *[CUBE]Voxel) *Mesh {
	mesh := NewMesh()
	for _, face := range All {
		var out []Quad
		switch face {
		case PosX, NegX:
			out = im.mergeX(voxels, ^uint64(0), face, nil)
		case PosY, NegY:
			out = im.mergeY(voxels, fullRange(), face, nil)
		case PosZ, NegZ:
			out = im.mergeZ(voxels, fullRange(), face, nil)
		}
		mesh.setFace(face, out)
	}
	return mesh
}
