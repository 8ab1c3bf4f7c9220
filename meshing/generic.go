package meshing

import "math/bits"

// View is a caller's read-only accessor into one chunk's voxels, used by
// the generic mesher variant in place of a concrete [CUBE]Voxel buffer.
// This lets the mesher run over whatever encoding a caller already stores
// (run-length columns, paletted ids, ...) without a conversion pass.
type View[V any] interface {
	Get(x, y, z int) V
}

// AdjacentView optionally extends View with the ability to read one voxel
// across a chunk boundary. When a caller has no neighbour chunk loaded,
// GetAdjacent returns (zero, false) and the shared face is treated as not
// visible (spec.md §6) — an unloaded neighbour never implies an exposed
// face. This rule is enforced by the mesher itself before Context is ever
// consulted, so a Context implementation never has to special-case it.
type AdjacentView[V any] interface {
	GetAdjacent(offset [3]int, face Face) (V, bool)
}

// Context decouples the generic mesher from a specific voxel encoding: it
// decides what counts as empty, what visibility and mergeability mean, and
// how a voxel maps to a shader id.
type Context[V any, I any] interface {
	// IntoInner reports whether v is non-empty and, if so, decodes it.
	IntoInner(v V) (I, bool)
	// IsVisible reports whether a face between v and its neighbour is
	// exposed. adjOK is true only when the neighbour cell is present (not
	// across an unloaded chunk boundary — the mesher never calls this
	// with adjOK forced true for that case) and non-empty; adjOK is false
	// for a plain empty neighbour, which for most encodings should expose
	// the face.
	IsVisible(inner I, adj I, adjOK bool) bool
	// CanMerge reports whether two voxels on the same face can be fused
	// into one quad.
	CanMerge(a, b I) bool
	// ShaderID returns the (26-bit) material/shader id to store in a quad
	// covering this voxel's face.
	ShaderID(v I, face Face) uint32
}

// genDim and genSquare size the generic path's visibility masks one row
// past the chunk in each of the two in-plane directions, so a boundary row
// read (the merge step's lookahead to the "next" row) lands on a real,
// zeroed word instead of needing a bounds check — the "padded, per-row bit
// clamp" variant spec.md §4.1 calls out as what the generic mesher uses, in
// place of the concrete path's caller-guaranteed empty shell.
const (
	genDim    = LEN + 1
	genSquare = genDim * genDim
)

// genLinearize2D packs a (a, b) row-pair into the padded 2D index space
// shared by the visibility masks and the forward/upward merge-depth
// scratch. It is reused both for (y, z) rows and, inside mergeX, for (x, y)
// pairs — the same trick the concrete path's linearize2D plays by reusing
// one function across two different coordinate pairs.
func genLinearize2D(a, b int) int {
	return a + b*genDim
}

// GenericMesher meshes chunks through the View/AdjacentView/Context
// capability interfaces instead of a concrete [CUBE]Voxel buffer. It builds
// padded visibility masks and runs the same bit-packed greedy merge as the
// concrete mesher (mergeX/mergeY/mergeZ), substituting a
// per-voxel Context call for the concrete path's direct array equality
// test wherever two voxels need comparing (spec.md §6).
type GenericMesher[V any, I any, Ctx Context[V, I]] struct {
	view View[V]
	adj  AdjacentView[V] // nil if unavailable
	ctx  Ctx

	visible       [6][genSquare]uint64
	forwardMerged [genSquare]uint8
	upwardMerged  [genDim]uint8
}

// NewGenericMesher builds a mesher over the given view and context. adj
// may be nil; chunk-boundary faces are then never considered visible.
func NewGenericMesher[V any, I any, Ctx Context[V, I]](view View[V], adj AdjacentView[V], ctx Ctx) *GenericMesher[V, I, Ctx] {
	return &GenericMesher[V, I, Ctx]{view: view, adj: adj, ctx: ctx}
}

// faceOffsets gives the (dx, dy, dz) neighbour offset for each face, used
// by the generic path in place of the concrete path's linear strides.
var faceOffsets = [6][3]int{
	PosX: {1, 0, 0},
	NegX: {-1, 0, 0},
	PosY: {0, 1, 0},
	NegY: {0, -1, 0},
	PosZ: {0, 0, 1},
	NegZ: {0, 0, -1},
}

// neighbor reads the voxel adjacent to (x, y, z) across face, whether it's
// inside this chunk or (if adj is non-nil) across the chunk boundary.
func (gm *GenericMesher[V, I, Ctx]) neighbor(x, y, z int, face Face) (V, bool) {
	off := faceOffsets[face]
	nx, ny, nz := x+off[0], y+off[1], z+off[2]

	if nx >= 0 && nx < LEN && ny >= 0 && ny < LEN && nz >= 0 && nz < LEN {
		return gm.view.Get(nx, ny, nz), true
	}
	if gm.adj == nil {
		var zero V
		return zero, false
	}
	return gm.adj.GetAdjacent(off, face)
}

// canMergeAt decodes the voxel at (x, y, z) and reports whether it can fuse
// with inner under the context's merge rule. Out-of-range cells never
// merge, which lets the rightward/forward/upward merge tests below guard
// purely on the padded visibility mask and only touch the view when a bit
// says there is something there to look at.
func (gm *GenericMesher[V, I, Ctx]) canMergeAt(inner I, x, y, z int) bool {
	if x < 0 || x >= LEN || y < 0 || y >= LEN || z < 0 || z >= LEN {
		return false
	}
	other, ok := gm.ctx.IntoInner(gm.view.Get(x, y, z))
	return ok && gm.ctx.CanMerge(inner, other)
}

// Mesh walks every voxel in the chunk, builds the per-face padded
// visibility masks, and greedily merges each into quads with the same
// forward/upward-before-rightward tie-break order as the concrete
// mesher's mergeX/mergeY/mergeZ (spec.md §4.4).
func (gm *GenericMesher[V, I, Ctx]) Mesh() *Mesh {
	gm.buildVisible()

	mesh := NewMesh()
	for _, face := range All {
		var out []Quad
		switch face {
		case PosX, NegX:
			out = gm.mergeX(face)
		case PosY, NegY:
			out = gm.mergeY(face)
		default:
			out = gm.mergeZ(face)
		}
		mesh.setFace(face, out)
	}
	return mesh
}

// buildVisible fills gm.visible, one bit per (x, y, z) per face, set when
// that voxel's face is exposed. A chunk-boundary neighbour with no known
// value (neighbor's second return is false) always leaves the bit clear —
// enforced here, before Context is consulted, per AdjacentView's contract.
// The padded row (index LEN in the (y, z) / (x, y) index spaces) is never
// written, so it reads back as the zero word the merge step's lookahead
// needs at the chunk's far edge.
func (gm *GenericMesher[V, I, Ctx]) buildVisible() {
	gm.visible = [6][genSquare]uint64{}

	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := genLinearize2D(y, z)
			for x := 0; x < LEN; x++ {
				inner, ok := gm.ctx.IntoInner(gm.view.Get(x, y, z))
				if !ok {
					continue
				}
				bit := uint64(1) << uint(x)

				for _, face := range All {
					adjV, haveAdj := gm.neighbor(x, y, z, face)
					if !haveAdj {
						continue
					}
					adjInner, adjNonEmpty := gm.ctx.IntoInner(adjV)
					if gm.ctx.IsVisible(inner, adjInner, adjNonEmpty) {
						gm.visible[face][i2] |= bit
					}
				}
			}
		}
	}
}

// mergeX greedily merges the ±X visibility masks into quads, mirroring
// innerMesher.mergeX: forward merge along z, then upward merge along y,
// tested in that order before a cell is emitted as its own quad. x is the
// bit axis, so — exactly as in the concrete path — the natural emission
// order isn't monotone in x and needs the trailing sort.
func (gm *GenericMesher[V, I, Ctx]) mergeX(face Face) []Quad {
	var out []Quad

	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := genLinearize2D(y, z)

			visible := gm.visible[face][i2]
			upwardVisible := gm.visible[face][i2+1]
			forwardVisible := gm.visible[face][i2+genDim]

			for rest := visible; rest != 0; rest &= rest - 1 {
				x := bits.TrailingZeros64(rest)

				upwardI := x
				forwardI := genLinearize2D(x, y)
				curInner, _ := gm.ctx.IntoInner(gm.view.Get(x, y, z))

				if gm.upwardMerged[upwardI] == 0 &&
					(forwardVisible>>uint(x))&1 != 0 &&
					gm.canMergeAt(curInner, x, y, z+1) {
					gm.forwardMerged[forwardI]++
					continue
				}

				if (upwardVisible>>uint(x))&1 != 0 &&
					gm.forwardMerged[forwardI] == gm.forwardMerged[forwardI+genDim] &&
					gm.canMergeAt(curInner, x, y+1, z) {
					gm.forwardMerged[forwardI] = 0
					gm.upwardMerged[upwardI]++
					continue
				}

				forwardMerged := uint32(gm.forwardMerged[forwardI])
				upwardMerged := uint32(gm.upwardMerged[upwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y)-upwardMerged,
					uint32(z)-forwardMerged,
					forwardMerged+1,
					upwardMerged+1,
					gm.ctx.ShaderID(curInner, face),
				))

				gm.forwardMerged[forwardI] = 0
				gm.upwardMerged[upwardI] = 0
			}
		}
	}

	sortQuadsByX(out)
	return out
}

// mergeY greedily merges the ±Y visibility masks into quads, mirroring
// innerMesher.mergeY: forward merge along z, rightward merge along x
// within the word. Its outer loop walks z, not y, so — exactly like
// mergeX — it needs the trailing sort to be monotone in y.
func (gm *GenericMesher[V, I, Ctx]) mergeY(face Face) []Quad {
	var out []Quad

	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := genLinearize2D(y, z)

			visible := gm.visible[face][i2]
			forwardVisible := gm.visible[face][i2+genDim]

			for visible != 0 {
				x := bits.TrailingZeros64(visible)

				forwardI := genLinearize2D(x, y)
				curInner, _ := gm.ctx.IntoInner(gm.view.Get(x, y, z))

				// Forward merging (along z).
				if (forwardVisible>>uint(x))&1 != 0 && gm.canMergeAt(curInner, x, y, z+1) {
					gm.forwardMerged[forwardI]++
					visible &= visible - 1
					continue
				}

				// Rightward merging (along x): re-check the advancing
				// neighbour on every step, the same stale-neighbour fix
				// the concrete mergeY applies (spec.md §9).
				nextX := x + 1
				nextForwardI := forwardI + 1
				for nextX < LEN &&
					(visible>>uint(nextX))&1 != 0 &&
					gm.forwardMerged[forwardI] == gm.forwardMerged[nextForwardI] &&
					gm.canMergeAt(curInner, nextX, y, z) {
					gm.forwardMerged[nextForwardI] = 0
					nextX++
					nextForwardI++
				}

				rightMerged := nextX - x
				visible &^= (uint64(1) << uint(nextX)) - 1

				forwardMerged := uint32(gm.forwardMerged[forwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y),
					uint32(z)-forwardMerged,
					uint32(rightMerged),
					forwardMerged+1,
					gm.ctx.ShaderID(curInner, face),
				))

				gm.forwardMerged[forwardI] = 0
			}
		}
	}

	sortQuadsByY(out)
	return out
}

// mergeZ greedily merges the ±Z visibility masks into quads, mirroring
// innerMesher.mergeZ: upward merge along y, rightward merge along x within
// the word. z is the true outer loop here, so emission is already
// monotone in z and needs no trailing sort — the one face pair where that
// holds, same as the concrete path.
func (gm *GenericMesher[V, I, Ctx]) mergeZ(face Face) []Quad {
	var out []Quad

	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := genLinearize2D(y, z)

			visible := gm.visible[face][i2]
			upwardVisible := gm.visible[face][i2+1]

			for visible != 0 {
				x := bits.TrailingZeros64(visible)

				upwardI := x
				curInner, _ := gm.ctx.IntoInner(gm.view.Get(x, y, z))

				// Upward merging (along y).
				if (upwardVisible>>uint(x))&1 != 0 && gm.canMergeAt(curInner, x, y+1, z) {
					gm.upwardMerged[upwardI]++
					visible &= visible - 1
					continue
				}

				// Rightward merging (along x, within the word).
				nextX := x + 1
				nextUpwardI := upwardI + 1
				for nextX < LEN &&
					(visible>>uint(nextX))&1 != 0 &&
					gm.upwardMerged[upwardI] == gm.upwardMerged[nextUpwardI] &&
					gm.canMergeAt(curInner, nextX, y, z) {
					gm.upwardMerged[nextUpwardI] = 0
					nextX++
					nextUpwardI++
				}

				rightMerged := nextX - x
				visible &^= (uint64(1) << uint(nextX)) - 1

				upwardMerged := uint32(gm.upwardMerged[upwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y)-upwardMerged,
					uint32(z),
					uint32(rightMerged),
					upwardMerged+1,
					gm.ctx.ShaderID(curInner, face),
				))

				gm.upwardMerged[upwardI] = 0
			}
		}
	}

	return out
}
