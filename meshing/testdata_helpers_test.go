package meshing

// newVoxels builds a [CUBE]Voxel buffer from a sparse set of (x, y, z) -> id
// placements. Coordinates are expected in the interior [1, LEN-2] range so
// the one-voxel empty shell convention (spec.md §4.1) holds.
func newVoxels(set map[[3]int]Voxel) *[CUBE]Voxel {
	voxels := new([CUBE]Voxel)
	for p, id := range set {
		voxels[linearize3D(p[0], p[1], p[2])] = id
	}
	return voxels
}

// quadSet returns every quad across all six faces as a comparable set,
// tagged with its face, for order-independent comparison between Mesh and
// SlowMesh output.
type taggedQuad struct {
	face Face
	quad Quad
}

func meshQuadSet(m *Mesh) map[taggedQuad]int {
	set := make(map[taggedQuad]int)
	for _, face := range All {
		for _, q := range m.Face(face) {
			set[taggedQuad{face, q}]++
		}
	}
	return set
}

// coveredUnitFaces returns the total number of unit faces covered by a
// mesh's quads, per face: sum of w*h.
func coveredUnitFaces(m *Mesh) int {
	total := 0
	for _, face := range All {
		for _, q := range m.Face(face) {
			total += int(q.W()) * int(q.H())
		}
	}
	return total
}

// isMonotoneByPrimary reports whether a face's quad list is nondecreasing in
// its primary coordinate (x for ±X, y for ±Y, z for ±Z).
func isMonotoneByPrimary(face Face, quads []Quad) bool {
	var coord func(Quad) uint32
	switch face {
	case PosX, NegX:
		coord = Quad.X
	case PosY, NegY:
		coord = Quad.Y
	default:
		coord = Quad.Z
	}
	for i := 1; i < len(quads); i++ {
		if coord(quads[i-1]) > coord(quads[i]) {
			return false
		}
	}
	return true
}

// overlaps reports whether two same-face quads' rectangles (in their
// tangent-plane coordinates) intersect.
func overlaps(face Face, a, b Quad) bool {
	var a0, a1, b0, b1, aw, ah, bw, bh uint32
	switch face {
	case PosX, NegX:
		a0, a1 = a.Z(), a.Y()
		b0, b1 = b.Z(), b.Y()
		aw, ah = a.W(), a.H()
		bw, bh = b.W(), b.H()
	case PosY, NegY:
		a0, a1 = a.X(), a.Z()
		b0, b1 = b.X(), b.Z()
		aw, ah = a.W(), a.H()
		bw, bh = b.W(), b.H()
	default:
		a0, a1 = a.X(), a.Y()
		b0, b1 = b.X(), b.Y()
		aw, ah = a.W(), a.H()
		bw, bh = b.W(), b.H()
	}
	if a0+aw <= b0 || b0+bw <= a0 {
		return false
	}
	if a1+ah <= b1 || b1+bh <= a1 {
		return false
	}
	return true
}
