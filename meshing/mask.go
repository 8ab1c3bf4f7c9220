package meshing

// Voxel is a 16-bit voxel identifier. 0 is air and is never emitted as a
// quad.
type Voxel = uint16

// Transparents is the set of voxel ids considered transparent: a
// transparent voxel's face is hidden by a same-id neighbour or an opaque
// neighbour, and exposed to air or to a transparent neighbour of a
// different id. An opaque voxel's face is exposed to air and to any
// transparent neighbour.
type Transparents map[Voxel]struct{}

// NewTransparents builds a Transparents set from a list of ids.
func NewTransparents(ids ...Voxel) Transparents {
	t := make(Transparents, len(ids))
	for _, id := range ids {
		t[id] = struct{}{}
	}
	return t
}

func (t Transparents) has(v Voxel) bool {
	_, ok := t[v]
	return ok
}

// ComputeOpaqueMasks builds, for every (y, z) column, a 64-bit word whose
// bit x is set iff voxel (x, y, z) is non-empty and not in transparents.
func ComputeOpaqueMasks(voxels *[CUBE]Voxel, transparents Transparents) *[SQUARE]uint64 {
	masks := new([SQUARE]uint64)
	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := linearize2D(y, z)
			for x := 0; x < LEN; x++ {
				v := voxels[linearize3D(x, y, z)]
				if v == 0 || transparents.has(v) {
					continue
				}
				masks[i2] |= 1 << uint(x)
			}
		}
	}
	return masks
}

// ComputeTransparentMasks builds, for every (y, z) column, a 64-bit word
// whose bit x is set iff voxel (x, y, z) is non-empty and in transparents.
func ComputeTransparentMasks(voxels *[CUBE]Voxel, transparents Transparents) *[SQUARE]uint64 {
	masks := new([SQUARE]uint64)
	for z := 0; z < LEN; z++ {
		for y := 0; y < LEN; y++ {
			i2 := linearize2D(y, z)
			for x := 0; x < LEN; x++ {
				v := voxels[linearize3D(x, y, z)]
				if v == 0 || !transparents.has(v) {
					continue
				}
				masks[i2] |= 1 << uint(x)
			}
		}
	}
	return masks
}
