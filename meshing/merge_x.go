package meshing

import "math/bits"

// mergeX greedily merges the ±X visibility masks into quads. Faces
// perpendicular to X merge in the (y, z) plane first (forward along z,
// then upward along y) before the outer two loops move to the next
// column; unlike ±Y/±Z there is no intra-word "rightward" merge, since X
// is the bit axis itself and is walked one bit at a time.
//
// xs restricts which x bits are considered, letting Remesh re-merge only
// the dilated change columns. Results are appended to out and returned;
// the caller-visible contract requires the result sorted by x (spec.md
// §4.5's splice step depends on it), so mergeX finishes with an explicit
// sort. mergeY sorts its output the same way (its outer loop walks z, not
// y); only mergeZ emits in nondecreasing primary-coordinate order by
// construction (its outer loop walks z in order).
func (im *innerMesher) mergeX(voxels *[CUBE]Voxel, xs uint64, face Face, out []Quad) []Quad {
	for z := 1; z < LEN-1; z++ {
		for y := 1; y < LEN-1; y++ {
			i2 := linearize2D(y, z)

			visible := im.visibleMasks[face][i2] & xs
			upwardVisible := im.visibleMasks[face][i2+strideY2D] & xs
			forwardVisible := im.visibleMasks[face][i2+strideZ2D] & xs

			for rest := visible; rest != 0; rest &= rest - 1 {
				x := bits.TrailingZeros64(rest)

				upwardI := x
				forwardI := linearize2D(x, y)

				i3 := linearize2Dto3D(x, i2)
				voxel := voxels[i3]

				// Forward-merge test (along z): extend the current run
				// instead of emitting, provided no upward run has
				// already started at this column.
				if im.upwardMerged[upwardI] == 0 &&
					(forwardVisible>>uint(x))&1 != 0 &&
					voxel == voxels[i3+strideZ3D] {
					im.forwardMerged[forwardI]++
					continue
				}

				// Upward-merge test (along y): fuse with the row above
				// provided its forward depth matches ours exactly —
				// otherwise the two rows cover different z-extents and
				// can't form a rectangle.
				if (upwardVisible>>uint(x))&1 != 0 &&
					im.forwardMerged[forwardI] == im.forwardMerged[forwardI+forwardStrideY] &&
					voxel == voxels[i3+strideY3D] {
					im.forwardMerged[forwardI] = 0
					im.upwardMerged[upwardI]++
					continue
				}

				forwardMerged := uint32(im.forwardMerged[forwardI])
				upwardMerged := uint32(im.upwardMerged[upwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y)-upwardMerged,
					uint32(z)-forwardMerged,
					forwardMerged+1,
					upwardMerged+1,
					uint32(voxel),
				))

				im.forwardMerged[forwardI] = 0
				im.upwardMerged[upwardI] = 0
			}
		}
	}

	sortQuadsByX(out)
	return out
}
