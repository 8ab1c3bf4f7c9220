package meshing

import "math/bits"

// mergeZ greedily merges the ±Z visibility masks into quads. Mirrors
// mergeY with the roles of y and z swapped: the non-bit-axis merge
// direction here is upward along y instead of forward along z.
//
// zs iterates the z rows to visit: the full interior range for a full
// mesh, or just the dilated change rows for Remesh.
func (im *innerMesher) mergeZ(voxels *[CUBE]Voxel, zs intIter, face Face, out []Quad) []Quad {
	zs.each(func(z int) {
		for y := 1; y < LEN-1; y++ {
			i2 := linearize2D(y, z)

			visible := im.visibleMasks[face][i2]
			upwardVisible := im.visibleMasks[face][i2+strideY2D]

			for visible != 0 {
				x := bits.TrailingZeros64(visible)

				upwardI := x
				i3 := linearize2Dto3D(x, i2)
				voxel := voxels[i3]

				// Upward merging (along y).
				if (upwardVisible>>uint(x))&1 != 0 && voxel == voxels[i3+strideY3D] {
					im.upwardMerged[upwardI]++
					visible &= visible - 1
					continue
				}

				// Rightward merging (along x, within the word); see
				// mergeY for why the advancing neighbour is re-checked
				// on every step instead of the run's starting voxel.
				nextX := x + 1
				nextUpwardI := upwardI + upwardStrideX
				nextI3 := i3 + strideX3D

				for nextX < LEN-1 &&
					(visible>>uint(nextX))&1 != 0 &&
					im.upwardMerged[upwardI] == im.upwardMerged[nextUpwardI] &&
					voxel == voxels[nextI3] {
					im.upwardMerged[nextUpwardI] = 0

					nextX++
					nextUpwardI += upwardStrideX
					nextI3 += strideX3D
				}

				rightMerged := nextX - x
				visible &^= (uint64(1) << uint(nextX)) - 1

				upwardMerged := uint32(im.upwardMerged[upwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y)-upwardMerged,
					uint32(z),
					uint32(rightMerged),
					upwardMerged+1,
					uint32(voxel),
				))

				im.upwardMerged[upwardI] = 0
			}
		}
	})

	return out
}
