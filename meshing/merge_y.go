package meshing

import "math/bits"

// mergeY greedily merges the ±Y visibility masks into quads. Faces
// perpendicular to Y merge two ways: forward along z (across rows, like
// ±X's forward merge) and rightward along x (within the 64-bit word
// itself, greedily extending the rectangle one bit at a time).
//
// Forward merging is tested before rightward merging, so rectangles grow
// long and thin along z before being joined sideways along x — the same
// tie-break order as mergeX/mergeZ, which is what makes the output
// deterministic and unique per (voxel grid, face) (spec.md §4.4).
//
// ys iterates the y rows to visit: the full interior range for a full
// mesh, or just the dilated change rows for Remesh. The outer loop below
// walks z, not y, so — exactly like mergeX — the natural emission order
// isn't monotone in the face's primary coordinate; sortQuadsByY fixes that
// up before returning (spec.md §5's ordering guarantee).
func (im *innerMesher) mergeY(voxels *[CUBE]Voxel, ys intIter, face Face, out []Quad) []Quad {
	for z := 1; z < LEN-1; z++ {
		ys.each(func(y int) {
			i2 := linearize2D(y, z)

			visible := im.visibleMasks[face][i2]
			forwardVisible := im.visibleMasks[face][i2+strideZ2D]

			for visible != 0 {
				x := bits.TrailingZeros64(visible)

				forwardI := linearize2D(x, y)
				i3 := linearize2Dto3D(x, i2)
				voxel := voxels[i3]

				// Forward merging (along z).
				if (forwardVisible>>uint(x))&1 != 0 && voxel == voxels[i3+strideZ3D] {
					im.forwardMerged[forwardI]++
					visible &= visible - 1
					continue
				}

				// Rightward merging (along x, within the word): extend
				// while the next bit is visible, the neighbour voxel at
				// the *advancing* x+i matches, and its forward-merge
				// depth equals ours — without that depth match the two
				// columns would need different z-extents and can't
				// fuse into one rectangle (spec.md §4.4; this re-checks
				// the advancing position each step, closing the Open
				// Question about stale neighbour checks, spec.md §9).
				nextX := x + 1
				nextForwardI := forwardI + forwardStrideX
				nextI3 := i3 + strideX3D

				for nextX < LEN-1 &&
					(visible>>uint(nextX))&1 != 0 &&
					im.forwardMerged[forwardI] == im.forwardMerged[nextForwardI] &&
					voxel == voxels[nextI3] {
					im.forwardMerged[nextForwardI] = 0

					nextX++
					nextForwardI += forwardStrideX
					nextI3 += strideX3D
				}

				rightMerged := nextX - x
				visible &^= (uint64(1) << uint(nextX)) - 1

				forwardMerged := uint32(im.forwardMerged[forwardI])

				out = append(out, NewQuad(
					uint32(x),
					uint32(y),
					uint32(z)-forwardMerged,
					uint32(rightMerged),
					forwardMerged+1,
					uint32(voxel),
				))

				im.forwardMerged[forwardI] = 0
			}
		})
	}

	sortQuadsByY(out)
	return out
}
