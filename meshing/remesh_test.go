package meshing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRemeshEquivalentToFullMeshAfterEdit(t *testing.T) {
	set := map[[3]int]Voxel{
		{10, 10, 10}: 1,
		{11, 10, 10}: 1,
		{10, 11, 10}: 1,
	}
	voxels := newVoxels(set)
	transparents := NewTransparents()
	opaque := ComputeOpaqueMasks(voxels, transparents)
	transparent := ComputeTransparentMasks(voxels, transparents)

	mesher := NewMesher()
	mesh := mesher.Mesh(voxels, opaque, transparent)

	// edit: add a voxel, touching three planes.
	voxels[linearize3D(12, 10, 10)] = 1
	var changes MeshChanges
	changes.Push(11, 10, 10)
	changes.Push(12, 10, 10)

	opaque = ComputeOpaqueMasks(voxels, transparents)
	transparent = ComputeTransparentMasks(voxels, transparents)
	mesher.Remesh(voxels, opaque, transparent, mesh, changes)

	fullMesher := NewMesher()
	full := fullMesher.Mesh(voxels, opaque, transparent)

	require.Equal(t, meshQuadSet(full), meshQuadSet(mesh))
	for _, face := range All {
		require.True(t, isMonotoneByPrimary(face, mesh.Face(face)))
	}
}

func TestMeshChangesIsEmptyAndClear(t *testing.T) {
	var c MeshChanges
	require.True(t, c.IsEmpty())
	c.Push(3, 4, 5)
	require.False(t, c.IsEmpty())
	c.Clear()
	require.True(t, c.IsEmpty())
}

func TestRemeshEquivalencePropertyRandomEdits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(t, "n")
		set := make(map[[3]int]Voxel, n)
		for i := 0; i < n; i++ {
			x := rapid.IntRange(1, LEN-2).Draw(t, "x")
			y := rapid.IntRange(1, LEN-2).Draw(t, "y")
			z := rapid.IntRange(1, LEN-2).Draw(t, "z")
			set[[3]int{x, y, z}] = 1
		}
		voxels := newVoxels(set)
		transparents := NewTransparents()
		opaque := ComputeOpaqueMasks(voxels, transparents)
		transparent := ComputeTransparentMasks(voxels, transparents)

		mesher := NewMesher()
		mesh := mesher.Mesh(voxels, opaque, transparent)

		edits := rapid.IntRange(1, 10).Draw(t, "edits")
		var changes MeshChanges
		for i := 0; i < edits; i++ {
			x := rapid.IntRange(1, LEN-2).Draw(t, "ex")
			y := rapid.IntRange(1, LEN-2).Draw(t, "ey")
			z := rapid.IntRange(1, LEN-2).Draw(t, "ez")
			idx := linearize3D(x, y, z)
			if voxels[idx] == 0 {
				voxels[idx] = 1
			} else {
				voxels[idx] = 0
			}
			changes.Push(uint32(x), uint32(y), uint32(z))
		}

		opaque = ComputeOpaqueMasks(voxels, transparents)
		transparent = ComputeTransparentMasks(voxels, transparents)
		mesher.Remesh(voxels, opaque, transparent, mesh, changes)

		full := NewMesher().Mesh(voxels, opaque, transparent)
		require.Equal(t, meshQuadSet(full), meshQuadSet(mesh))
	})
}
