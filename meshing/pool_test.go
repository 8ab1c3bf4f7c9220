package meshing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolMeshAllMatchesSequentialMesh(t *testing.T) {
	transparents := NewTransparents()
	jobs := make([]ChunkJob, 0, 5)
	want := make(map[any]int, 5)

	for i := 0; i < 5; i++ {
		voxels := newVoxels(map[[3]int]Voxel{
			{10 + i, 10, 10}: Voxel(i + 1),
			{11 + i, 10, 10}: Voxel(i + 1),
		})
		opaque := ComputeOpaqueMasks(voxels, transparents)
		transparent := ComputeTransparentMasks(voxels, transparents)
		jobs = append(jobs, ChunkJob{
			Coord:            i,
			Voxels:           voxels,
			OpaqueMasks:      opaque,
			TransparentMasks: transparent,
		})
		want[i] = NewMesher().Mesh(voxels, opaque, transparent).Len()
	}

	pool := NewPool(3)
	results, err := pool.MeshAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 5)

	for _, r := range results {
		require.Equal(t, want[r.Coord], r.Mesh.Len())
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(0) // clamps to 1
	voxels := newVoxels(map[[3]int]Voxel{{5, 5, 5}: 1})
	transparents := NewTransparents()
	job := ChunkJob{
		Coord:            "only",
		Voxels:           voxels,
		OpaqueMasks:      ComputeOpaqueMasks(voxels, transparents),
		TransparentMasks: ComputeTransparentMasks(voxels, transparents),
	}
	results, err := pool.MeshAll(context.Background(), []ChunkJob{job})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 6, results[0].Mesh.Len())
}
