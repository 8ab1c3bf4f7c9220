package meshing

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ChunkJob is one chunk to mesh: its voxel buffer and masks, addressed by
// an opaque caller-defined coordinate so results can be matched back up.
type ChunkJob struct {
	Coord            any
	Voxels           *[CUBE]Voxel
	OpaqueMasks      *[SQUARE]uint64
	TransparentMasks *[SQUARE]uint64
}

// ChunkResult is the outcome of meshing one ChunkJob.
type ChunkResult struct {
	Coord any
	Mesh  *Mesh
}

// Pool meshes many chunks concurrently, with a fresh Mesher per job so each
// goroutine's scratch buffers stay exclusive to it (spec.md §5: "mesher
// state is exclusive to its holder"). It replaces the teacher's
// channel-based WorkerPool with golang.org/x/sync's errgroup+semaphore,
// the pattern the rest of the retrieved pack reaches for (several
// manifests vendor x/sync for exactly this kind of bounded fan-out).
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool returns a Pool that runs at most workers chunks concurrently.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// MeshAll meshes every job in jobs concurrently (bounded by the pool's
// worker count) using the fast Mesh path, and returns one ChunkResult per
// job. It stops and returns the first error encountered — in practice
// Mesh never errors, but ctx cancellation propagates the same way.
func (p *Pool) MeshAll(ctx context.Context, jobs []ChunkJob) ([]ChunkResult, error) {
	results := make([]ChunkResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		if err := p.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		g.Go(func() error {
			defer p.sem.Release(1)

			m := NewMesher()
			results[i] = ChunkResult{
				Coord: job.Coord,
				Mesh:  m.Mesh(job.Voxels, job.OpaqueMasks, job.TransparentMasks),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
