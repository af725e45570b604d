package meshing

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"

	"mini-cubes/internal/config"
	"mini-cubes/internal/profiling"
	"mini-cubes/internal/world"
)

// ErrChunkNotFound is returned when a requested coordinate has no chunk.
var ErrChunkNotFound = errors.New("meshing: chunk not in world")

// MeshResult pairs a chunk coordinate with its mesh.
type MeshResult struct {
	Coord world.ChunkCoord
	Mesh  *Mesh
}

// Stats counts work done by a WorkerPool. Safe for concurrent use.
type Stats struct {
	chunks atomic.Uint64
	quads  atomic.Uint64
}

// Chunks returns how many chunks have been meshed.
func (s *Stats) Chunks() uint64 { return s.chunks.Load() }

// Quads returns how many quads have been emitted in total.
func (s *Stats) Quads() uint64 { return s.quads.Load() }

// WorkerPool meshes chunks in parallel. Meshing only reads the world, so
// any number of chunks can be processed at once provided every chunk they
// border has already been inserted.
type WorkerPool struct {
	pool   pond.ResultPool[MeshResult]
	policy BoundaryPolicy
	stats  Stats
}

// NewWorkerPool creates a pool; workers <= 0 uses config.GetWorkers().
func NewWorkerPool(workers int) *WorkerPool {
	return NewWorkerPoolWithPolicy(workers, DefaultBoundaryPolicy)
}

// NewWorkerPoolWithPolicy creates a pool that meshes with policy.
func NewWorkerPoolWithPolicy(workers int, policy BoundaryPolicy) *WorkerPool {
	return &WorkerPool{
		pool:   pond.NewResultPool[MeshResult](config.ResolveWorkers(workers)),
		policy: policy,
	}
}

// Stats exposes the pool's counters.
func (p *WorkerPool) Stats() *Stats {
	return &p.stats
}

// MeshAll builds the mesh of every coordinate in coords. Results are in
// the same order as coords. The first failure cancels the remaining work.
func (p *WorkerPool) MeshAll(ctx context.Context, w *world.VoxelWorld, coords []world.ChunkCoord) ([]MeshResult, error) {
	defer profiling.Track("meshing.MeshAll")()
	group := p.pool.NewGroupContext(ctx)
	for _, coord := range coords {
		group.SubmitErr(func() (MeshResult, error) {
			c, ok := w.Get(coord)
			if !ok {
				return MeshResult{}, fmt.Errorf("%w: %v", ErrChunkNotFound, coord)
			}
			m := BuildChunkMeshWithPolicy(w, c, p.policy)
			p.stats.chunks.Add(1)
			p.stats.quads.Add(uint64(m.QuadCount()))
			return MeshResult{Coord: coord, Mesh: m}, nil
		})
	}
	return group.Wait()
}

// MeshWorld meshes every chunk currently stored in w.
func (p *WorkerPool) MeshWorld(ctx context.Context, w *world.VoxelWorld) ([]MeshResult, error) {
	chunks := w.Chunks()
	coords := make([]world.ChunkCoord, len(chunks))
	for i, c := range chunks {
		coords[i] = c.Position
	}
	return p.MeshAll(ctx, w, coords)
}

// Shutdown waits for running jobs and stops the workers.
func (p *WorkerPool) Shutdown() {
	p.pool.StopAndWait()
}
