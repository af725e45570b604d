package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"

	"mini-cubes/internal/config"
	"mini-cubes/internal/profiling"
)

// RegionCoords lists every chunk coordinate in the inclusive box [lo, hi],
// x-major, then y, then z.
func RegionCoords(lo, hi ChunkCoord) []ChunkCoord {
	if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
		return nil
	}
	coords := make([]ChunkCoord, 0, (hi.X-lo.X+1)*(hi.Y-lo.Y+1)*(hi.Z-lo.Z+1))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				coords = append(coords, ChunkCoord{X: x, Y: y, Z: z})
			}
		}
	}
	return coords
}

// PopulateRegion generates every chunk in [lo, hi] on a worker pool and
// inserts the results into w. Generation has no cross-chunk dependency, so
// chunks are produced independently; only the insert is synchronized.
// workers <= 0 uses config.GetWorkers().
//
// Meshing must start only after PopulateRegion returns: a boundary face
// evaluated against a neighbour that is not inserted yet takes the
// absent-neighbour default.
func PopulateRegion(ctx context.Context, w *VoxelWorld, gen TerrainGenerator, lo, hi ChunkCoord, workers int) error {
	defer profiling.Track("world.PopulateRegion")()
	if w == nil || gen == nil {
		return errors.New("world: PopulateRegion needs a world and a generator")
	}
	coords := RegionCoords(lo, hi)
	if coords == nil {
		return fmt.Errorf("world: empty region %v..%v", lo, hi)
	}

	pool := pond.NewPool(config.ResolveWorkers(workers))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	for _, coord := range coords {
		group.SubmitErr(func() error {
			chunk, err := gen.Generate(coord)
			if err != nil {
				return fmt.Errorf("generate chunk %v: %w", coord, err)
			}
			w.Insert(coord, chunk)
			return nil
		})
	}
	return group.Wait()
}
