// Command cubes generates a region of voxel chunks, meshes every chunk and
// reports what a rendering host would upload.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"mini-cubes/internal/config"
	"mini-cubes/internal/meshing"
	"mini-cubes/internal/profiling"
	"mini-cubes/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to world generation yaml (defaults when empty)")
		seed       = flag.Int64("seed", 0, "override noise seed (0 keeps the configured seed)")
		policyName = flag.String("policy", "", "override generation policy: volumetric or heightmap")
		workers    = flag.Int("workers", 0, "worker goroutines (0 keeps the configured value)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[cubes] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *policyName != "" {
		cfg.Policy = *policyName
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}
	config.SetWorkers(cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(ctx context.Context, logger *log.Logger, cfg config.WorldGen) error {
	policy, err := world.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	noise := world.NewValueNoise(cfg.Seed, cfg.Frequency, cfg.Octaves)
	gen, err := world.NewGenerator(policy, noise, world.GeneratorOptions{
		Divisor: cfg.Divisor,
		Bias:    cfg.VerticalBias,
	})
	if err != nil {
		return err
	}

	lo := world.ChunkCoord{X: cfg.RegionMin[0], Y: cfg.RegionMin[1], Z: cfg.RegionMin[2]}
	hi := world.ChunkCoord{X: cfg.RegionMax[0], Y: cfg.RegionMax[1], Z: cfg.RegionMax[2]}
	logger.Printf("generating %d chunks %v..%v policy=%s seed=%d workers=%d",
		cfg.ChunkCount(), lo, hi, policy, cfg.Seed, config.GetWorkers())

	w := world.NewVoxelWorld()
	if err := world.PopulateRegion(ctx, w, gen, lo, hi, 0); err != nil {
		return err
	}

	pool := meshing.NewWorkerPoolWithPolicy(0, meshing.BoundaryPolicy{SealFloor: cfg.SealFloor})
	defer pool.Shutdown()

	// every chunk is inserted before any is meshed
	results, err := pool.MeshAll(ctx, w, world.RegionCoords(lo, hi))
	if err != nil {
		return err
	}

	var vertices, indices, empty int
	for _, r := range results {
		if err := r.Mesh.Validate(); err != nil {
			return err
		}
		if r.Mesh.Empty() {
			empty++
		}
		vertices += len(r.Mesh.Vertices)
		indices += len(r.Mesh.Indices)
	}

	stats := pool.Stats()
	logger.Printf("meshed %d chunks (%d empty): %d quads, %d vertices, %d indices",
		stats.Chunks(), empty, stats.Quads(), vertices, indices)
	logger.Printf("profile: %s", profiling.TopN(5))
	return nil
}
