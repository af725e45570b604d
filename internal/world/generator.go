package world

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	DefaultSeed      = 1111
	DefaultFrequency = 6.0

	// DefaultVolumeDivisor scales world coordinates before 3D sampling.
	DefaultVolumeDivisor = 100.0

	// Heightmap octaves: world x/z are divided by these before 2D sampling.
	FineHeightDivisor   = 200.0
	CoarseHeightDivisor = 1000.0

	// HeightAmplitude is the height contributed by the fine octave at its
	// maximum. The coarse octave contributes coarseWeight times as much.
	HeightAmplitude = 12.8
	coarseWeight    = 4
)

// ErrNonFiniteNoise is returned when the noise source yields NaN or ±Inf.
var ErrNonFiniteNoise = errors.New("world: non-finite noise sample")

// TerrainGenerator fills a whole chunk for a chunk-space coordinate.
// Implementations are deterministic and keep no mutable state, so they can
// be called from many goroutines at once.
type TerrainGenerator interface {
	Generate(coord ChunkCoord) (*Chunk, error)
}

// Policy selects a density rule.
type Policy int

const (
	PolicyVolumetric Policy = iota
	PolicyHeightmap
)

func (p Policy) String() string {
	switch p {
	case PolicyVolumetric:
		return "volumetric"
	case PolicyHeightmap:
		return "heightmap"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "volumetric" or "heightmap" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volumetric":
		return PolicyVolumetric, nil
	case "heightmap":
		return PolicyHeightmap, nil
	default:
		return 0, fmt.Errorf("world: unknown generation policy %q", s)
	}
}

// GeneratorOptions tunes NewGenerator. Zero values select the defaults.
type GeneratorOptions struct {
	Divisor float64 // volumetric only
	Bias    float64 // heightmap only; lowers the surface
}

// NewGenerator builds the generator for policy on top of noise.
func NewGenerator(policy Policy, noise NoiseSource, opts GeneratorOptions) (TerrainGenerator, error) {
	if noise == nil {
		return nil, errors.New("world: nil noise source")
	}
	switch policy {
	case PolicyVolumetric:
		return NewVolumetricGenerator(noise, opts.Divisor), nil
	case PolicyHeightmap:
		return NewHeightmapGenerator(noise, opts.Bias), nil
	default:
		return nil, fmt.Errorf("world: unknown generation policy %v", policy)
	}
}

// Generate produces the chunk at coord with the default noise and options.
func Generate(policy Policy, coord ChunkCoord) (*Chunk, error) {
	gen, err := NewGenerator(policy, DefaultNoise(), GeneratorOptions{})
	if err != nil {
		return nil, err
	}
	return gen.Generate(coord)
}

func checkSample(v float64, wx, wy, wz int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v at world (%d,%d,%d)", ErrNonFiniteNoise, v, wx, wy, wz)
	}
	return nil
}

// VolumetricGenerator marks a voxel solid where 3D noise is >= 0.
// Caves and overhangs fall out naturally.
type VolumetricGenerator struct {
	noise   NoiseSource
	divisor float64
}

// NewVolumetricGenerator samples noise at world/divisor. divisor <= 0
// selects DefaultVolumeDivisor.
func NewVolumetricGenerator(noise NoiseSource, divisor float64) *VolumetricGenerator {
	if divisor <= 0 {
		divisor = DefaultVolumeDivisor
	}
	return &VolumetricGenerator{noise: noise, divisor: divisor}
}

// Generate fills the grid at coord.
func (g *VolumetricGenerator) Generate(coord ChunkCoord) (*Chunk, error) {
	data := NewChunkData(coord)
	for x := range ChunkSize {
		wx := coord.X*ChunkSize + x
		for y := range ChunkSize {
			wy := coord.Y*ChunkSize + y
			for z := range ChunkSize {
				wz := coord.Z*ChunkSize + z
				n := g.noise.Noise3D(float64(wx)/g.divisor, float64(wy)/g.divisor, float64(wz)/g.divisor)
				if err := checkSample(n, wx, wy, wz); err != nil {
					return nil, err
				}
				data.Set(x, y, z, n >= 0)
			}
		}
	}
	return NewChunk(data), nil
}

// HeightmapGenerator builds a single height-field surface per column from
// a fine and a coarse 2D octave. No overhangs.
type HeightmapGenerator struct {
	noise NoiseSource
	bias  float64
}

// NewHeightmapGenerator lowers the surface by bias voxels.
func NewHeightmapGenerator(noise NoiseSource, bias float64) *HeightmapGenerator {
	return &HeightmapGenerator{noise: noise, bias: bias}
}

// HeightAt returns the surface height of the column at world x/z, before
// the bias is applied. Voxels with world y below it are solid.
func (g *HeightmapGenerator) HeightAt(worldX, worldZ int) (float64, error) {
	fine := g.noise.Noise2D(float64(worldX)/FineHeightDivisor, float64(worldZ)/FineHeightDivisor)
	if err := checkSample(fine, worldX, 0, worldZ); err != nil {
		return 0, err
	}
	coarse := g.noise.Noise2D(float64(worldX)/CoarseHeightDivisor, float64(worldZ)/CoarseHeightDivisor)
	if err := checkSample(coarse, worldX, 0, worldZ); err != nil {
		return 0, err
	}
	// remap [-1,1] to [0,1] before scaling
	h := (fine+1)/2*HeightAmplitude + coarseWeight*(coarse+1)/2*HeightAmplitude
	return h, nil
}

// Generate fills the grid at coord.
func (g *HeightmapGenerator) Generate(coord ChunkCoord) (*Chunk, error) {
	data := NewChunkData(coord)
	for x := range ChunkSize {
		wx := coord.X*ChunkSize + x
		for z := range ChunkSize {
			wz := coord.Z*ChunkSize + z
			h, err := g.HeightAt(wx, wz)
			if err != nil {
				return nil, err
			}
			top := h - g.bias
			for y := range ChunkSize {
				wy := coord.Y*ChunkSize + y
				data.Set(x, y, z, float64(wy) < top)
			}
		}
	}
	return NewChunk(data), nil
}
