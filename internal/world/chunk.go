package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSize is the edge length of a chunk in voxels.
	ChunkSize = 32
	// ChunkVolume is the number of voxels in one chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord addresses a chunk in the world grid. One unit is one chunk edge.
type ChunkCoord struct {
	X, Y, Z int
}

// Add returns the component-wise sum of two coordinates.
func (c ChunkCoord) Add(o ChunkCoord) ChunkCoord {
	return ChunkCoord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// InBounds reports whether (x, y, z) is a valid chunk-local voxel coordinate.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// MustBeLocal panics when (x, y, z) is outside the chunk-local range.
// Out-of-range access is a caller bug; it is never wrapped or clamped.
func MustBeLocal(x, y, z int) {
	if !InBounds(x, y, z) {
		panic(fmt.Sprintf("world: local voxel (%d,%d,%d) outside [0,%d)", x, y, z, ChunkSize))
	}
}

// index converts local coordinates to a flat index (x-major, then y, then z).
func index(x, y, z int) int {
	MustBeLocal(x, y, z)
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}

// ChunkData is the dense occupancy grid of one chunk. true means solid.
type ChunkData struct {
	position ChunkCoord
	voxels   [ChunkVolume]bool
}

// NewChunkData returns an empty grid for the chunk at pos.
func NewChunkData(pos ChunkCoord) *ChunkData {
	return &ChunkData{position: pos}
}

// Position returns the chunk-space coordinate the grid belongs to.
func (d *ChunkData) Position() ChunkCoord {
	return d.position
}

// Get reports whether the voxel at local (x, y, z) is solid.
func (d *ChunkData) Get(x, y, z int) bool {
	return d.voxels[index(x, y, z)]
}

// Set marks a voxel solid or empty. Only valid while the grid is being
// generated; a grid wrapped in a Chunk that was inserted into a VoxelWorld
// must not change.
func (d *ChunkData) Set(x, y, z int, solid bool) {
	d.voxels[index(x, y, z)] = solid
}

// Fill sets every voxel to solid.
func (d *ChunkData) Fill(solid bool) {
	for i := range d.voxels {
		d.voxels[i] = solid
	}
}

// SolidCount returns the number of solid voxels.
func (d *ChunkData) SolidCount() int {
	n := 0
	for _, v := range d.voxels {
		if v {
			n++
		}
	}
	return n
}

// Chunk is a voxel grid plus its chunk-space position; the unit of storage
// and meshing.
type Chunk struct {
	Position ChunkCoord
	Data     *ChunkData
}

// NewChunk wraps data, taking the position from the grid itself.
func NewChunk(data *ChunkData) *Chunk {
	if data == nil {
		panic("world: NewChunk with nil data")
	}
	return &Chunk{Position: data.Position(), Data: data}
}

// WorldOrigin is the world-space position of local voxel (0,0,0).
func (c *Chunk) WorldOrigin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.Position.X * ChunkSize),
		float32(c.Position.Y * ChunkSize),
		float32(c.Position.Z * ChunkSize),
	}
}

// VoxelWorldPos returns the world-space integer position of a local voxel.
func (c *Chunk) VoxelWorldPos(x, y, z int) mgl32.Vec3 {
	MustBeLocal(x, y, z)
	return mgl32.Vec3{
		float32(c.Position.X*ChunkSize + x),
		float32(c.Position.Y*ChunkSize + y),
		float32(c.Position.Z*ChunkSize + z),
	}
}
