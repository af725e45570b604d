package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestChunkDataSetGet(t *testing.T) {
	d := NewChunkData(ChunkCoord{X: 1, Y: 2, Z: 3})
	if d.SolidCount() != 0 {
		t.Fatalf("new grid: got %d solid voxels, want 0", d.SolidCount())
	}

	d.Set(0, 0, 0, true)
	d.Set(31, 31, 31, true)
	d.Set(5, 6, 7, true)

	for _, p := range [][3]int{{0, 0, 0}, {31, 31, 31}, {5, 6, 7}} {
		if !d.Get(p[0], p[1], p[2]) {
			t.Errorf("Get%v: got empty, want solid", p)
		}
	}
	// axes must not alias each other
	if d.Get(7, 6, 5) || d.Get(6, 5, 7) {
		t.Errorf("permuted coordinates reported solid")
	}
	if got := d.SolidCount(); got != 3 {
		t.Errorf("SolidCount: got %d, want 3", got)
	}

	d.Set(5, 6, 7, false)
	if d.Get(5, 6, 7) {
		t.Errorf("voxel still solid after clearing")
	}
}

func TestChunkDataFill(t *testing.T) {
	d := NewChunkData(ChunkCoord{})
	d.Fill(true)
	if got := d.SolidCount(); got != ChunkVolume {
		t.Fatalf("Fill(true): got %d solid, want %d", got, ChunkVolume)
	}
	d.Fill(false)
	if got := d.SolidCount(); got != 0 {
		t.Fatalf("Fill(false): got %d solid, want 0", got)
	}
}

func TestChunkDataOutOfRangePanics(t *testing.T) {
	cases := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{ChunkSize, 0, 0}, {0, ChunkSize, 0}, {0, 0, ChunkSize},
	}
	d := NewChunkData(ChunkCoord{})
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get%v did not panic", c)
				}
			}()
			d.Get(c[0], c[1], c[2])
		}()
	}
}

func TestNewChunkPositionMatchesData(t *testing.T) {
	pos := ChunkCoord{X: -2, Y: 0, Z: 5}
	c := NewChunk(NewChunkData(pos))
	if c.Position != pos || c.Data.Position() != pos {
		t.Fatalf("chunk position %v, data position %v, want %v", c.Position, c.Data.Position(), pos)
	}
}

func TestChunkWorldPositions(t *testing.T) {
	c := NewChunk(NewChunkData(ChunkCoord{X: 1, Y: -1, Z: 2}))
	if got, want := c.WorldOrigin(), (mgl32.Vec3{32, -32, 64}); got != want {
		t.Errorf("WorldOrigin: got %v, want %v", got, want)
	}
	if got, want := c.VoxelWorldPos(3, 4, 5), (mgl32.Vec3{35, -28, 69}); got != want {
		t.Errorf("VoxelWorldPos: got %v, want %v", got, want)
	}
}
