package world

import (
	"sync"
	"testing"
)

func solidChunk(pos ChunkCoord) *Chunk {
	d := NewChunkData(pos)
	d.Fill(true)
	return NewChunk(d)
}

func TestVoxelWorldInsertGet(t *testing.T) {
	w := NewVoxelWorld()
	pos := ChunkCoord{X: 1, Y: 0, Z: -1}

	if _, ok := w.Get(pos); ok {
		t.Fatalf("Get on empty world returned a chunk")
	}

	c := solidChunk(pos)
	w.Insert(pos, c)
	got, ok := w.Get(pos)
	if !ok || got != c {
		t.Fatalf("Get after Insert: got %p ok=%v, want %p", got, ok, c)
	}

	// overwrite
	c2 := NewChunk(NewChunkData(pos))
	w.Insert(pos, c2)
	if got, _ := w.Get(pos); got != c2 {
		t.Fatalf("Insert did not overwrite existing chunk")
	}
	if w.Len() != 1 {
		t.Errorf("Len: got %d, want 1", w.Len())
	}
	if w.ModCount() != 2 {
		t.Errorf("ModCount: got %d, want 2", w.ModCount())
	}
}

func TestVoxelWorldInsertMismatchedKeyPanics(t *testing.T) {
	w := NewVoxelWorld()
	defer func() {
		if recover() == nil {
			t.Fatalf("Insert under the wrong key did not panic")
		}
	}()
	w.Insert(ChunkCoord{X: 1}, solidChunk(ChunkCoord{}))
}

func TestVoxelWorldConcurrentInsert(t *testing.T) {
	w := NewVoxelWorld()
	coords := RegionCoords(ChunkCoord{}, ChunkCoord{X: 3, Y: 1, Z: 3})
	var wg sync.WaitGroup
	for _, c := range coords {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Insert(c, NewChunk(NewChunkData(c)))
			_, _ = w.Get(c)
		}()
	}
	wg.Wait()
	if w.Len() != len(coords) {
		t.Fatalf("Len: got %d, want %d", w.Len(), len(coords))
	}
	if got := len(w.Chunks()); got != len(coords) {
		t.Fatalf("Chunks: got %d, want %d", got, len(coords))
	}
}

func TestChunkNeighboursSnapshot(t *testing.T) {
	w := NewVoxelWorld()
	center := ChunkCoord{X: 0, Y: 0, Z: 0}
	w.Insert(center, solidChunk(center))
	north := center.Add(North.Offset())
	down := center.Add(Down.Offset())
	w.Insert(north, solidChunk(north))
	w.Insert(down, solidChunk(down))

	nb := NewChunkNeighbours(w, center)
	if nb.Center() != center {
		t.Errorf("Center: got %v, want %v", nb.Center(), center)
	}
	if nb.Count() != 2 {
		t.Errorf("Count: got %d, want 2", nb.Count())
	}
	for _, d := range AllDirections {
		c, ok := nb.Get(d)
		want := d == North || d == Down
		if ok != want {
			t.Errorf("Get(%v): ok=%v, want %v", d, ok, want)
		}
		if ok && c.Position != center.Add(d.Offset()) {
			t.Errorf("Get(%v): chunk at %v", d, c.Position)
		}
	}
	if nb.Stale(w) {
		t.Errorf("fresh snapshot reported stale")
	}

	// snapshot does not see later inserts
	up := center.Add(Up.Offset())
	w.Insert(up, solidChunk(up))
	if _, ok := nb.Get(Up); ok {
		t.Errorf("snapshot picked up a chunk inserted after construction")
	}
	if !nb.Stale(w) {
		t.Errorf("snapshot not reported stale after insert")
	}
	if _, ok := NewChunkNeighbours(w, center).Get(Up); !ok {
		t.Errorf("rebuilt snapshot misses the new chunk")
	}
}

func TestChunkNeighboursNilWorld(t *testing.T) {
	nb := NewChunkNeighbours(nil, ChunkCoord{})
	for _, d := range AllDirections {
		if _, ok := nb.Get(d); ok {
			t.Errorf("nil world: Get(%v) reported a neighbour", d)
		}
	}
}

func TestRegionCoords(t *testing.T) {
	coords := RegionCoords(ChunkCoord{X: -1, Y: 0, Z: 0}, ChunkCoord{X: 0, Y: 1, Z: 2})
	if len(coords) != 2*2*3 {
		t.Fatalf("got %d coords, want 12", len(coords))
	}
	if coords[0] != (ChunkCoord{X: -1}) || coords[len(coords)-1] != (ChunkCoord{X: 0, Y: 1, Z: 2}) {
		t.Errorf("unexpected order: first %v last %v", coords[0], coords[len(coords)-1])
	}
	if RegionCoords(ChunkCoord{X: 1}, ChunkCoord{}) != nil {
		t.Errorf("inverted region should be empty")
	}
}
