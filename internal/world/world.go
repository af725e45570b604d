package world

import (
	"fmt"
	"sync"
)

// VoxelWorld is the sparse chunk store. It is safe for concurrent use;
// chunks stored in it are shared and must not be modified.
type VoxelWorld struct {
	mu       sync.RWMutex
	chunks   map[ChunkCoord]*Chunk
	modCount uint64 // increases on every insert
}

// NewVoxelWorld creates an empty world.
func NewVoxelWorld() *VoxelWorld {
	return &VoxelWorld{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Insert stores chunk at coord, replacing any chunk already there.
func (w *VoxelWorld) Insert(coord ChunkCoord, chunk *Chunk) {
	if chunk == nil {
		panic(fmt.Sprintf("world: Insert nil chunk at %v", coord))
	}
	if chunk.Position != coord {
		panic(fmt.Sprintf("world: Insert chunk positioned at %v under key %v", chunk.Position, coord))
	}
	w.mu.Lock()
	w.chunks[coord] = chunk
	w.modCount++
	w.mu.Unlock()
}

// Get returns the chunk at coord, if one was inserted.
func (w *VoxelWorld) Get(coord ChunkCoord) (*Chunk, bool) {
	w.mu.RLock()
	c, ok := w.chunks[coord]
	w.mu.RUnlock()
	return c, ok
}

// Len returns the number of stored chunks.
func (w *VoxelWorld) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Chunks returns every stored chunk in no particular order.
func (w *VoxelWorld) Chunks() []*Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// ModCount returns the current modification count of the chunk map.
func (w *VoxelWorld) ModCount() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.modCount
}
