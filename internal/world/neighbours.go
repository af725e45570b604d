package world

// ChunkNeighbours is a snapshot of the six chunks adjacent to a center
// chunk, taken from a VoxelWorld when the snapshot is built. It is never
// refreshed: callers that insert chunks afterwards must build a new one.
type ChunkNeighbours struct {
	center   ChunkCoord
	chunks   [6]*Chunk
	modCount uint64
}

// NewChunkNeighbours captures the neighbours of center. A nil world yields
// a snapshot with every neighbour absent.
func NewChunkNeighbours(w *VoxelWorld, center ChunkCoord) *ChunkNeighbours {
	n := &ChunkNeighbours{center: center}
	if w == nil {
		return n
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, dir := range AllDirections {
		n.chunks[dir] = w.chunks[center.Add(dir.Offset())]
	}
	n.modCount = w.modCount
	return n
}

// Center returns the coordinate the snapshot was built around.
func (n *ChunkNeighbours) Center() ChunkCoord {
	return n.center
}

// Get returns the neighbour in the given direction, if it was present.
func (n *ChunkNeighbours) Get(dir Direction) (*Chunk, bool) {
	dir.mustBeValid()
	if n == nil {
		return nil, false
	}
	c := n.chunks[dir]
	return c, c != nil
}

// Count returns how many of the six neighbours were present.
func (n *ChunkNeighbours) Count() int {
	if n == nil {
		return 0
	}
	count := 0
	for _, c := range n.chunks {
		if c != nil {
			count++
		}
	}
	return count
}

// Stale reports whether w has been modified since the snapshot was taken.
// It only detects the change; rebuilding is up to the caller.
func (n *ChunkNeighbours) Stale(w *VoxelWorld) bool {
	if w == nil {
		return false
	}
	return w.ModCount() != n.modCount
}
