package meshing

import (
	"math/bits"
	"strings"

	"mini-cubes/internal/world"
)

// FaceSet is an unordered set of directions, one bit per world.Direction.
type FaceSet uint8

// FacesOf builds a set from the given directions.
func FacesOf(dirs ...world.Direction) FaceSet {
	var s FaceSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns s plus d.
func (s FaceSet) With(d world.Direction) FaceSet {
	return s | 1<<d
}

// Has reports whether d is in the set.
func (s FaceSet) Has(d world.Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of directions in the set.
func (s FaceSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Directions lists the members in world.AllDirections order.
func (s FaceSet) Directions() []world.Direction {
	out := make([]world.Direction, 0, s.Len())
	for _, d := range world.AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s FaceSet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// BoundaryPolicy decides what a chunk-boundary face sees when the
// neighbouring chunk is not in the world.
//
// X and Z edges are always treated as open air and so is the sky above.
// Below, SealFloor hides Down faces so nothing renders into the void under
// the lowest loaded layer.
type BoundaryPolicy struct {
	SealFloor bool
}

// DefaultBoundaryPolicy seals the world floor.
var DefaultBoundaryPolicy = BoundaryPolicy{SealFloor: true}

func (p BoundaryPolicy) absentNeighbourExposes(dir world.Direction) bool {
	if dir == world.Down {
		return !p.SealFloor
	}
	return true
}

// ExposedFaces returns the directions in which the solid voxel at local
// (x, y, z) of data has no solid voxel immediately beyond it, looking into
// nb for voxels across the chunk boundary. It uses DefaultBoundaryPolicy.
func ExposedFaces(data *world.ChunkData, nb *world.ChunkNeighbours, x, y, z int) FaceSet {
	return ExposedFacesWithPolicy(data, nb, x, y, z, DefaultBoundaryPolicy)
}

// ExposedFacesWithPolicy is ExposedFaces with an explicit boundary policy.
func ExposedFacesWithPolicy(data *world.ChunkData, nb *world.ChunkNeighbours, x, y, z int, policy BoundaryPolicy) FaceSet {
	world.MustBeLocal(x, y, z)
	var faces FaceSet
	for _, dir := range world.AllDirections {
		if faceExposed(data, nb, x, y, z, dir, policy) {
			faces = faces.With(dir)
		}
	}
	return faces
}

func faceExposed(data *world.ChunkData, nb *world.ChunkNeighbours, x, y, z int, dir world.Direction, policy BoundaryPolicy) bool {
	off := dir.Offset()
	nx, ny, nz := x+off.X, y+off.Y, z+off.Z
	if world.InBounds(nx, ny, nz) {
		return !data.Get(nx, ny, nz)
	}

	neighbour, ok := nb.Get(dir)
	if !ok {
		return policy.absentNeighbourExposes(dir)
	}
	// Only the stepped axis leaves the chunk; it lands on the neighbour's
	// opposite boundary layer.
	return !neighbour.Data.Get(acrossBoundary(nx), acrossBoundary(ny), acrossBoundary(nz))
}

// acrossBoundary maps a coordinate one step outside the chunk to the
// matching boundary layer of the adjacent chunk.
func acrossBoundary(v int) int {
	switch {
	case v < 0:
		return world.ChunkSize - 1
	case v >= world.ChunkSize:
		return 0
	default:
		return v
	}
}
