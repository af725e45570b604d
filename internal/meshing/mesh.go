package meshing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mini-cubes/internal/profiling"
	"mini-cubes/internal/world"
)

// VertexStride is the number of float32 per vertex in Interleaved output
// (pos.xyz + normal.xyz).
const VertexStride = 6

// ErrMalformedMesh is returned by Validate.
var ErrMalformedMesh = errors.New("meshing: malformed mesh")

// quadIndices triangulates one quad, preserving its clockwise winding.
var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// Mesh is the renderable surface of one chunk: parallel vertex and normal
// slices plus a triangle list. Vertices are in world space; every quad
// owns its four vertices (no sharing between quads).
type Mesh struct {
	Coord    world.ChunkCoord
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint32
}

// BuildChunkMesh emits one quad per exposed face of every solid voxel in c,
// resolving boundary faces against the chunks currently in w.
func BuildChunkMesh(w *world.VoxelWorld, c *world.Chunk) *Mesh {
	return BuildChunkMeshWithPolicy(w, c, DefaultBoundaryPolicy)
}

// BuildChunkMeshWithPolicy is BuildChunkMesh with an explicit boundary policy.
func BuildChunkMeshWithPolicy(w *world.VoxelWorld, c *world.Chunk, policy BoundaryPolicy) *Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()
	if c == nil {
		return nil
	}

	nb := world.NewChunkNeighbours(w, c.Position)
	m := &Mesh{Coord: c.Position}

	for x := range world.ChunkSize {
		for y := range world.ChunkSize {
			for z := range world.ChunkSize {
				if !c.Data.Get(x, y, z) {
					continue
				}
				faces := ExposedFacesWithPolicy(c.Data, nb, x, y, z, policy)
				if faces == 0 {
					continue
				}
				pos := c.VoxelWorldPos(x, y, z)
				for _, dir := range world.AllDirections {
					if faces.Has(dir) {
						m.appendQuad(dir, pos)
					}
				}
			}
		}
	}

	m.Indices = GenerateIndices(len(m.Vertices))
	return m
}

func (m *Mesh) appendQuad(dir world.Direction, pos mgl32.Vec3) {
	corners := QuadCorners(dir, pos)
	normal := FaceNormal(dir)
	m.Vertices = append(m.Vertices, corners[:]...)
	m.Normals = append(m.Normals, normal, normal, normal, normal)
}

// GenerateIndices returns the triangle list for vertexCount/4 independent
// quads: {0,1,2, 2,3,0} offset by 4 per quad.
func GenerateIndices(vertexCount int) []uint32 {
	quads := vertexCount / 4
	indices := make([]uint32, 0, quads*len(quadIndices))
	for q := range quads {
		base := uint32(4 * q)
		for _, i := range quadIndices {
			indices = append(indices, base+i)
		}
	}
	return indices
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.Vertices) / 4
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Validate checks that the three buffers agree with each other.
func (m *Mesh) Validate() error {
	nv := len(m.Vertices)
	if nv%4 != 0 {
		return fmt.Errorf("%w: %d vertices is not a multiple of 4", ErrMalformedMesh, nv)
	}
	if len(m.Normals) != nv {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrMalformedMesh, len(m.Normals), nv)
	}
	if want := 6 * nv / 4; len(m.Indices) != want {
		return fmt.Errorf("%w: %d indices, want %d", ErrMalformedMesh, len(m.Indices), want)
	}
	for i, idx := range m.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrMalformedMesh, idx, i, nv)
		}
	}
	return nil
}

// Interleaved packs positions and normals into one float slice with
// VertexStride floats per vertex, ready for a single GPU buffer.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		n := m.Normals[i]
		out = append(out, v[0], v[1], v[2], n[0], n[1], n[2])
	}
	return out
}
