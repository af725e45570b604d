package meshing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mini-cubes/internal/world"
)

// Unit-cube corners of each face, listed clockwise as seen from outside
// the cube. Triangulated as (0,1,2) and (2,3,0).
var quadTable = [6][4]mgl32.Vec3{
	world.North: {
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
		{1, 0, 1},
	},
	world.South: {
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 1},
		{0, 1, 0},
	},
	world.Up: {
		{0, 1, 0},
		{0, 1, 1},
		{1, 1, 1},
		{1, 1, 0},
	},
	world.Down: {
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 1},
		{0, 0, 1},
	},
	world.West: {
		{1, 0, 1},
		{1, 1, 1},
		{0, 1, 1},
		{0, 0, 1},
	},
	world.East: {
		{1, 0, 0},
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	},
}

// QuadCorners returns the four corners of the dir face of the voxel whose
// minimum corner is at pos.
func QuadCorners(dir world.Direction, pos mgl32.Vec3) [4]mgl32.Vec3 {
	if !dir.Valid() {
		panic(fmt.Sprintf("meshing: no quad for %v", dir))
	}
	var out [4]mgl32.Vec3
	for i, c := range quadTable[dir] {
		out[i] = pos.Add(c)
	}
	return out
}

// FaceNormal returns the outward normal shared by all four corners.
func FaceNormal(dir world.Direction) mgl32.Vec3 {
	return dir.Normal()
}
