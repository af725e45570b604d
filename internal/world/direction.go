package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction names one of the six axis-aligned faces of a voxel.
type Direction uint8

const (
	North Direction = iota // +X
	South                  // -X
	Up                     // +Y
	Down                   // -Y
	West                   // +Z
	East                   // -Z
)

// AllDirections lists every direction in a fixed order.
var AllDirections = [6]Direction{North, South, Up, Down, West, East}

var directionNormals = [6]mgl32.Vec3{
	North: {1, 0, 0},
	South: {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
	West:  {0, 0, 1},
	East:  {0, 0, -1},
}

var directionOffsets = [6]ChunkCoord{
	North: {X: 1},
	South: {X: -1},
	Up:    {Y: 1},
	Down:  {Y: -1},
	West:  {Z: 1},
	East:  {Z: -1},
}

var directionNames = [6]string{
	North: "North",
	South: "South",
	Up:    "Up",
	Down:  "Down",
	West:  "West",
	East:  "East",
}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool {
	return d <= East
}

func (d Direction) mustBeValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("world: invalid direction %d", uint8(d)))
	}
}

// Normal returns the outward unit normal of the face.
func (d Direction) Normal() mgl32.Vec3 {
	d.mustBeValid()
	return directionNormals[d]
}

// Offset returns the chunk-space (and voxel-space) step toward the face.
func (d Direction) Offset() ChunkCoord {
	d.mustBeValid()
	return directionOffsets[d]
}

// Opposite returns the direction facing the other way on the same axis.
func (d Direction) Opposite() Direction {
	d.mustBeValid()
	// pairs are laid out as (+axis, -axis)
	return d ^ 1
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}
