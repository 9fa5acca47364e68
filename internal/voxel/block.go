package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DIM is the world-space edge length of one block.
const DIM float32 = 2.0

type Kind uint8

const (
	Void Kind = iota
	Solid
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "Void"
	case Solid:
		return "Solid"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Block is one grid cell. ID is an opaque material identifier carried along
// with the kind; nothing in this package interprets it.
type Block struct {
	Kind Kind
	ID   uint32
}

// NewSolid returns a solid block with the given id.
func NewSolid(id uint32) Block {
	return Block{Kind: Solid, ID: id}
}

// NewVoid returns an empty block with the given id.
func NewVoid(id uint32) Block {
	return Block{Kind: Void, ID: id}
}

func (b Block) IsSolid() bool {
	return b.Kind == Solid
}

func (b Block) String() string {
	return fmt.Sprintf("%s(%d)", b.Kind, b.ID)
}

// LocalMin and LocalMax give every block the same box, centered on its origin.
func (b Block) LocalMin() mgl32.Vec3 {
	return mgl32.Vec3{-DIM / 2, -DIM / 2, -DIM / 2}
}

func (b Block) LocalMax() mgl32.Vec3 {
	return mgl32.Vec3{DIM / 2, DIM / 2, DIM / 2}
}

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Axis returns the component for axis 0, 1 or 2.
func (c Coord) Axis(axis int) int {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// WithAxis returns c with the component for axis replaced by v.
func (c Coord) WithAxis(axis, v int) Coord {
	switch axis {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}

// WorldPos maps a grid coordinate to the world-space center of its block.
func (c Coord) WorldPos() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) * DIM, float32(c.Y) * DIM, float32(c.Z) * DIM}
}

// CoordFromWorld maps a world position to the grid. Anything below zero on an
// axis collapses to 0 since the grid has no negative cells.
func CoordFromWorld(p mgl32.Vec3) Coord {
	return Coord{
		X: worldToCell(p.X()),
		Y: worldToCell(p.Y()),
		Z: worldToCell(p.Z()),
	}
}

func worldToCell(v float32) int {
	if v < 0 {
		return 0
	}
	return int(v / DIM)
}
