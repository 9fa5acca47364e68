package voxel

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("voxel: coordinate out of range")

// Cell pairs a block with the coordinate it was read from. Cells are query
// results; they are copies and writing to one does not touch the grid.
type Cell struct {
	Block Block
	Pos   Coord
}

// Grid is a fixed cube of blocks, capacity cells per side, stored flat.
type Grid struct {
	capacity int
	blocks   []Block
}

// NewGrid creates a grid with every cell Void(0).
func NewGrid(capacity int) *Grid {
	if capacity < 0 {
		capacity = 0
	}
	return &Grid{
		capacity: capacity,
		blocks:   make([]Block, capacity*capacity*capacity),
	}
}

func (g *Grid) Capacity() int {
	return g.capacity
}

// InBounds reports whether c addresses a stored cell.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.capacity &&
		c.Y >= 0 && c.Y < g.capacity &&
		c.Z >= 0 && c.Z < g.capacity
}

func (g *Grid) index(c Coord) int {
	return (c.X*g.capacity+c.Y)*g.capacity + c.Z
}

// Block returns the block at c.
func (g *Grid) Block(c Coord) (Block, error) {
	if !g.InBounds(c) {
		return Block{}, fmt.Errorf("block %s: %w", c, ErrOutOfRange)
	}
	return g.blocks[g.index(c)], nil
}

// AddBlock writes b at c. Out-of-range coordinates are ignored; the result
// tells callers that care whether anything was written.
func (g *Grid) AddBlock(b Block, c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	g.blocks[g.index(c)] = b
	return true
}

// RemoveBlock resets c to Void(0). Out-of-range coordinates are ignored.
func (g *Grid) RemoveBlock(c Coord) bool {
	return g.AddBlock(NewVoid(0), c)
}

// Neighborhood returns every solid cell in the cube [center-radius, center+radius]
// clipped to the grid, ordered by ascending x, then y, then z.
func (g *Grid) Neighborhood(center Coord, radius int) []Cell {
	return g.AppendNeighborhood(nil, center, radius)
}

// AppendNeighborhood is Neighborhood appending into dst, so a per-frame
// caller can reuse one buffer.
func (g *Grid) AppendNeighborhood(dst []Cell, center Coord, radius int) []Cell {
	if radius < 0 {
		return dst
	}
	x0, x1 := g.span(center.X, radius)
	y0, y1 := g.span(center.Y, radius)
	z0, z1 := g.span(center.Z, radius)

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			row := (x*g.capacity + y) * g.capacity
			for z := z0; z < z1; z++ {
				b := g.blocks[row+z]
				if b.IsSolid() {
					dst = append(dst, Cell{Block: b, Pos: Coord{x, y, z}})
				}
			}
		}
	}
	return dst
}

// span clips [c-r, c+r] to the grid as a half-open range.
func (g *Grid) span(c, r int) (int, int) {
	lo := max(c-r, 0)
	hi := min(c+r+1, g.capacity)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// SolidCount returns the number of solid cells.
func (g *Grid) SolidCount() int {
	n := 0
	for _, b := range g.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// Solids returns every solid cell, in the same order as Neighborhood.
func (g *Grid) Solids() []Cell {
	var cells []Cell
	for i, b := range g.blocks {
		if !b.IsSolid() {
			continue
		}
		z := i % g.capacity
		y := (i / g.capacity) % g.capacity
		x := i / (g.capacity * g.capacity)
		cells = append(cells, Cell{Block: b, Pos: Coord{x, y, z}})
	}
	return cells
}
