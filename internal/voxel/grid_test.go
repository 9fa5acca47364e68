package voxel

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGridIsVoid(t *testing.T) {
	g := NewGrid(4)

	if g.Capacity() != 4 {
		t.Errorf("Expected capacity 4, got %d", g.Capacity())
	}
	if g.SolidCount() != 0 {
		t.Errorf("Expected empty grid, got %d solid cells", g.SolidCount())
	}

	b, err := g.Block(Coord{3, 3, 3})
	if err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if b != NewVoid(0) {
		t.Errorf("Expected Void(0), got %v", b)
	}
}

func TestAddBlockOutOfRangeIsNoop(t *testing.T) {
	g := NewGrid(4)

	for _, c := range []Coord{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}, {-1, 0, 0}, {9, 9, 9}} {
		if g.AddBlock(NewSolid(1), c) {
			t.Errorf("AddBlock(%v) should report no write", c)
		}
	}
	if g.SolidCount() != 0 {
		t.Errorf("Out-of-range adds changed the grid: %d solid cells", g.SolidCount())
	}
}

func TestAddBlockThenNeighborhood(t *testing.T) {
	g := NewGrid(8)
	pos := Coord{2, 3, 4}

	if !g.AddBlock(NewSolid(7), pos) {
		t.Fatal("AddBlock should write an in-range cell")
	}

	cells := g.Neighborhood(Coord{2, 2, 2}, 2)
	if len(cells) != 1 {
		t.Fatalf("Expected 1 cell, got %d", len(cells))
	}
	if cells[0].Pos != pos {
		t.Errorf("Expected position %v, got %v", pos, cells[0].Pos)
	}
	if cells[0].Block != NewSolid(7) {
		t.Errorf("Expected Solid(7), got %v", cells[0].Block)
	}
}

func TestNeighborhoodIsInclusiveCube(t *testing.T) {
	g := NewGrid(8)
	g.AddBlock(NewSolid(0), Coord{5, 5, 5}) // corner of radius 1 around (4,4,4)
	g.AddBlock(NewSolid(0), Coord{6, 4, 4}) // just outside

	cells := g.Neighborhood(Coord{4, 4, 4}, 1)
	if len(cells) != 1 || cells[0].Pos != (Coord{5, 5, 5}) {
		t.Errorf("Expected only (5,5,5), got %v", cells)
	}
}

func TestNeighborhoodClipsToGrid(t *testing.T) {
	g := NewGrid(3)
	g.AddBlock(NewSolid(0), Coord{0, 0, 0})
	g.AddBlock(NewSolid(0), Coord{2, 2, 2})

	cells := g.Neighborhood(Coord{0, 0, 0}, 10)
	if len(cells) != 2 {
		t.Errorf("Expected 2 cells, got %d", len(cells))
	}

	if cells := g.Neighborhood(Coord{50, 50, 50}, 2); len(cells) != 0 {
		t.Errorf("Expected no cells far outside the grid, got %d", len(cells))
	}
	if cells := g.Neighborhood(Coord{1, 1, 1}, -1); len(cells) != 0 {
		t.Errorf("Expected no cells for negative radius, got %d", len(cells))
	}
}

func TestNeighborhoodOrder(t *testing.T) {
	g := NewGrid(4)
	order := []Coord{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {0, 0, 0}, {1, 1, 1}}
	for _, c := range order {
		g.AddBlock(NewSolid(0), c)
	}

	want := []Coord{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}}
	cells := g.Neighborhood(Coord{1, 1, 1}, 1)
	if len(cells) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(cells))
	}
	for i, c := range cells {
		if c.Pos != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], c.Pos)
		}
	}
}

func TestNeighborhoodSkipsVoid(t *testing.T) {
	g := NewGrid(4)
	g.AddBlock(NewVoid(3), Coord{1, 1, 1})

	if cells := g.Neighborhood(Coord{1, 1, 1}, 1); len(cells) != 0 {
		t.Errorf("Void cells must not be returned, got %v", cells)
	}
}

func TestRemoveBlock(t *testing.T) {
	g := NewGrid(4)
	pos := Coord{1, 2, 3}
	g.AddBlock(NewSolid(5), pos)

	if !g.RemoveBlock(pos) {
		t.Error("RemoveBlock should write an in-range cell")
	}
	b, _ := g.Block(pos)
	if b != NewVoid(0) {
		t.Errorf("Expected Void(0) after remove, got %v", b)
	}

	// Must not panic.
	if g.RemoveBlock(Coord{4, 4, 4}) {
		t.Error("RemoveBlock out of range should report no write")
	}
	if g.RemoveBlock(Coord{-1, 0, 0}) {
		t.Error("RemoveBlock with negative coordinate should report no write")
	}
}

func TestBlockOutOfRange(t *testing.T) {
	g := NewGrid(2)
	_, err := g.Block(Coord{2, 0, 0})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestSolidsMatchesNeighborhood(t *testing.T) {
	g := NewGrid(5)
	g.AddBlock(NewSolid(1), Coord{4, 0, 2})
	g.AddBlock(NewSolid(2), Coord{0, 3, 1})
	g.AddBlock(NewSolid(3), Coord{2, 2, 2})

	solids := g.Solids()
	all := g.Neighborhood(Coord{2, 2, 2}, 5)
	if len(solids) != 3 || len(all) != 3 {
		t.Fatalf("Expected 3 solids, got %d and %d", len(solids), len(all))
	}
	for i := range solids {
		if solids[i] != all[i] {
			t.Errorf("Cell %d differs: %v vs %v", i, solids[i], all[i])
		}
	}
}

func TestCoordWorldMapping(t *testing.T) {
	c := Coord{1, 2, 3}
	if c.WorldPos() != (mgl32.Vec3{2, 4, 6}) {
		t.Errorf("Expected world pos (2,4,6), got %v", c.WorldPos())
	}

	got := CoordFromWorld(mgl32.Vec3{-3, 4.5, 7.9})
	if got != (Coord{0, 2, 3}) {
		t.Errorf("Expected (0,2,3), got %v", got)
	}
}

func TestCoordAxis(t *testing.T) {
	c := Coord{1, 2, 3}
	if c.Axis(0) != 1 || c.Axis(1) != 2 || c.Axis(2) != 3 {
		t.Errorf("Axis accessors wrong for %v", c)
	}
	if c.WithAxis(1, 9) != (Coord{1, 9, 3}) {
		t.Errorf("WithAxis wrong: %v", c.WithAxis(1, 9))
	}
}

func TestBlockBox(t *testing.T) {
	b := NewSolid(0)
	if b.LocalMin() != (mgl32.Vec3{-1, -1, -1}) || b.LocalMax() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Unexpected block box %v..%v", b.LocalMin(), b.LocalMax())
	}
	if b.String() != "Solid(0)" {
		t.Errorf("Expected Solid(0), got %s", b.String())
	}
}
