package terrain

import (
	"testing"

	"greenfathom.com/mirehollow/geom"
)

func makeGrid(t *testing.T) *Grid {
	t.Helper()
	// 3x2 grid, 16px tiles. Top row floor, bottom row wall.
	cells := []Cell{
		{Tile: "floor", Walkable: true}, {Tile: "floor", Walkable: true}, {Tile: "floor", Walkable: true},
		{Tile: "wall", Blocking: true}, {Tile: "wall", Blocking: true}, {Tile: "wall", Blocking: true},
	}
	g, err := NewGrid(3, 2, 16, cells)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 2, 16, nil); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewGrid(2, 2, 0, make([]Cell, 4)); err == nil {
		t.Error("expected error for zero tile size")
	}
	if _, err := NewGrid(2, 2, 16, make([]Cell, 3)); err == nil {
		t.Error("expected error for cell count mismatch")
	}
}

func TestCellAt(t *testing.T) {
	g := makeGrid(t)

	cell, ok := g.CellAt(2, 0)
	if !ok {
		t.Fatal("expected cell at (2,0)")
	}
	if cell.Tile != "floor" {
		t.Errorf("expected floor at (2,0), got %q", cell.Tile)
	}

	cell, ok = g.CellAt(0, 1)
	if !ok {
		t.Fatal("expected cell at (0,1)")
	}
	if cell.Tile != "wall" {
		t.Errorf("expected wall at (0,1), got %q", cell.Tile)
	}

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}} {
		if _, ok := g.CellAt(xy[0], xy[1]); ok {
			t.Errorf("expected no cell at (%d,%d)", xy[0], xy[1])
		}
	}
}

func TestBoundsAndWalkable(t *testing.T) {
	g := makeGrid(t)

	if !g.InBounds(geom.WorldPoint{X: 0, Y: 0}) {
		t.Error("expected origin in bounds")
	}
	if g.InBounds(geom.WorldPoint{X: 48, Y: 0}) {
		t.Error("expected right edge out of bounds")
	}
	if g.InBounds(geom.WorldPoint{X: -1, Y: 5}) {
		t.Error("expected negative X out of bounds")
	}

	if !g.Walkable(geom.WorldPoint{X: 8, Y: 8}) {
		t.Error("expected floor tile walkable")
	}
	if g.Walkable(geom.WorldPoint{X: 8, Y: 24}) {
		t.Error("expected wall tile not walkable")
	}
	if g.Walkable(geom.WorldPoint{X: 100, Y: 100}) {
		t.Error("expected out-of-bounds point not walkable")
	}
}

func TestCenter(t *testing.T) {
	g := makeGrid(t)
	c := g.Center(1, 1)
	want := geom.WorldPoint{X: 24, Y: 24}
	if c != want {
		t.Errorf("expected center %+v, got %+v", want, c)
	}
}
