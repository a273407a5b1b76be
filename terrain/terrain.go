// Package terrain holds the world's tile grid. A grid is built once by the
// map loader and treated as immutable afterwards; live rebuilds swap whole
// grids rather than editing cells in place.
package terrain

import (
	"fmt"

	"greenfathom.com/mirehollow/geom"
)

// Cell is one tile of the grid with the properties the core cares about.
// Rendering details (atlas coordinates, images) stay in the atlas package.
type Cell struct {
	Tile     string // tile name resolved against the atlas
	Walkable bool
	Blocking bool // blocks line of sight
}

// Grid is a row-major tile grid. Width and Height are in tiles, TileSize in
// world pixels per tile.
type Grid struct {
	Width    int
	Height   int
	TileSize int
	cells    []Cell
}

// NewGrid builds a grid from row-major cells. The cell count must match the
// dimensions exactly.
func NewGrid(width, height, tileSize int, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", tileSize)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("cell count mismatch: expected %d, got %d", width*height, len(cells))
	}
	return &Grid{Width: width, Height: height, TileSize: tileSize, cells: cells}, nil
}

// CellAt returns the cell at grid coordinates (x, y).
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Cell{}, false
	}
	return g.cells[y*g.Width+x], true
}

// PixelWidth returns the grid width in world pixels.
func (g *Grid) PixelWidth() float64 {
	return float64(g.Width * g.TileSize)
}

// PixelHeight returns the grid height in world pixels.
func (g *Grid) PixelHeight() float64 {
	return float64(g.Height * g.TileSize)
}

// TileAt returns the grid coordinates containing a world point.
func (g *Grid) TileAt(p geom.WorldPoint) (int, int) {
	return int(p.X) / g.TileSize, int(p.Y) / g.TileSize
}

// InBounds reports whether a world point falls inside the grid.
func (g *Grid) InBounds(p geom.WorldPoint) bool {
	return p.X >= 0 && p.X < g.PixelWidth() && p.Y >= 0 && p.Y < g.PixelHeight()
}

// Walkable reports whether the tile containing a world point can be walked
// on. Points outside the grid are not walkable.
func (g *Grid) Walkable(p geom.WorldPoint) bool {
	if !g.InBounds(p) {
		return false
	}
	tx, ty := g.TileAt(p)
	cell, ok := g.CellAt(tx, ty)
	return ok && cell.Walkable
}

// Center returns the world position of the center of tile (x, y).
func (g *Grid) Center(x, y int) geom.WorldPoint {
	half := float64(g.TileSize) / 2
	return geom.WorldPoint{
		X: float64(x*g.TileSize) + half,
		Y: float64(y*g.TileSize) + half,
	}
}
