// Package mapload builds immutable world descriptions from map files.
// A build reads the map JSON, resolves every tile against its atlas, and
// validates every entity placement, so the result is a self-consistent
// snapshot the session can apply atomically.
package mapload

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"greenfathom.com/mirehollow/atlas"
	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/terrain"
)

// SpawnPoint is a tile coordinate in the map file.
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement is one entity entry in the map file, in tile coordinates.
type Placement struct {
	Kind    entity.Kind    `json:"kind"`
	Def     string         `json:"def"`
	X       int            `json:"x"`
	Y       int            `json:"y"`
	Payload map[string]any `json:"payload,omitempty"`
}

// MapData is the on-disk map format.
type MapData struct {
	Name        string      `json:"name"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	TileSize    int         `json:"tile_size"`
	AtlasPath   string      `json:"atlas"`
	PlayerSpawn SpawnPoint  `json:"player_spawn"`
	Tiles       [][]string  `json:"tiles"` // 2D array of tile names [y][x]
	Entities    []Placement `json:"entities,omitempty"`
}

// Description is an immutable snapshot of a built world: the terrain plus the
// entities to instantiate, in insertion order. The player spec always comes
// first so it exists before anything that might reference it.
type Description struct {
	Name     string
	Terrain  *terrain.Grid
	Atlas    *atlas.Atlas
	Entities []entity.Spec
}

// MapLoadError reports a failed world build with the map path and the
// underlying cause.
type MapLoadError struct {
	Path string
	Err  error
}

func (e *MapLoadError) Error() string {
	return fmt.Sprintf("load map %s: %v", e.Path, e.Err)
}

func (e *MapLoadError) Unwrap() error { return e.Err }

// Builder produces world descriptions. Each Build call is independent and
// touches no shared state, so it may be invoked repeatedly; two builds of
// the same path are not guaranteed identical because the files may change
// between calls.
type Builder struct {
	// Library, when set, is used to reject placements whose definition the
	// game cannot spawn.
	Library *entity.Library
}

// Build loads and validates the map at mapPath. All failures are reported as
// *MapLoadError. The context is checked between I/O steps so an abandoned
// session does not pay for a build it will discard.
func (b *Builder) Build(ctx context.Context, mapPath string) (*Description, error) {
	fail := func(err error) (*Description, error) {
		return nil, &MapLoadError{Path: mapPath, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	raw, err := os.ReadFile(mapPath)
	if err != nil {
		return fail(err)
	}

	var data MapData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fail(err)
	}
	if err := validateMapData(&data); err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	sheet, err := atlas.Load(data.AtlasPath)
	if err != nil {
		return fail(err)
	}

	cells := make([]terrain.Cell, 0, data.Width*data.Height)
	for y, row := range data.Tiles {
		for x, name := range row {
			tile, ok := sheet.GetTile(name)
			if !ok {
				return fail(fmt.Errorf("tile %q at (%d,%d) not in atlas %s", name, x, y, data.AtlasPath))
			}
			cells = append(cells, terrain.Cell{
				Tile:     name,
				Walkable: tile.GetPropertyBool("walkable", true),
				Blocking: tile.GetPropertyBool("blocks_sight", false),
			})
		}
	}
	grid, err := terrain.NewGrid(data.Width, data.Height, data.TileSize, cells)
	if err != nil {
		return fail(err)
	}

	specs := make([]entity.Spec, 0, len(data.Entities)+1)
	specs = append(specs, entity.Spec{
		Kind: entity.KindPlayer,
		Def:  "player",
		Pos:  grid.Center(data.PlayerSpawn.X, data.PlayerSpawn.Y),
	})

	for i, p := range data.Entities {
		if !validKind(p.Kind) {
			return fail(fmt.Errorf("entity %d: unknown kind %q", i, p.Kind))
		}
		if p.Kind == entity.KindPlayer {
			// The player comes from player_spawn; a second one would
			// shadow it in the session.
			return fail(fmt.Errorf("entity %d: player entities are placed via player_spawn, not the entity list", i))
		}
		if p.X < 0 || p.X >= data.Width || p.Y < 0 || p.Y >= data.Height {
			return fail(fmt.Errorf("entity %d (%s): position (%d,%d) outside %dx%d map",
				i, p.Def, p.X, p.Y, data.Width, data.Height))
		}
		if b.Library != nil && !b.Library.Known(p.Def) {
			return fail(fmt.Errorf("entity %d: unknown definition %q", i, p.Def))
		}
		specs = append(specs, entity.Spec{
			Kind:    p.Kind,
			Def:     p.Def,
			Pos:     grid.Center(p.X, p.Y),
			Payload: p.Payload,
		})
	}

	return &Description{
		Name:     data.Name,
		Terrain:  grid,
		Atlas:    sheet,
		Entities: specs,
	}, nil
}

func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}
	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}
	if data.AtlasPath == "" {
		return fmt.Errorf("atlas path is required")
	}
	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}
	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}
	if s := data.PlayerSpawn; s.X < 0 || s.X >= data.Width || s.Y < 0 || s.Y >= data.Height {
		return fmt.Errorf("player spawn (%d,%d) outside %dx%d map", s.X, s.Y, data.Width, data.Height)
	}
	return nil
}

func validKind(k entity.Kind) bool {
	switch k {
	case entity.KindDecoration, entity.KindEnemy, entity.KindPlayer, entity.KindOther:
		return true
	}
	return false
}
