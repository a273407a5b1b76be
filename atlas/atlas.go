// Package atlas describes the tile sheets a map can reference. The config
// names every tile, where it sits on the sheet, and its gameplay properties.
// The sheet image itself is decoded lazily by the draw pass; loading a config
// only verifies the image file exists so a broken reference fails the map
// build instead of the first frame.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TileDefinition defines a single tile within an atlas.
type TileDefinition struct {
	Name       string         `json:"name"`       // semantic name (e.g. "mire_floor")
	AtlasX     int            `json:"atlas_x"`    // X position in atlas (in tiles)
	AtlasY     int            `json:"atlas_y"`    // Y position in atlas (in tiles)
	Properties map[string]any `json:"properties"` // walkable, blocks_sight, ...
}

// Config is the JSON description of a tile sheet.
type Config struct {
	Name       string           `json:"name"`
	ImagePath  string           `json:"image_path"`
	TileWidth  int              `json:"tile_width"`
	TileHeight int              `json:"tile_height"`
	Tiles      []TileDefinition `json:"tiles"`
}

// Atlas is a loaded tile sheet description.
type Atlas struct {
	Config      *Config
	TilesByName map[string]*TileDefinition

	image *ebiten.Image // decoded on first draw
}

// Load reads and validates an atlas config. The referenced image must exist
// but is not decoded here.
func Load(configPath string) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", configPath, err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config %s", configPath)
	}
	if _, err := os.Stat(config.ImagePath); err != nil {
		return nil, fmt.Errorf("atlas image missing for %s: %w", configPath, err)
	}

	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		if tile.Name != "" {
			tilesByName[tile.Name] = tile
		}
	}

	return &Atlas{
		Config:      &config,
		TilesByName: tilesByName,
	}, nil
}

// GetTile returns a tile definition by name.
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// EnsureImage decodes the sheet image if it has not been decoded yet.
// Requires a running ebiten context.
func (a *Atlas) EnsureImage() (*ebiten.Image, error) {
	if a.image != nil {
		return a.image, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(a.Config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", a.Config.ImagePath, err)
	}
	a.image = img
	return img, nil
}

// TileSubImage returns the sheet region for a tile definition. The image must
// already be decoded via EnsureImage.
func (a *Atlas) TileSubImage(tile *TileDefinition) *ebiten.Image {
	if a.image == nil {
		return nil
	}
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	rect := image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
	return a.image.SubImage(rect).(*ebiten.Image)
}

// DrawTile draws a named tile at the given screen coordinates.
func (a *Atlas) DrawTile(screen *ebiten.Image, tileName string, x, y float64) error {
	tile, ok := a.GetTile(tileName)
	if !ok {
		return fmt.Errorf("tile not found: %s", tileName)
	}
	if _, err := a.EnsureImage(); err != nil {
		return err
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(a.TileSubImage(tile), opts)
	return nil
}

// GetProperty retrieves a raw property from a tile definition.
func (td *TileDefinition) GetProperty(key string) (any, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetPropertyBool retrieves a boolean property.
func (td *TileDefinition) GetPropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetPropertyString retrieves a string property.
func (td *TileDefinition) GetPropertyString(key string, defaultVal string) string {
	val, ok := td.GetProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// GetPropertyInt retrieves an integer property.
func (td *TileDefinition) GetPropertyInt(key string, defaultVal int) int {
	val, ok := td.GetProperty(key)
	if !ok {
		return defaultVal
	}
	// JSON numbers are float64
	if floatVal, ok := val.(float64); ok {
		return int(floatVal)
	}
	return defaultVal
}
