// Package placeholders generates the stand-in tile sheet the game ships
// with until real art lands. Every tile is drawn procedurally at build-tool
// time; the game itself never imports this package.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// TileSize is the pixel size of every generated tile.
const TileSize = 16

// Palette holds the swamp color scheme.
var Palette = struct {
	Moss     color.RGBA
	Mire     color.RGBA
	BogWater color.RGBA
	Stone    color.RGBA
	RootWall color.RGBA
	Reed     color.RGBA
	Mushroom color.RGBA
	Lurker   color.RGBA
	Wisp     color.RGBA
	Lantern  color.RGBA
}{
	Moss:     color.RGBA{70, 105, 60, 255},
	Mire:     color.RGBA{90, 80, 55, 255},
	BogWater: color.RGBA{40, 65, 75, 255},
	Stone:    color.RGBA{115, 115, 120, 255},
	RootWall: color.RGBA{75, 55, 40, 255},
	Reed:     color.RGBA{120, 150, 80, 255},
	Mushroom: color.RGBA{190, 120, 140, 255},
	Lurker:   color.RGBA{150, 60, 60, 255},
	Wisp:     color.RGBA{220, 230, 170, 255},
	Lantern:  color.RGBA{230, 180, 90, 255},
}

// SolidTile fills a tile with one color.
func SolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// BorderedTile fills a tile and outlines it.
func BorderedTile(fill, border color.RGBA) *image.RGBA {
	img := SolidTile(fill)
	for i := 0; i < TileSize; i++ {
		img.Set(i, 0, border)
		img.Set(i, TileSize-1, border)
		img.Set(0, i, border)
		img.Set(TileSize-1, i, border)
	}
	return img
}

// SpeckledTile scatters a second color over a base fill, a cheap texture for
// organic ground.
func SpeckledTile(base, speck color.RGBA) *image.RGBA {
	img := SolidTile(base)
	for y := 2; y < TileSize; y += 5 {
		for x := (y / 5) % 3; x < TileSize; x += 4 {
			img.Set(x, y, speck)
		}
	}
	return img
}

// CircleTile draws a filled circle on a transparent tile, used for entity
// sprites.
func CircleTile(fill, outline color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	c := float64(TileSize-1) / 2
	r := float64(TileSize)/2 - 2
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := float64(x) - c
			dy := float64(y) - c
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= (r-1)*(r-1):
				img.Set(x, y, fill)
			case d2 <= r*r:
				img.Set(x, y, outline)
			}
		}
	}
	return img
}

// Darken scales a color toward black.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Assemble packs tiles left to right, top to bottom, into one sheet image.
// Nil entries leave transparent gaps.
func Assemble(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	sheet := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))
	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(sheet, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}
	return sheet
}

// SavePNG encodes an image to a file, creating parent directories as needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
