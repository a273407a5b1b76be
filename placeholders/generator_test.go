package placeholders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateHollowSheetDimensions(t *testing.T) {
	sheet := GenerateHollowSheet()
	b := sheet.Bounds()
	// 10 tiles in 4 columns is 3 rows.
	if b.Dx() != 4*TileSize || b.Dy() != 3*TileSize {
		t.Errorf("Expected %dx%d sheet, got %dx%d", 4*TileSize, 3*TileSize, b.Dx(), b.Dy())
	}
}

func TestGenerateHollowSheetTileColors(t *testing.T) {
	sheet := GenerateHollowSheet()

	// Center of the moss tile at (0, 0).
	if got := sheet.RGBAAt(TileSize/2, TileSize/2); got != Palette.Moss && got != Darken(Palette.Moss, 0.7) {
		t.Errorf("Expected moss colors at tile (0,0), got %v", got)
	}
	// Center of the wisp sprite at column 0, row 2.
	if got := sheet.RGBAAt(TileSize/2, 2*TileSize+TileSize/2); got != Palette.Wisp {
		t.Errorf("Expected wisp fill at tile (0,2), got %v", got)
	}
	// The gap after the last tile stays transparent.
	if got := sheet.RGBAAt(2*TileSize+TileSize/2, 2*TileSize+TileSize/2); got.A != 0 {
		t.Errorf("Expected transparent gap at tile (2,2), got %v", got)
	}
}

func TestGenerateAndSaveWritesDecodablePNG(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "tiles", "hollow.png"))
	if err != nil {
		t.Fatalf("Generated sheet missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Generated sheet is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 4*TileSize {
		t.Errorf("Expected width %d, got %d", 4*TileSize, img.Bounds().Dx())
	}
}
