package placeholders

import "image"

// GenerateHollowSheet builds the sheet matching data/atlases/hollow.json.
//
// Layout, 4 columns:
//
//	row 0: moss, mire, bog_water, stone
//	row 1: root_wall, reed, mushroom, bog_lurker
//	row 2: wisp, lantern
func GenerateHollowSheet() *image.RGBA {
	tiles := []*image.RGBA{
		// row 0: ground
		SpeckledTile(Palette.Moss, Darken(Palette.Moss, 0.7)),
		SpeckledTile(Palette.Mire, Darken(Palette.Mire, 0.75)),
		SpeckledTile(Palette.BogWater, Darken(Palette.BogWater, 0.6)),
		SolidTile(Palette.Stone),
		// row 1: walls and transient sprites
		BorderedTile(Palette.RootWall, Darken(Palette.RootWall, 0.5)),
		CircleTile(Palette.Reed, Darken(Palette.Reed, 0.6)),
		CircleTile(Palette.Mushroom, Darken(Palette.Mushroom, 0.6)),
		CircleTile(Palette.Lurker, Darken(Palette.Lurker, 0.5)),
		// row 2: persistent sprites
		CircleTile(Palette.Wisp, Darken(Palette.Wisp, 0.6)),
		CircleTile(Palette.Lantern, Darken(Palette.Lantern, 0.6)),
	}
	return Assemble(tiles, 4)
}

// GenerateAndSave writes the sheet to its conventional path under dataDir.
func GenerateAndSave(dataDir string) error {
	return SavePNG(GenerateHollowSheet(), sheetPath(dataDir))
}

func sheetPath(dataDir string) string {
	return dataDir + "/tiles/hollow.png"
}
