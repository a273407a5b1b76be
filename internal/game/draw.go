package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"greenfathom.com/mirehollow/atlas"
	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/geom"
	"greenfathom.com/mirehollow/terrain"
)

// Fallback colors for entities whose sprite is missing from the atlas.
var kindColors = map[entity.Kind]color.RGBA{
	entity.KindDecoration: {110, 140, 90, 255},
	entity.KindEnemy:      {200, 80, 80, 255},
	entity.KindOther:      {150, 150, 170, 255},
}

var playerColor = color.RGBA{235, 220, 120, 255}

// Draw renders the current world and the loading overlay on top of it. The
// world is drawn at 1:1 into an offscreen scene texture and then scaled by
// the camera zoom, so tile art stays pixel-aligned.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld()
	if g.scene != nil {
		view := g.session.Camera()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(view.Zoom, view.Zoom)
		screen.DrawImage(g.scene, opts)
	}
	g.drawOverlay(screen)
}

func (g *Game) drawWorld() {
	grid := g.session.Terrain()
	view := g.session.Camera()
	if grid == nil || view.Zoom <= 0 {
		return
	}

	w := int(math.Ceil(view.ViewportW / view.Zoom))
	h := int(math.Ceil(view.ViewportH / view.Zoom))
	if g.scene == nil || g.scene.Bounds().Dx() != w || g.scene.Bounds().Dy() != h {
		if g.scene != nil {
			g.scene.Deallocate()
		}
		g.scene = ebiten.NewImage(w, h)
	}
	g.scene.Fill(color.RGBA{16, 20, 18, 255})

	g.drawTerrain(grid, view, w, h)
	g.drawEntities(view)
}

func (g *Game) drawTerrain(grid *terrain.Grid, view geom.CameraView, w, h int) {
	sheet := g.session.Atlas()
	if sheet == nil {
		return
	}

	ts := grid.TileSize
	x0 := int(math.Floor(view.Origin.X / float64(ts)))
	y0 := int(math.Floor(view.Origin.Y / float64(ts)))
	x1 := int(math.Ceil((view.Origin.X + float64(w)) / float64(ts)))
	y1 := int(math.Ceil((view.Origin.Y + float64(h)) / float64(ts)))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > grid.Width {
		x1 = grid.Width
	}
	if y1 > grid.Height {
		y1 = grid.Height
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell, ok := grid.CellAt(x, y)
			if !ok || cell.Tile == "" {
				continue
			}
			sx := float64(x*ts) - view.Origin.X
			sy := float64(y*ts) - view.Origin.Y
			if err := sheet.DrawTile(g.scene, cell.Tile, sx, sy); err != nil {
				// The builder validated every tile name; a failure here
				// means the atlas image itself is unreadable.
				vector.DrawFilledRect(g.scene, float32(sx), float32(sy),
					float32(ts), float32(ts), color.RGBA{90, 40, 90, 255}, false)
			}
		}
	}
}

func (g *Game) drawEntities(view geom.CameraView) {
	sheet := g.session.Atlas()
	var player entity.Entity

	for _, e := range g.session.Entities() {
		if e.Kind() == entity.KindPlayer {
			player = e
			continue
		}
		g.drawEntity(e, view, sheet)
	}
	// Player last, on top of everything it walks past.
	if player != nil {
		g.drawEntity(player, view, sheet)
	}
}

func (g *Game) drawEntity(e entity.Entity, view geom.CameraView, sheet *atlas.Atlas) {
	pos := e.Position()
	if !view.Contains(pos) {
		return
	}
	sx := pos.X - view.Origin.X
	sy := pos.Y - view.Origin.Y

	if sheet != nil {
		if tile, ok := sheet.GetTile(e.Sprite()); ok {
			if img := sheet.TileSubImage(tile); img != nil {
				size := img.Bounds()
				opts := &ebiten.DrawImageOptions{}
				opts.GeoM.Translate(sx-float64(size.Dx())/2, sy-float64(size.Dy())/2)
				g.scene.DrawImage(img, opts)
				return
			}
		}
	}

	clr, ok := kindColors[e.Kind()]
	if e.Kind() == entity.KindPlayer {
		clr = playerColor
		ok = true
	}
	if !ok {
		clr = color.RGBA{255, 255, 255, 255}
	}
	vector.DrawFilledCircle(g.scene, float32(sx), float32(sy), 6, clr, true)
}

// OverlayFunc draws the loading indicator. alpha is the transition opacity
// in [0, 1]; showing is false once the world is ready and the shade is only
// fading out.
type OverlayFunc func(screen *ebiten.Image, alpha float64, showing bool)

// SetOverlayDraw replaces the default loading shade with a custom indicator.
// The overlay state machine (when and how fast it shows) is unaffected.
func (g *Game) SetOverlayDraw(fn OverlayFunc) {
	g.overlayDraw = fn
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	alpha := g.overlay.alpha()
	if alpha <= 0 {
		return
	}
	if g.overlayDraw != nil {
		g.overlayDraw(screen, alpha, g.overlay.showing())
		return
	}
	b := screen.Bounds()
	shade := color.RGBA{A: uint8(alpha * 230)}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shade, false)
	if g.overlay.showing() {
		ebitenutil.DebugPrintAt(screen, "Entering Mirehollow...", b.Dx()/2-66, b.Dy()/2)
	}
}
