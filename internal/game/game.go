// Package game is the ebiten-facing shell of Mirehollow. It pumps pointer
// events into the gesture router, advances entities, follows the player with
// the camera, and draws whatever world the session currently holds. All world
// semantics live below it; this package only presents them.
package game

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"greenfathom.com/mirehollow/config"
	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/geom"
	"greenfathom.com/mirehollow/gesture"
	"greenfathom.com/mirehollow/session"
	"greenfathom.com/mirehollow/terrain"
)

// tick is the fixed simulation step. Ebiten calls Update at 60 TPS.
const tick = 1.0 / 60.0

// Game implements ebiten.Game on top of a world session.
type Game struct {
	log         *zap.Logger
	cfg         *config.Config
	session     *session.Session
	reconciler  *session.Reconciler
	router      *gesture.Router
	overlay     *loadingOverlay
	overlayDraw OverlayFunc
	watcher     *mapWatcher

	scene *ebiten.Image

	// pointer scratch state, reused every frame
	touchIDs     []ebiten.TouchID
	goneTouchIDs []ebiten.TouchID
}

// New builds the shell around an already-constructed session and reconciler.
// The caller starts the initial build; the shell just renders whatever state
// the session is in, loading screen included.
func New(log *zap.Logger, cfg *config.Config, sess *session.Session, rec *session.Reconciler) *Game {
	g := &Game{
		log:        log,
		cfg:        cfg,
		session:    sess,
		reconciler: rec,
		overlay:    newLoadingOverlay(sess.Loading().Subscribe(), cfg.Loading.TransitionDuration.Duration),
	}
	g.router = gesture.NewRouter(sess, g)
	if cfg.Authoring.Enabled {
		g.watcher = newMapWatcher(cfg.World.MapPath, cfg.Authoring.PollInterval.Duration, g.reloadMap)
	}
	return g
}

// Start launches background work: the initial world build and, when
// authoring is enabled, the map file watcher. Non-blocking.
func (g *Game) Start(ctx context.Context) {
	go func() {
		if err := g.reconciler.Initialize(ctx, g.cfg.World.MapPath); err != nil {
			g.log.Error("initial world build failed", zap.Error(err))
		}
	}()
	if g.watcher != nil {
		go g.watcher.run(ctx)
	}
}

func (g *Game) reloadMap(ctx context.Context) {
	if err := g.reconciler.Reconcile(ctx, g.cfg.World.MapPath); err != nil {
		g.log.Warn("map reload failed", zap.Error(err))
	}
}

// ControlledTarget resolves the actor taps steer. Nil until the first build
// has delivered a player, which makes the router drop early taps.
func (g *Game) ControlledTarget() gesture.Target {
	if p := g.session.Player(); p != nil {
		return navTarget{player: p, session: g.session}
	}
	return nil
}

// navTarget filters move commands through the terrain before they reach the
// player, so taps on walls or water are ignored.
type navTarget struct {
	player  *entity.Player
	session *session.Session
}

func (n navTarget) MoveTo(p geom.WorldPoint) {
	if grid := n.session.Terrain(); grid == nil || !grid.Walkable(p) {
		return
	}
	n.player.MoveTo(p)
}

// Update advances one fixed tick.
func (g *Game) Update() error {
	g.pollPointers()

	for _, e := range g.session.Entities() {
		e.Update(tick)
	}

	g.followPlayer()
	g.overlay.step(tick)
	return nil
}

// Layout reports the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) followPlayer() {
	player := g.session.Player()
	grid := g.session.Terrain()
	if player == nil || grid == nil {
		return
	}
	view := g.session.Camera()
	g.session.SetCamera(followCamera(view, player.Position(), grid))
}

// followCamera centers the view on the target and clamps it to the map, so
// the camera never shows past the edge of the world. Maps smaller than the
// viewport pin to the top-left corner.
func followCamera(view geom.CameraView, target geom.WorldPoint, grid *terrain.Grid) geom.CameraView {
	if view.Zoom <= 0 {
		return view
	}
	visibleW := view.ViewportW / view.Zoom
	visibleH := view.ViewportH / view.Zoom

	view.Origin.X = target.X - visibleW/2
	view.Origin.Y = target.Y - visibleH/2

	maxX := grid.PixelWidth() - visibleW
	maxY := grid.PixelHeight() - visibleH
	if view.Origin.X > maxX {
		view.Origin.X = maxX
	}
	if view.Origin.Y > maxY {
		view.Origin.Y = maxY
	}
	if view.Origin.X < 0 {
		view.Origin.X = 0
	}
	if view.Origin.Y < 0 {
		view.Origin.Y = 0
	}
	return view
}
