package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"greenfathom.com/mirehollow/geom"
	"greenfathom.com/mirehollow/gesture"
)

// mousePointer keeps the mouse out of the touch ID space, which starts at 0.
const mousePointer gesture.PointerID = -1

// pollPointers translates ebiten's polled input into pointer events for the
// router. The mouse is one pointer; every active touch is its own.
func (g *Game) pollPointers() {
	mx, my := ebiten.CursorPosition()
	mpos := geom.ScreenPoint{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.router.PointerDown(mousePointer, mpos)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if err := g.router.PointerUp(mousePointer, mpos); err != nil {
			g.log.Error("tap routing failed", zap.Error(err))
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.router.PointerMove(mousePointer, mpos)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.router.PointerDown(gesture.PointerID(id), geom.ScreenPoint{X: float64(x), Y: float64(y)})
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.router.PointerMove(gesture.PointerID(id), geom.ScreenPoint{X: float64(x), Y: float64(y)})
	}

	// Released touches no longer report a live position; use last tick's.
	g.goneTouchIDs = inpututil.AppendJustReleasedTouchIDs(g.goneTouchIDs[:0])
	for _, id := range g.goneTouchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		pos := geom.ScreenPoint{X: float64(x), Y: float64(y)}
		if err := g.router.PointerUp(gesture.PointerID(id), pos); err != nil {
			g.log.Error("tap routing failed", zap.Error(err))
		}
	}
}
