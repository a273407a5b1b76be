// Package geom provides the two coordinate spaces the game works in and the
// camera transform between them. Screen points come from pointer hardware;
// world points address positions on the map. The two are never interchanged
// without going through the transform.
package geom

import "errors"

// ErrInvalidCamera is returned when a CameraView carries a non-positive zoom.
// The camera owner is responsible for keeping zoom positive; the transform
// refuses to divide by a broken value rather than produce garbage.
var ErrInvalidCamera = errors.New("geom: camera zoom must be positive")

// ScreenPoint is a position in screen pixels, origin at the top-left of the
// window.
type ScreenPoint struct {
	X, Y float64
}

// WorldPoint is a position in world pixels, origin at the top-left of the map.
type WorldPoint struct {
	X, Y float64
}

// CameraView describes what the camera currently sees: the world position of
// the top-left corner of the viewport, the zoom factor, and the viewport size
// in screen pixels.
type CameraView struct {
	Origin    WorldPoint
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

// ToWorld maps a screen position into world space: origin + p/zoom.
// Axis-aligned, no rotation.
func ToWorld(p ScreenPoint, view CameraView) (WorldPoint, error) {
	if view.Zoom <= 0 {
		return WorldPoint{}, ErrInvalidCamera
	}
	return WorldPoint{
		X: view.Origin.X + p.X/view.Zoom,
		Y: view.Origin.Y + p.Y/view.Zoom,
	}, nil
}

// ToScreen is the inverse of ToWorld: (p - origin) * zoom.
func ToScreen(p WorldPoint, view CameraView) (ScreenPoint, error) {
	if view.Zoom <= 0 {
		return ScreenPoint{}, ErrInvalidCamera
	}
	return ScreenPoint{
		X: (p.X - view.Origin.X) * view.Zoom,
		Y: (p.Y - view.Origin.Y) * view.Zoom,
	}, nil
}

// Contains reports whether a world point falls inside the camera's current
// view rectangle. Used by the draw pass to cull off-screen entities.
func (v CameraView) Contains(p WorldPoint) bool {
	if v.Zoom <= 0 {
		return false
	}
	w := v.ViewportW / v.Zoom
	h := v.ViewportH / v.Zoom
	return p.X >= v.Origin.X && p.X < v.Origin.X+w &&
		p.Y >= v.Origin.Y && p.Y < v.Origin.Y+h
}
