package gesture

import (
	"testing"

	"greenfathom.com/mirehollow/geom"
)

func TestTapDownUpSamePosition(t *testing.T) {
	c := NewClassifier()
	p := geom.ScreenPoint{X: 10, Y: 10}

	c.PointerDown(0, p)
	tap, ok := c.PointerUp(0, p)
	if !ok {
		t.Fatal("Expected a tap for down/up at the same position")
	}
	if tap.Position != p {
		t.Errorf("Expected tap at %+v, got %+v", p, tap.Position)
	}
	if tap.Pointer != 0 {
		t.Errorf("Expected pointer 0, got %d", tap.Pointer)
	}
}

func TestTapIgnoresIntermediateMovement(t *testing.T) {
	c := NewClassifier()
	origin := geom.ScreenPoint{X: 10, Y: 10}

	c.PointerDown(0, origin)
	c.PointerMove(0, geom.ScreenPoint{X: 12, Y: 10})
	c.PointerMove(0, geom.ScreenPoint{X: 20, Y: 30})
	tap, ok := c.PointerUp(0, origin)
	if !ok {
		t.Fatal("Expected a tap: only the endpoints are compared")
	}
	if tap.Position != origin {
		t.Errorf("Expected tap at origin %+v, got %+v", origin, tap.Position)
	}
}

func TestDragEmitsNothing(t *testing.T) {
	c := NewClassifier()
	c.PointerDown(0, geom.ScreenPoint{X: 10, Y: 10})
	if _, ok := c.PointerUp(0, geom.ScreenPoint{X: 11, Y: 10}); ok {
		t.Error("Expected no tap when up position differs by one pixel")
	}
}

func TestCancelEmitsNothing(t *testing.T) {
	c := NewClassifier()
	p := geom.ScreenPoint{X: 5, Y: 5}

	c.PointerDown(0, p)
	c.PointerCancel(0)
	if _, ok := c.PointerUp(0, p); ok {
		t.Error("Expected no tap after a cancelled gesture")
	}
}

func TestUpWithoutDownEmitsNothing(t *testing.T) {
	c := NewClassifier()
	if _, ok := c.PointerUp(0, geom.ScreenPoint{X: 1, Y: 1}); ok {
		t.Error("Expected no tap without a preceding down")
	}
}

func TestFreshSequenceAfterResolution(t *testing.T) {
	c := NewClassifier()
	p := geom.ScreenPoint{X: 3, Y: 4}

	// Drag first.
	c.PointerDown(0, p)
	c.PointerUp(0, geom.ScreenPoint{X: 30, Y: 40})

	// A new down starts a clean gesture.
	c.PointerDown(0, p)
	if _, ok := c.PointerUp(0, p); !ok {
		t.Error("Expected a tap on the fresh sequence after a drag")
	}

	// And after a cancel, too.
	c.PointerDown(0, p)
	c.PointerCancel(0)
	c.PointerDown(0, p)
	if _, ok := c.PointerUp(0, p); !ok {
		t.Error("Expected a tap on the fresh sequence after a cancel")
	}
}

func TestPointersAreIndependent(t *testing.T) {
	c := NewClassifier()
	a := geom.ScreenPoint{X: 1, Y: 1}
	b := geom.ScreenPoint{X: 100, Y: 100}

	c.PointerDown(1, a)
	c.PointerDown(2, b)
	c.PointerCancel(2)

	tap, ok := c.PointerUp(1, a)
	if !ok {
		t.Fatal("Expected pointer 1's tap to survive pointer 2's cancel")
	}
	if tap.Pointer != 1 || tap.Position != a {
		t.Errorf("Expected tap from pointer 1 at %+v, got %+v", a, tap)
	}
	if _, ok := c.PointerUp(2, b); ok {
		t.Error("Expected no tap from the cancelled pointer")
	}
}

// --- Router ---

type fixedCamera struct {
	view geom.CameraView
}

func (f *fixedCamera) Camera() geom.CameraView { return f.view }

type recordingTarget struct {
	moves []geom.WorldPoint
}

func (r *recordingTarget) MoveTo(p geom.WorldPoint) { r.moves = append(r.moves, p) }

type fixedTargets struct {
	target Target
}

func (f *fixedTargets) ControlledTarget() Target { return f.target }

func TestRouterIssuesMoveCommand(t *testing.T) {
	camera := &fixedCamera{view: geom.CameraView{
		Origin: geom.WorldPoint{X: 100, Y: 200},
		Zoom:   2,
	}}
	target := &recordingTarget{}
	r := NewRouter(camera, &fixedTargets{target: target})

	p := geom.ScreenPoint{X: 10, Y: 10}
	r.PointerDown(0, p)
	if err := r.PointerUp(0, p); err != nil {
		t.Fatalf("PointerUp failed: %v", err)
	}

	if len(target.moves) != 1 {
		t.Fatalf("Expected 1 move command, got %d", len(target.moves))
	}
	want := geom.WorldPoint{X: 105, Y: 205}
	if target.moves[0] != want {
		t.Errorf("Expected move to %+v, got %+v", want, target.moves[0])
	}
}

func TestRouterDragIssuesNothing(t *testing.T) {
	target := &recordingTarget{}
	r := NewRouter(&fixedCamera{view: geom.CameraView{Zoom: 1}}, &fixedTargets{target: target})

	r.PointerDown(0, geom.ScreenPoint{X: 10, Y: 10})
	if err := r.PointerUp(0, geom.ScreenPoint{X: 50, Y: 50}); err != nil {
		t.Fatalf("PointerUp failed: %v", err)
	}
	if len(target.moves) != 0 {
		t.Errorf("Expected no move commands for a drag, got %d", len(target.moves))
	}
}

func TestRouterNoTargetDropsTap(t *testing.T) {
	r := NewRouter(&fixedCamera{view: geom.CameraView{Zoom: 1}}, &fixedTargets{target: nil})

	p := geom.ScreenPoint{X: 1, Y: 1}
	r.PointerDown(0, p)
	if err := r.PointerUp(0, p); err != nil {
		t.Errorf("Expected tap without target to be dropped silently, got %v", err)
	}
}

func TestRouterInvalidCameraSurfaces(t *testing.T) {
	target := &recordingTarget{}
	r := NewRouter(&fixedCamera{view: geom.CameraView{Zoom: 0}}, &fixedTargets{target: target})

	p := geom.ScreenPoint{X: 1, Y: 1}
	r.PointerDown(0, p)
	if err := r.PointerUp(0, p); err == nil {
		t.Error("Expected invalid camera error to surface")
	}
	if len(target.moves) != 0 {
		t.Errorf("Expected no move command with a broken camera, got %d", len(target.moves))
	}
}
