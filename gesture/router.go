package gesture

import (
	"greenfathom.com/mirehollow/geom"
)

// CameraSource yields the camera view taps are resolved against.
// *session.Session satisfies it.
type CameraSource interface {
	Camera() geom.CameraView
}

// Target receives move commands in world space. *entity.Player satisfies it.
type Target interface {
	MoveTo(geom.WorldPoint)
}

// TargetSource resolves the currently controlled actor. It may return nil
// while no world is ready; taps are then dropped.
type TargetSource interface {
	ControlledTarget() Target
}

// Router feeds pointer events through the classifier and turns resolved taps
// into world-space move commands for the controlled actor.
type Router struct {
	classifier *Classifier
	camera     CameraSource
	targets    TargetSource
}

// NewRouter wires a fresh classifier to a camera and a target source.
func NewRouter(camera CameraSource, targets TargetSource) *Router {
	return &Router{
		classifier: NewClassifier(),
		camera:     camera,
		targets:    targets,
	}
}

// PointerDown ingests a press.
func (r *Router) PointerDown(id PointerID, pos geom.ScreenPoint) {
	r.classifier.PointerDown(id, pos)
}

// PointerMove ingests a move.
func (r *Router) PointerMove(id PointerID, pos geom.ScreenPoint) {
	r.classifier.PointerMove(id, pos)
}

// PointerCancel ingests a cancellation.
func (r *Router) PointerCancel(id PointerID) {
	r.classifier.PointerCancel(id)
}

// PointerUp ingests a release. A resolved tap is transformed into world
// space and issued as a move command. A broken camera surfaces as an error
// rather than a silently wrong command.
func (r *Router) PointerUp(id PointerID, pos geom.ScreenPoint) error {
	tap, ok := r.classifier.PointerUp(id, pos)
	if !ok {
		return nil
	}
	target := r.targets.ControlledTarget()
	if target == nil {
		return nil
	}
	world, err := geom.ToWorld(tap.Position, r.camera.Camera())
	if err != nil {
		return err
	}
	target.MoveTo(world)
	return nil
}
