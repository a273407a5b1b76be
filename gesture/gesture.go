// Package gesture classifies raw pointer events. A pointer that goes down
// and comes back up at the same position is a tap; anything else resolves
// silently. The classifier never touches world state. Routing a tap into a
// command is the Router's job.
package gesture

import (
	"greenfathom.com/mirehollow/geom"
)

// PointerID distinguishes simultaneous pointers (mouse, individual touches).
type PointerID int

// Tap is a resolved stationary touch.
type Tap struct {
	Pointer  PointerID
	Position geom.ScreenPoint
}

type phase int

const (
	phaseIdle phase = iota
	phaseDown
	phaseResolvedTap
	phaseResolvedDrag
	phaseResolvedCancel
)

type pointerState struct {
	origin geom.ScreenPoint
	phase  phase
}

// Classifier runs one tap state machine per active pointer. Tap detection
// compares the down and up positions for exact equality; movement in between
// does not matter, only the endpoints. Callers wanting tolerance against
// touch jitter can quantize positions before feeding them in.
type Classifier struct {
	pointers map[PointerID]*pointerState
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{pointers: make(map[PointerID]*pointerState)}
}

func (c *Classifier) state(id PointerID) *pointerState {
	s, ok := c.pointers[id]
	if !ok {
		s = &pointerState{}
		c.pointers[id] = s
	}
	return s
}

// PointerDown begins a fresh gesture for the pointer, recording its origin.
// Any previously resolved state for the pointer is discarded.
func (c *Classifier) PointerDown(id PointerID, pos geom.ScreenPoint) {
	s := c.state(id)
	s.origin = pos
	s.phase = phaseDown
}

// PointerMove is tracked but does not change the outcome; only the final
// position at PointerUp decides.
func (c *Classifier) PointerMove(id PointerID, pos geom.ScreenPoint) {
	// Deliberately a no-op while down.
}

// PointerUp ends the gesture. If the pointer is exactly where it went down,
// the tap is returned.
func (c *Classifier) PointerUp(id PointerID, pos geom.ScreenPoint) (Tap, bool) {
	s := c.state(id)
	if s.phase != phaseDown {
		return Tap{}, false
	}
	if pos == s.origin {
		s.phase = phaseResolvedTap
		return Tap{Pointer: id, Position: s.origin}, true
	}
	s.phase = phaseResolvedDrag
	return Tap{}, false
}

// PointerCancel abandons the gesture without emitting anything.
func (c *Classifier) PointerCancel(id PointerID) {
	s := c.state(id)
	if s.phase == phaseDown {
		s.phase = phaseResolvedCancel
	}
}
