// Package entity defines the live objects that inhabit a world session:
// their kinds, the specs the map loader produces for them, and the concrete
// variants the session updates every frame.
package entity

import (
	"math"
	"sync"

	"greenfathom.com/mirehollow/geom"
)

// Kind identifies the category of an entity. Decoration and Enemy entities
// are transient scene content replaced on live map rebuilds; Player and
// Other entities persist across rebuilds.
type Kind string

const (
	KindDecoration Kind = "decoration"
	KindEnemy      Kind = "enemy"
	KindPlayer     Kind = "player"
	KindOther      Kind = "other"
)

// Transient reports whether entities of this kind are replaced when the map
// is rebuilt during authoring.
func (k Kind) Transient() bool {
	return k == KindDecoration || k == KindEnemy
}

// Spec describes one entity to be instantiated into a session. Specs are
// produced by the map loader and consumed exactly once when the world is
// applied; they are plain values and never mutated.
type Spec struct {
	Kind    Kind
	Def     string // definition ID in the entity library
	Pos     geom.WorldPoint
	Payload map[string]any // opaque construction data from the map file
}

// Entity is a live, mutable scene object owned by a world session. Entities
// are removed only explicitly by the session; nothing else destroys them.
type Entity interface {
	ID() string
	Kind() Kind
	Position() geom.WorldPoint
	Sprite() string
	Update(dt float64)
}

// base carries the state every variant shares. Position is read off the
// frame goroutine during live map rebuilds, so all position access goes
// through the mutex.
type base struct {
	id     string
	kind   Kind
	sprite string

	mu  sync.Mutex
	pos geom.WorldPoint
}

func (b *base) ID() string     { return b.id }
func (b *base) Kind() Kind     { return b.kind }
func (b *base) Sprite() string { return b.sprite }

func (b *base) Position() geom.WorldPoint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos
}

// init fills the shared fields on a freshly allocated variant, before the
// entity is visible to anything else.
func (b *base) init(id string, def *Definition, pos geom.WorldPoint) {
	b.id = id
	b.kind = def.Kind
	b.sprite = def.Sprite
	b.pos = pos
}

// Decoration is static scenery. It never moves or acts.
type Decoration struct {
	base
}

func (d *Decoration) Update(dt float64) {}

// Enemy is a hostile creature. Until real AI lands it paces a short
// horizontal patrol around its spawn point.
type Enemy struct {
	base
	Speed float64 // world pixels per second
	HP    int

	spawn   geom.WorldPoint
	heading float64 // +1 right, -1 left
}

// patrolRadius is how far an idle enemy strays from its spawn point.
const patrolRadius = 24.0

func (e *Enemy) Update(dt float64) {
	if e.Speed <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.heading == 0 {
		e.heading = 1
	}
	e.pos.X += e.heading * e.Speed * dt
	if e.pos.X > e.spawn.X+patrolRadius {
		e.pos.X = e.spawn.X + patrolRadius
		e.heading = -1
	}
	if e.pos.X < e.spawn.X-patrolRadius {
		e.pos.X = e.spawn.X - patrolRadius
		e.heading = 1
	}
}

// Player is the user-controlled actor. Tap commands arrive as MoveTo calls;
// each update it walks toward its navigation target and stops on arrival.
type Player struct {
	base
	Speed float64 // world pixels per second

	target    geom.WorldPoint
	hasTarget bool
}

// MoveTo sets the navigation target. A later call replaces any earlier one.
func (p *Player) MoveTo(dst geom.WorldPoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.target = dst
	p.hasTarget = true
}

// Target returns the current navigation target, if any.
func (p *Player) Target() (geom.WorldPoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target, p.hasTarget
}

func (p *Player) Update(dt float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasTarget {
		return
	}
	dx := p.target.X - p.pos.X
	dy := p.target.Y - p.pos.Y
	length := math.Hypot(dx, dy)
	step := p.Speed * dt
	if length <= step {
		p.pos = p.target
		p.hasTarget = false
		return
	}
	p.pos.X += dx / length * step
	p.pos.Y += dy / length * step
}

// Prop is a persistent non-player object (kind Other). It survives live map
// rebuilds like the player does.
type Prop struct {
	base
}

func (p *Prop) Update(dt float64) {}
