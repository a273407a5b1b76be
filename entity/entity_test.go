package entity

import (
	"testing"

	"greenfathom.com/mirehollow/geom"
)

func TestKindTransient(t *testing.T) {
	transient := map[Kind]bool{
		KindDecoration: true,
		KindEnemy:      true,
		KindPlayer:     false,
		KindOther:      false,
	}
	for kind, want := range transient {
		if got := kind.Transient(); got != want {
			t.Errorf("Kind %s: expected Transient()=%v, got %v", kind, want, got)
		}
	}
}

func TestPlayerMoveTo(t *testing.T) {
	p := &Player{
		base:  base{id: "player#1", kind: KindPlayer, pos: geom.WorldPoint{X: 0, Y: 0}},
		Speed: 100,
	}

	// No target: update is a no-op.
	p.Update(1.0)
	if p.Position() != (geom.WorldPoint{}) {
		t.Errorf("Expected idle player to stay put, got %+v", p.Position())
	}

	p.MoveTo(geom.WorldPoint{X: 300, Y: 0})
	p.Update(1.0)
	if p.Position().X != 100 || p.Position().Y != 0 {
		t.Errorf("Expected player at (100,0) after 1s, got %+v", p.Position())
	}
	if _, has := p.Target(); !has {
		t.Error("Expected target still set mid-walk")
	}

	// Long enough to arrive and stop exactly on the target.
	p.Update(10.0)
	if p.Position() != (geom.WorldPoint{X: 300, Y: 0}) {
		t.Errorf("Expected player at target, got %+v", p.Position())
	}
	if _, has := p.Target(); has {
		t.Error("Expected target cleared on arrival")
	}

	// Arrival leaves it stationary.
	p.Update(1.0)
	if p.Position() != (geom.WorldPoint{X: 300, Y: 0}) {
		t.Errorf("Expected arrived player to stay put, got %+v", p.Position())
	}
}

func TestPlayerMoveToReplacesTarget(t *testing.T) {
	p := &Player{base: base{kind: KindPlayer}, Speed: 50}
	p.MoveTo(geom.WorldPoint{X: 100, Y: 100})
	p.MoveTo(geom.WorldPoint{X: -10, Y: 0})

	got, has := p.Target()
	if !has {
		t.Fatal("Expected a target")
	}
	if got != (geom.WorldPoint{X: -10, Y: 0}) {
		t.Errorf("Expected latest target to win, got %+v", got)
	}
}

func TestEnemyPatrolStaysNearSpawn(t *testing.T) {
	spawn := geom.WorldPoint{X: 100, Y: 100}
	e := &Enemy{
		base:  base{id: "bog_lurker#1", kind: KindEnemy, pos: spawn},
		Speed: 60,
		spawn: spawn,
	}

	for i := 0; i < 600; i++ {
		e.Update(1.0 / 60.0)
		dx := e.Position().X - spawn.X
		if dx > patrolRadius || dx < -patrolRadius {
			t.Fatalf("Enemy strayed %v px from spawn on step %d", dx, i)
		}
		if e.Position().Y != spawn.Y {
			t.Fatalf("Enemy left its patrol row: %+v", e.Position())
		}
	}
}

func TestStaticVariantsDoNotMove(t *testing.T) {
	d := &Decoration{base: base{kind: KindDecoration, pos: geom.WorldPoint{X: 5, Y: 6}}}
	d.Update(1.0)
	if d.Position() != (geom.WorldPoint{X: 5, Y: 6}) {
		t.Errorf("Decoration moved to %+v", d.Position())
	}

	pr := &Prop{base: base{kind: KindOther, pos: geom.WorldPoint{X: 7, Y: 8}}}
	pr.Update(1.0)
	if pr.Position() != (geom.WorldPoint{X: 7, Y: 8}) {
		t.Errorf("Prop moved to %+v", pr.Position())
	}
}
