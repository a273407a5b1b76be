// Package session owns the live mutable scene for one run of the game: the
// entity collection, the terrain grid, and the camera. The only mutation
// entry points are the reconciler's initialize/reconcile and the session's
// own Add/Remove; nothing else touches the collection.
package session

import (
	"sync"

	"go.uber.org/zap"

	"greenfathom.com/mirehollow/atlas"
	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/geom"
	"greenfathom.com/mirehollow/mapload"
	"greenfathom.com/mirehollow/terrain"
)

// Session is the live world. Entity order is insertion order and determines
// update/draw priority; duplicates by identity are disallowed.
type Session struct {
	mu       sync.Mutex
	log      *zap.Logger
	grid     *terrain.Grid
	sheet    *atlas.Atlas
	entities []entity.Entity
	camera   geom.CameraView
	loading  *Loading
	disposed bool
}

// New creates an empty session. The world is "loading" until the reconciler
// applies a first build.
func New(log *zap.Logger, camera geom.CameraView) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		log:     log,
		camera:  camera,
		loading: newLoading(),
	}
}

// Loading returns the session's loading broadcaster.
func (s *Session) Loading() *Loading { return s.loading }

// Camera returns the current camera view.
func (s *Session) Camera() geom.CameraView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

// SetCamera replaces the camera view. Called by camera-follow logic.
func (s *Session) SetCamera(view geom.CameraView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = view
}

// Terrain returns the current grid, or nil before the first build applies.
func (s *Session) Terrain() *terrain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Atlas returns the tile sheet of the current terrain, or nil before the
// first build applies.
func (s *Session) Atlas() *atlas.Atlas {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheet
}

// Add inserts an entity at the end of the collection. Adding an entity that
// is already present is a no-op.
func (s *Session) Add(e entity.Entity) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		s.log.Warn("add on disposed session", zap.String("entity", e.ID()))
		return
	}
	for _, have := range s.entities {
		if have == e {
			return
		}
	}
	s.entities = append(s.entities, e)
}

// Remove takes an entity out of the collection. Removing an entity that is
// not present is a no-op.
func (s *Session) Remove(e entity.Entity) {
	if e == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		s.log.Warn("remove on disposed session", zap.String("entity", e.ID()))
		return
	}
	for i, have := range s.entities {
		if have == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// Entities returns a snapshot of the collection in insertion order. The
// returned slice is the caller's to keep; mutating it does not affect the
// session.
func (s *Session) Entities() []entity.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Entity(nil), s.entities...)
}

// EntitiesOfKind returns a snapshot of the entities of one kind, in
// insertion order.
func (s *Session) EntitiesOfKind(kind entity.Kind) []entity.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Entity
	for _, e := range s.entities {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// Player returns the controlled player entity, or nil before the first build
// applies.
func (s *Session) Player() *entity.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entities {
		if p, ok := e.(*entity.Player); ok {
			return p
		}
	}
	return nil
}

// Dispose tears the session down: the entity collection is released and the
// loading broadcaster is closed. Disposing twice is reported as an error and
// otherwise a no-op.
func (s *Session) Dispose() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		s.log.Warn("session disposed twice")
		return ErrSessionDisposed
	}
	s.disposed = true
	s.entities = nil
	s.mu.Unlock()

	s.loading.close()
	return nil
}

// Disposed reports whether the session has been torn down.
func (s *Session) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// applyInitial installs the first built world: terrain, atlas, and every
// spawned entity in order.
func (s *Session) applyInitial(desc *mapload.Description, spawned []entity.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrSessionDisposed
	}
	s.grid = desc.Terrain
	s.sheet = desc.Atlas
	s.entities = append(s.entities, spawned...)
	return nil
}

// applyRebuild swaps in a freshly built world during authoring: the terrain
// is replaced wholesale, transient entities (decorations, enemies) are
// dropped, and the new ones are appended. Persistent entities keep their
// identity and relative order.
func (s *Session) applyRebuild(desc *mapload.Description, spawned []entity.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrSessionDisposed
	}
	s.grid = desc.Terrain
	s.sheet = desc.Atlas

	// Walk a snapshot so removals cannot trip over the live slice.
	snapshot := append([]entity.Entity(nil), s.entities...)
	kept := make([]entity.Entity, 0, len(snapshot))
	for _, e := range snapshot {
		if e.Kind().Transient() {
			continue
		}
		if !s.grid.InBounds(e.Position()) {
			// Stranded by the new terrain. Reportable, not fatal.
			s.log.Warn("entity outside rebuilt terrain",
				zap.String("entity", e.ID()),
				zap.Float64("x", e.Position().X),
				zap.Float64("y", e.Position().Y))
		}
		kept = append(kept, e)
	}
	s.entities = append(kept, spawned...)
	return nil
}
