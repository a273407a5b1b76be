package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"greenfathom.com/mirehollow/entity"
	"greenfathom.com/mirehollow/mapload"
)

// Builder produces world descriptions. *mapload.Builder satisfies it.
type Builder interface {
	Build(ctx context.Context, mapPath string) (*mapload.Description, error)
}

// Spawner turns entity specs into live entities. *entity.Library satisfies it.
type Spawner interface {
	Spawn(spec entity.Spec) (entity.Entity, error)
}

// Reconciler orchestrates world builds and applies their results to one
// session. At most one build runs at a time; overlapping requests are
// rejected rather than queued. A build failure leaves the session exactly
// as it was.
type Reconciler struct {
	log     *zap.Logger
	builder Builder
	spawner Spawner
	session *Session

	building  atomic.Bool
	readyOnce sync.Once
	onReady   func(*Session)
	onReload  func(*Session)
}

// NewReconciler wires a builder and spawner to a session.
func NewReconciler(log *zap.Logger, builder Builder, spawner Spawner, s *Session) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		log:     log,
		builder: builder,
		spawner: spawner,
		session: s,
	}
}

// OnReady registers a callback fired after the first successful initialize.
// It fires at most once per session. Register before starting builds.
func (r *Reconciler) OnReady(fn func(*Session)) { r.onReady = fn }

// OnReload registers a callback fired after every successful reconcile.
// Register before starting builds.
func (r *Reconciler) OnReload(fn func(*Session)) { r.onReload = fn }

// Initialize builds the world for the first time and installs it. The
// loading flag stays true until the build is fully applied; on failure it
// remains true so the loading indicator stays up.
func (r *Reconciler) Initialize(ctx context.Context, mapPath string) error {
	if !r.building.CompareAndSwap(false, true) {
		return ErrBuildInProgress
	}
	defer r.building.Store(false)

	if r.session.Disposed() {
		return ErrSessionDisposed
	}
	if err := r.session.loading.set(true); err != nil {
		return err
	}

	desc, err := r.builder.Build(ctx, mapPath)
	if err != nil {
		r.log.Error("world build failed", zap.String("map", mapPath), zap.Error(err))
		return err
	}
	spawned, err := r.spawnAll(desc.Entities, false)
	if err != nil {
		r.log.Error("world spawn failed", zap.String("map", mapPath), zap.Error(err))
		return err
	}

	if err := r.session.applyInitial(desc, spawned); err != nil {
		r.log.Warn("discarding world build for disposed session", zap.String("map", mapPath))
		return err
	}
	if err := r.session.loading.set(false); err != nil {
		// Disposed between apply and flip; nothing left to notify.
		r.log.Warn("loading flag not cleared", zap.Error(err))
		return err
	}

	r.log.Info("world ready",
		zap.String("map", mapPath),
		zap.String("name", desc.Name),
		zap.Int("entities", len(spawned)))
	r.readyOnce.Do(func() {
		if r.onReady != nil {
			r.onReady(r.session)
		}
	})
	return nil
}

// Reconcile rebuilds the world from an edited map and swaps the result into
// the session, preserving player and other persistent entities. This is the
// background authoring path: the loading flag is not touched, and failures
// only log, leaving the user on the last good world.
func (r *Reconciler) Reconcile(ctx context.Context, mapPath string) error {
	if !r.building.CompareAndSwap(false, true) {
		return ErrBuildInProgress
	}
	defer r.building.Store(false)

	if r.session.Disposed() {
		return ErrSessionDisposed
	}

	desc, err := r.builder.Build(ctx, mapPath)
	if err != nil {
		r.log.Warn("map rebuild failed, keeping current world",
			zap.String("map", mapPath), zap.Error(err))
		return err
	}
	spawned, err := r.spawnAll(desc.Entities, true)
	if err != nil {
		r.log.Warn("map rebuild spawn failed, keeping current world",
			zap.String("map", mapPath), zap.Error(err))
		return err
	}

	if err := r.session.applyRebuild(desc, spawned); err != nil {
		r.log.Warn("discarding map rebuild for disposed session", zap.String("map", mapPath))
		return err
	}

	r.log.Info("world reloaded",
		zap.String("map", mapPath),
		zap.Int("entities", len(spawned)))
	if r.onReload != nil {
		r.onReload(r.session)
	}
	return nil
}

// spawnAll instantiates specs in order, before any session mutation, so a
// bad spec cannot leave a half-applied world. With transientOnly set,
// player/other specs are skipped; rebuilds never replace persistent
// entities.
func (r *Reconciler) spawnAll(specs []entity.Spec, transientOnly bool) ([]entity.Entity, error) {
	out := make([]entity.Entity, 0, len(specs))
	for _, spec := range specs {
		if transientOnly && !spec.Kind.Transient() {
			continue
		}
		e, err := r.spawner.Spawn(spec)
		if err != nil {
			return nil, fmt.Errorf("spawn %s %q: %w", spec.Kind, spec.Def, err)
		}
		out = append(out, e)
	}
	return out, nil
}
