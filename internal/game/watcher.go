package game

import (
	"context"
	"os"
	"time"
)

// mapWatcher polls the map file's modification time and fires onChange when
// it moves. Polling keeps authoring reloads working on editors that replace
// the file rather than writing it in place.
type mapWatcher struct {
	path     string
	interval time.Duration
	onChange func(context.Context)
	lastMod  time.Time
}

func newMapWatcher(path string, interval time.Duration, onChange func(context.Context)) *mapWatcher {
	w := &mapWatcher{path: path, interval: interval, onChange: onChange}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
	}
	return w
}

// changed stats the file and reports whether it moved since the last check.
// A file that is briefly missing mid-save does not count as a change.
func (w *mapWatcher) changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if info.ModTime().Equal(w.lastMod) {
		return false
	}
	w.lastMod = info.ModTime()
	return true
}

func (w *mapWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.changed() {
				w.onChange(ctx)
			}
		}
	}
}
