// ABOUTME: Polling file watcher used to hot-reload the config and theme files
// ABOUTME: Runs until its context is cancelled; reports changes on a callback

package config

import (
	"context"
	"os"
	"slices"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling period used when none is given.
const DefaultWatchInterval = time.Second

// Watcher polls file modification times. A file appearing, changing or
// disappearing counts as a change.
type Watcher struct {
	interval time.Duration

	mu     sync.Mutex
	paths  []string
	mtimes map[string]time.Time
}

// NewWatcher returns a watcher over paths. A non-positive interval
// selects DefaultWatchInterval.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &Watcher{
		paths:    paths,
		interval: interval,
		mtimes:   make(map[string]time.Time),
	}
	w.snapshot(paths)
	return w
}

// Watch replaces the watched paths. Paths already watched keep their
// recorded state; new ones are snapshotted, so only later changes to
// them are reported.
func (w *Watcher) Watch(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var added []string
	for _, path := range paths {
		if !slices.Contains(w.paths, path) {
			added = append(added, path)
		}
	}
	for path := range w.mtimes {
		if !slices.Contains(paths, path) {
			delete(w.mtimes, path)
		}
	}
	w.paths = slices.Clone(paths)
	w.snapshot(added)
}

// Paths returns the watched paths.
func (w *Watcher) Paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.paths)
}

// Run polls until ctx is done, calling onChange after each detected
// change. It always returns ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.Check() {
				onChange()
			}
		}
	}
}

// Check reports whether anything changed since the last check and
// records the current state.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := false
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		switch {
		case err != nil:
			if existed {
				delete(w.mtimes, path)
				changed = true
			}
		case !existed || !info.ModTime().Equal(prev):
			w.mtimes[path] = info.ModTime()
			changed = true
		}
	}
	return changed
}

func (w *Watcher) snapshot(paths []string) {
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil {
			w.mtimes[path] = info.ModTime()
		}
	}
}
