// Package watch rebuilds the container when the frame directory changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/framezip/internal/ports"
)

// DefaultDebounce is how long the directory must stay quiet before a rebuild.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc is called after a burst of frame changes settles.
type RebuildFunc func(ctx context.Context)

// Watcher monitors a frame directory via fsnotify.
type Watcher struct {
	dir      string
	ext      string
	delay    time.Duration
	rebuild  RebuildFunc
	logger   ports.Logger
	ignore   map[string]bool
	mu       sync.Mutex
	debounce *time.Timer
	running  sync.Mutex
}

// New creates a Watcher for frames with extension ext in dir. Files named in
// ignore (base names, e.g. the container itself) never trigger a rebuild.
func New(dir, ext string, delay time.Duration, rebuild RebuildFunc, logger ports.Logger, ignore ...string) *Watcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	skip := make(map[string]bool, len(ignore))
	for _, n := range ignore {
		skip[filepath.Base(n)] = true
	}
	return &Watcher{
		dir:     dir,
		ext:     ext,
		delay:   delay,
		rebuild: rebuild,
		logger:  logger,
		ignore:  skip,
	}
}

// Run blocks until ctx is canceled or the watcher fails to start.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching for frame changes", ports.String("dir", w.dir), ports.Duration("debounce", w.delay))

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("frame change", ports.String("file", filepath.Base(event.Name)), ports.String("op", event.Op.String()))
			w.debounceRebuild(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if w.ignore[name] || !strings.HasSuffix(name, w.ext) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) debounceRebuild(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		if ctx.Err() != nil {
			return
		}
		// Rebuilds never overlap; a burst during a rebuild queues one more.
		w.running.Lock()
		defer w.running.Unlock()
		w.rebuild(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
