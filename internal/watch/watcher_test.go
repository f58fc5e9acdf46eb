package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bft-labs/framezip/pkg/log"
)

func startWatcher(t *testing.T, dir string, calls *atomic.Int32, ignore ...string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	w := New(dir, ".ppm", 50*time.Millisecond, func(context.Context) { calls.Add(1) }, log.NewNoopLogger(), ignore...)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give fsnotify time to register the watch.
	time.Sleep(100 * time.Millisecond)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcher_RebuildsOnFrameWrite(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	startWatcher(t, dir, &calls)

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "frame"+string(rune('0'+i))+".ppm")
		if err := os.WriteFile(name, []byte("P6"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	waitFor(t, func() bool { return calls.Load() >= 1 })

	// The burst collapses into a single rebuild.
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("rebuilds = %d, want 1", got)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	startWatcher(t, dir, &calls, "video.ppm")

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "video.ppm"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("rebuilds = %d, want 0", got)
	}
}

func TestWatcher_MissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), ".ppm", 0, func(context.Context) {}, log.NewNoopLogger())
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
