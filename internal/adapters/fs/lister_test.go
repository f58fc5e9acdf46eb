package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/framezip/internal/domain"
)

func touch(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListFrames_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"frame2.ppm", "frame10.ppm", "frame1.ppm"} {
		touch(t, dir, n, []byte("P6"))
	}

	frames, err := ListFrames(dir, ".ppm")
	if err != nil {
		t.Fatalf("ListFrames: %v", err)
	}

	want := []string{"frame1.ppm", "frame10.ppm", "frame2.ppm"}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, f := range frames {
		if f.Name != want[i] {
			t.Errorf("frames[%d] = %s, want %s", i, f.Name, want[i])
		}
		if f.Path != filepath.Join(dir, want[i]) {
			t.Errorf("frames[%d].Path = %s", i, f.Path)
		}
	}
}

func TestListFrames_Filter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.ppm", nil)
	touch(t, dir, "b.PPM", nil)
	touch(t, dir, "c.ppm.bak", nil)
	touch(t, dir, ".ppm", nil)
	touch(t, dir, "notes.txt", nil)
	if err := os.Mkdir(filepath.Join(dir, "sub.ppm"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub.ppm"), "nested.ppm", nil)

	frames, err := ListFrames(dir, ".ppm")
	if err != nil {
		t.Fatalf("ListFrames: %v", err)
	}
	// A bare ".ppm" still ends in the marker and sorts before letters.
	if len(frames) != 2 || frames[0].Name != ".ppm" || frames[1].Name != "a.ppm" {
		t.Fatalf("frames = %+v, want [.ppm a.ppm]", frames)
	}
}

func TestListFrames_SkipsNonRegularEntries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.ppm", []byte("P6"))

	target := t.TempDir()
	touch(t, target, "real.ppm", []byte("P6"))
	if err := os.Symlink(target, filepath.Join(dir, "zz.ppm")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(target, "real.ppm"), filepath.Join(dir, "b.ppm")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(target, "gone.ppm"), filepath.Join(dir, "c.ppm")); err != nil {
		t.Fatal(err)
	}

	frames, err := ListFrames(dir, ".ppm")
	if err != nil {
		t.Fatalf("ListFrames: %v", err)
	}
	// zz.ppm points at a directory and c.ppm dangles; b.ppm resolves to a file.
	if len(frames) != 2 || frames[0].Name != "a.ppm" || frames[1].Name != "b.ppm" {
		t.Fatalf("frames = %+v, want [a.ppm b.ppm]", frames)
	}
}

func TestListFrames_Empty(t *testing.T) {
	frames, err := ListFrames(t.TempDir(), ".ppm")
	if err != nil {
		t.Fatalf("ListFrames: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("got %d frames, want 0", len(frames))
	}
}

func TestListFrames_MissingDir(t *testing.T) {
	_, err := ListFrames(filepath.Join(t.TempDir(), "nope"), ".ppm")
	if !errors.Is(err, domain.ErrDirectoryNotFound) {
		t.Fatalf("err = %v, want ErrDirectoryNotFound", err)
	}
}
