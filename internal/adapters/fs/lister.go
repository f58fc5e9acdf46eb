package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bft-labs/framezip/internal/domain"
)

// DefaultExt marks binary PPM frames.
const DefaultExt = ".ppm"

// ListFrames returns the regular files in dir whose names end in ext, sorted
// byte-wise by name. Subdirectories are not descended into. Symlinks count
// when they resolve to a regular file; directories, devices, FIFOs and
// sockets are skipped.
func ListFrames(dir, ext string) ([]domain.Frame, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDirectoryNotFound, dir, err)
	}

	frames := make([]domain.Frame, 0, len(ents))
	for _, e := range ents {
		name := e.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isRegular(e, path) {
			continue
		}
		frames = append(frames, domain.Frame{Name: name, Path: path})
	}

	// os.ReadDir already sorts by name; keep the ordering explicit.
	sort.Slice(frames, func(i, j int) bool { return frames[i].Name < frames[j].Name })
	return frames, nil
}

func isRegular(e os.DirEntry, path string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
