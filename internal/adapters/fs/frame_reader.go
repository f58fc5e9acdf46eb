package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/framezip/internal/domain"
)

// DefaultMaxFrameBytes is the input buffer bound (1 MiB).
const DefaultMaxFrameBytes = 1 << 20

// FrameReader implements ports.FrameSource by reading frames from disk.
type FrameReader struct {
	maxBytes int
}

// NewFrameReader creates a FrameReader that rejects frames over maxBytes.
func NewFrameReader(maxBytes int) *FrameReader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFrameBytes
	}
	return &FrameReader{maxBytes: maxBytes}
}

// ReadFrame reads the whole frame into memory.
func (r *FrameReader) ReadFrame(ctx context.Context, frame domain.Frame) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(frame.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFrameRead, err)
	}
	defer f.Close()

	// Read one byte past the bound so oversized frames are detected, not truncated.
	buf, err := io.ReadAll(io.LimitReader(f, int64(r.maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFrameRead, frame.Name, err)
	}
	if len(buf) > r.maxBytes {
		return nil, fmt.Errorf("%w: %s: %w (limit %d bytes)", domain.ErrFrameRead, frame.Name, domain.ErrFrameTooLarge, r.maxBytes)
	}
	return buf, nil
}
