package ports

import (
	"context"

	"github.com/bft-labs/framezip/internal/domain"
)

// FrameSource provides the raw bytes of listed frames.
type FrameSource interface {
	// ReadFrame returns the full contents of the frame.
	// Errors wrap domain.ErrFrameRead.
	ReadFrame(ctx context.Context, frame domain.Frame) ([]byte, error)
}
