package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bft-labs/framezip/internal/domain"
)

// DefaultGroupSize is the number of frames compressed concurrently per group.
const DefaultGroupSize = 10

// ErrUnevenFrames is returned by Partition under RemainderError when the
// frame count is not a multiple of the group size.
var ErrUnevenFrames = errors.New("frame count is not a multiple of the group size")

// RemainderPolicy decides what happens to a final group shorter than the
// group size.
type RemainderPolicy int

const (
	// RemainderKeep emits the leftover frames as a final, shorter group.
	RemainderKeep RemainderPolicy = iota
	// RemainderDrop skips the leftover frames.
	RemainderDrop
	// RemainderError refuses to partition an uneven frame list.
	RemainderError
)

// String returns the configuration name of the policy.
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderKeep:
		return "keep"
	case RemainderDrop:
		return "drop"
	case RemainderError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseRemainderPolicy parses "keep", "drop" or "error". Empty means keep.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return RemainderKeep, nil
	case "drop":
		return RemainderDrop, nil
	case "error":
		return RemainderError, nil
	default:
		return RemainderKeep, fmt.Errorf("%w: unknown remainder policy %q", domain.ErrInvalidConfig, s)
	}
}

// Partition splits frames into contiguous groups of size frames, in order.
// The trailing partial group is handled according to policy.
func Partition(frames []domain.Frame, size int, policy RemainderPolicy) ([]domain.WorkGroup, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: group size %d", domain.ErrInvalidConfig, size)
	}

	rem := len(frames) % size
	if rem != 0 {
		switch policy {
		case RemainderKeep:
		case RemainderDrop:
			frames = frames[:len(frames)-rem]
		case RemainderError:
			return nil, fmt.Errorf("%w: %d frames, group size %d", ErrUnevenFrames, len(frames), size)
		default:
			return nil, fmt.Errorf("%w: remainder policy %d", domain.ErrInvalidConfig, policy)
		}
	}

	groups := make([]domain.WorkGroup, 0, (len(frames)+size-1)/size)
	for start := 0; start < len(frames); start += size {
		end := start + size
		if end > len(frames) {
			end = len(frames)
		}
		groups = append(groups, domain.WorkGroup{
			Index:  len(groups),
			Frames: frames[start:end:end],
		})
	}
	return groups, nil
}
