package codec

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"github.com/bft-labs/framezip/internal/domain"
)

const (
	// DefaultLevel matches zlib level 9.
	DefaultLevel = zlib.BestCompression

	// DefaultMaxOutput is the output buffer bound (1 MiB).
	DefaultMaxOutput = 1 << 20
)

// Compressor compresses frames with zlib at a fixed level.
type Compressor struct {
	level  int
	maxOut int
}

// New creates a Compressor. level must be a valid zlib level and maxOut positive.
func New(level, maxOut int) (*Compressor, error) {
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		return nil, fmt.Errorf("%w: compression level %d out of range", domain.ErrInvalidConfig, level)
	}
	if maxOut <= 0 {
		return nil, fmt.Errorf("%w: output bound %d", domain.ErrAllocation, maxOut)
	}
	return &Compressor{level: level, maxOut: maxOut}, nil
}

// Compress returns the zlib stream for src. src is not modified.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	out := newBoundedBuffer(c.maxOut)

	zw, err := zlib.NewWriterLevel(out, c.level)
	if err != nil {
		return nil, fmt.Errorf("init zlib stream: %w", err)
	}
	if _, err := zw.Write(src); err != nil {
		zw.Close()
		return nil, c.wrap(err)
	}
	if err := zw.Close(); err != nil {
		return nil, c.wrap(err)
	}
	return out.Bytes(), nil
}

func (c *Compressor) wrap(err error) error {
	if errors.Is(err, errBufferFull) {
		return fmt.Errorf("%w: output exceeds %d bytes", domain.ErrCompressionOverflow, c.maxOut)
	}
	return fmt.Errorf("compress: %w", err)
}
