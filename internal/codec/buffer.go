package codec

import "errors"

var errBufferFull = errors.New("output buffer full")

// boundedBuffer is an io.Writer that refuses to grow past a fixed capacity.
type boundedBuffer struct {
	buf []byte
	max int
}

func newBoundedBuffer(max int) *boundedBuffer {
	// Deflate output rarely reaches the bound; start small and grow.
	initial := max
	if initial > 64<<10 {
		initial = 64 << 10
	}
	return &boundedBuffer{buf: make([]byte, 0, initial), max: max}
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	room := b.max - len(b.buf)
	if len(p) > room {
		b.buf = append(b.buf, p[:room]...)
		return room, errBufferFull
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *boundedBuffer) Bytes() []byte { return b.buf }
