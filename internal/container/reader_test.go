package container

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Empty(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0x05, 0x00}},
		{"short payload", []byte{0x05, 0x00, 0x00, 0x00, 'a', 'b'}},
		{"corrupt length", []byte{0xff, 0xff, 0xff, 0xff, 'a', 'b', 'c'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestReader_Sequence(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x00, 0x00, 'h', 'i',
		0x00, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 'y', 'o', 'u',
	}
	r := NewReader(bytes.NewReader(data))

	for _, want := range []string{"hi", "", "you"} {
		rec, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, string(rec))
	}
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_CorruptLengthAllocatesOnlyWhatIsRead(t *testing.T) {
	data := append([]byte{0xff, 0xff, 0xff, 0x7f}, bytes.Repeat([]byte{'x'}, 10)...)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := NewReader(bytes.NewReader(data)).Next()
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "got 10")
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "allocation follows the claimed length")
}
