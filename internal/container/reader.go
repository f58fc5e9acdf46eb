package container

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when the container ends inside a record.
var ErrTruncated = errors.New("container: truncated record")

// Reader iterates over the records of a container.
type Reader struct {
	r   *bufio.Reader
	hdr [HeaderSize]byte
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record payload, or io.EOF after the last record.
func (r *Reader) Next() ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	n := int64(binary.LittleEndian.Uint32(r.hdr[:]))
	// The buffer grows with the bytes actually present, so a corrupt length
	// cannot force a large allocation.
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r.r, n); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: want %d payload bytes, got %d: %v", ErrTruncated, n, payload.Len(), err)
	}
	return payload.Bytes(), nil
}

// ReadAll returns every record payload in order.
func ReadAll(r io.Reader) ([][]byte, error) {
	cr := NewReader(r)
	var records [][]byte
	for {
		rec, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
