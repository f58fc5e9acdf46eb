package container

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// HeaderSize is the size of the length prefix of each record.
const HeaderSize = 4

// FileMode is the permission of a committed container.
const FileMode os.FileMode = 0o644

var (
	// ErrClosed is returned when appending after Commit or Abort.
	ErrClosed = errors.New("container: writer closed")

	// ErrRecordTooLarge is returned for payloads that do not fit a uint32 length.
	ErrRecordTooLarge = errors.New("container: record too large")
)

// Writer appends length-prefixed records to a container file.
// AppendRecord is safe for concurrent use; each call writes one record
// without interleaving with other calls.
type Writer struct {
	path string
	tmp  string

	mu      sync.Mutex
	f       *os.File
	bw      *bufio.Writer
	closed  bool
	records int
	written int64
	hdr     [HeaderSize]byte
}

// Create opens a new container that will be published at path on Commit.
func Create(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return &Writer{
		path: path,
		tmp:  f.Name(),
		f:    f,
		bw:   bufio.NewWriterSize(f, 256*1024),
	}, nil
}

// AppendRecord writes one record: the payload length followed by the payload.
func (w *Writer) AppendRecord(payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, len(payload))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	binary.LittleEndian.PutUint32(w.hdr[:], uint32(len(payload)))
	if _, err := w.bw.Write(w.hdr[:]); err != nil {
		return fmt.Errorf("write record header: %w", err)
	}
	if _, err := w.bw.Write(payload); err != nil {
		return fmt.Errorf("write record payload: %w", err)
	}
	w.records++
	w.written += int64(HeaderSize + len(payload))
	return nil
}

// Records returns the number of records appended so far.
func (w *Writer) Records() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.records
}

// BytesWritten returns the container size including length prefixes.
func (w *Writer) BytesWritten() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Commit flushes the container and moves it onto its final path.
// On failure the temporary file is removed.
func (w *Writer) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.closed = true

	var result *multierror.Error
	if err := w.bw.Flush(); err != nil {
		result = multierror.Append(result, fmt.Errorf("flush: %w", err))
	}
	if err := w.f.Sync(); err != nil {
		result = multierror.Append(result, fmt.Errorf("sync: %w", err))
	}
	// CreateTemp opens with 0600.
	if err := w.f.Chmod(FileMode); err != nil {
		result = multierror.Append(result, fmt.Errorf("chmod: %w", err))
	}
	if err := w.f.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close: %w", err))
	}
	if result != nil {
		os.Remove(w.tmp)
		return result.ErrorOrNil()
	}

	if err := os.Rename(w.tmp, w.path); err != nil {
		os.Remove(w.tmp)
		return fmt.Errorf("publish container: %w", err)
	}
	return nil
}

// Abort discards the container. It is a no-op after Commit.
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	var result *multierror.Error
	if err := w.f.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := os.Remove(w.tmp); err != nil && !os.IsNotExist(err) {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
