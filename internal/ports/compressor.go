package ports

// Compressor compresses one buffer in a single pass.
// Implementations must be safe for concurrent use and must not mutate src.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
}
