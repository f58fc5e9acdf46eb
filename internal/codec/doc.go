// Package codec compresses single frames with zlib.
//
// Every call to [Compressor.Compress] builds and tears down its own zlib
// stream, writes the whole input once and finishes the stream, so a
// Compressor holds no per-frame state and is safe for concurrent use.
// Output is bounded: a frame whose compressed form does not fit in the
// configured buffer fails with domain.ErrCompressionOverflow.
package codec
