// Package log provides the logging abstraction used by framezip components.
//
// The pipeline logs through the Logger interface so that library callers can
// plug in their own logging. A zerolog adapter is the default, and a no-op
// logger is provided for tests and embedding.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("group done", log.Int("group", 3), log.Int64("bytes_out", n))
//
// Use [ParseLevel] to turn a --log-level flag value into a zerolog level.
package log
