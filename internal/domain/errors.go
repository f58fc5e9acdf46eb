package domain

import "errors"

// Domain errors represent error conditions in the framezip domain.
// Errors returned by the pipeline wrap one of these and can be checked with errors.Is.
var (
	// ErrDirectoryNotFound is returned when the input directory cannot be opened.
	ErrDirectoryNotFound = errors.New("framezip: directory not found")

	// ErrFrameRead is returned when a listed frame cannot be opened or fully read.
	ErrFrameRead = errors.New("framezip: frame read error")

	// ErrFrameTooLarge is returned when a frame exceeds the input buffer bound.
	ErrFrameTooLarge = errors.New("framezip: frame exceeds buffer size")

	// ErrCompressionOverflow is returned when compressed output does not fit
	// in the output buffer bound.
	ErrCompressionOverflow = errors.New("framezip: compression overflow")

	// ErrAllocation is returned when a buffer bound cannot be represented.
	ErrAllocation = errors.New("framezip: allocation failure")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("framezip: invalid configuration")
)
