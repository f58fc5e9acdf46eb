// Package container reads and writes the framezip container format.
//
// A container is a flat sequence of records with no header or footer:
//
//	[uint32 little-endian length][length bytes of payload] ...
//
// The Writer owns the output file for the whole run. It writes to a
// temporary sibling file and only renames it onto the final path on Commit,
// so a failed run never leaves a container behind.
package container
