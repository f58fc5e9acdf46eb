// Package domain contains the core domain entities and value objects for framezip.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (file system, compression, logging)
// and contains only the types the pipeline passes between its stages.
//
// # Entities
//
//   - [Frame]: A single raster frame file listed from the input directory
//   - [WorkGroup]: A contiguous batch of frames compressed together
//   - [FrameResult]: Byte counts produced by compressing one frame
//   - [Stats]: Aggregate byte counts for a whole run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
