// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// pipeline needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [FrameSource]: Reads the raw bytes of one frame
//   - [Compressor]: Compresses one frame's bytes in a single shot
//   - [RecordSink]: Appends length-prefixed records to the container
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters, internal/codec,
// internal/container) implement them with concrete implementations.
package ports
