// FILE: clilogger/src/stream/doc.go

// Package stream provides the destinations a logger can write to besides plain
// io.Writers: an in-memory ring buffer, a console stream with per-severity writers,
// a lazily opened file, a TCP broadcast server and a rate limiting wrapper.
//
// Streams that implement WriteRecord receive records instead of serialized bytes and
// are registered by the logger as raw sinks.
package stream
