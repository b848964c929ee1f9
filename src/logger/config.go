// FILE: clilogger/src/logger/config.go
package logger

import (
	"io"
	"os"

	"clilogger/src/stream"
)

// Fields are key/value pairs added to every record.
type Fields map[string]any

// Serializer transforms the value of the field it is registered for before it is stored
// on a record.
type Serializer = func(any) any

// Config configures a Logger. For a child logger, zero values mean "inherit".
type Config struct {
	// Name is the logger name; empty selects the program name
	Name string

	// JSON serializes records for stream and file sinks as JSON lines
	JSON bool
	// Src records the call site of each log call
	Src bool
	// Stack adds the call stack to the call site; implies Src
	Stack bool

	// Console replaces every sink with a single console sink
	Console bool
	// Writers overrides the console writer of individual levels
	Writers stream.ConsoleWriters
	// Prefix is printed before every console line
	Prefix string
	// PrefixFunc builds each console line from the prefix and the message line
	PrefixFunc stream.PrefixFunc
	// Color puts the upper-cased level name in front of console lines
	Color bool

	Serializers map[string]Serializer
	Fields      Fields

	// Level is the default threshold: a level name or number
	Level any
	// Levels selects the level table; the zero value selects Ordinal
	Levels LevelSpec

	// Stream is a single destination; shorthand for Streams: StreamConfig{Stream: w}
	Stream io.Writer
	// Streams is a StreamConfig, *StreamConfig, []StreamConfig or []*StreamConfig
	Streams any

	// Template renders plain-text lines with text/template instead of the bare message
	Template string

	// Message post-formatting
	Normalize  bool
	Capitalize bool
	Pedantic   string
	Formatter  func(string) string
}

// StreamConfig describes one sink.
type StreamConfig struct {
	// Stream is an io.Writer or one of "stdout" and "stderr"
	Stream any
	// Path opens a file sink when Stream is nil
	Path  string
	Level any
	Name  string
	// JSON overrides the logger's JSON setting for this sink
	JSON *bool
	// Type is "stream", "file" or "raw"; inferred when empty
	Type string

	// File options, used with Path
	Flags    string
	Mode     os.FileMode
	Encoding string
}

// Sink is a snapshot of a registered sink.
type Sink struct {
	Name   string
	Type   string
	Level  Level
	JSON   bool
	Stream io.Writer
}

// Bool returns a pointer to b, for StreamConfig.JSON.
func Bool(b bool) *bool {
	return &b
}
