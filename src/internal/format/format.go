// FILE: clilogger/src/internal/format/format.go
package format

import (
	"fmt"

	"clilogger/src/internal/core"
)

// Formatter defines the interface for transforming a Record into a byte slice.
type Formatter interface {
	// Format takes a Record and returns the serialized line, newline included.
	Format(rec *core.Record) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a new Formatter based on the provided configuration.
func New(name string, options map[string]any) (Formatter, error) {
	// Default to raw if no format specified
	if name == "" {
		name = "raw"
	}

	switch name {
	case "json":
		return NewJSONFormatter(options)
	case "text":
		return NewTextFormatter(options)
	case "raw":
		return NewRawFormatter(options)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
