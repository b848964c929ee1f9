// FILE: clilogger/src/internal/format/raw.go
package format

import (
	"clilogger/src/internal/core"
)

// Outputs the rendered message as-is with a newline
type RawFormatter struct{}

// Creates a new raw formatter
func NewRawFormatter(options map[string]any) (*RawFormatter, error) {
	return &RawFormatter{}, nil
}

// Returns the message with a newline appended
func (f *RawFormatter) Format(rec *core.Record) ([]byte, error) {
	return append([]byte(rec.Message()), '\n'), nil
}

// Returns the formatter name
func (f *RawFormatter) Name() string {
	return "raw"
}
