// FILE: clilogger/src/internal/source/source.go
package source

import (
	"time"
)

// Line is one line of input.
type Line struct {
	Time time.Time
	Text string
	// Level is the detected level name in lower case, empty when unknown or detection is off
	Level string
}

// Source produces input lines.
type Source interface {
	// Returns a channel that receives lines; it is closed when the input ends
	Subscribe() <-chan Line

	// Begins reading
	Start() error

	// Stops delivering lines
	Stop()

	// Returns source statistics
	GetStats() SourceStats
}

// SourceStats contains statistics about a source.
type SourceStats struct {
	Type         string
	TotalLines   uint64
	SkippedLines uint64
	StartTime    time.Time
	LastLineTime time.Time
	Details      map[string]any
}
