// FILE: clilogger/src/internal/core/const.go
package core

// Record schema version written as the "v" field
const RecordVersion = 0

// Ring buffer capacity when none is configured
const DefaultRingLimit = 16

// Timestamp layout for the "time" field, always rendered in UTC
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Sink type tags
const (
	TypeStream = "stream"
	TypeFile   = "file"
	TypeRaw    = "raw"
)
