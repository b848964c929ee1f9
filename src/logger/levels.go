// FILE: clilogger/src/logger/levels.go
package logger

import "clilogger/src/internal/core"

type (
	Level        = core.Level
	LevelSpec    = core.LevelSpec
	Record       = core.Record
	RecordWriter = core.RecordWriter
	ErrorInfo    = core.ErrorInfo
	CallSite     = core.CallSite
)

// Ordinal levels.
const (
	TRACE = core.LevelTrace
	DEBUG = core.LevelDebug
	INFO  = core.LevelInfo
	WARN  = core.LevelWarn
	ERROR = core.LevelError
	FATAL = core.LevelFatal
	NONE  = core.LevelNone
)

// Bitwise levels.
const (
	BitwiseNone  = core.BitwiseNone
	BitwiseTrace = core.BitwiseTrace
	BitwiseDebug = core.BitwiseDebug
	BitwiseInfo  = core.BitwiseInfo
	BitwiseWarn  = core.BitwiseWarn
	BitwiseError = core.BitwiseError
	BitwiseFatal = core.BitwiseFatal
	BitwiseAll   = core.BitwiseAll
)

// Level tables.
var (
	Ordinal = core.Ordinal
	Bitwise = core.Bitwise
)

// Stream types.
const (
	TypeStream = core.TypeStream
	TypeFile   = core.TypeFile
	TypeRaw    = core.TypeRaw
)
