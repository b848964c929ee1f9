// FILE: clilogger/src/logger/errors.go
package logger

import (
	"errors"

	"clilogger/src/internal/core"
)

var (
	ErrUnknownLevel                = core.ErrUnknownLevel
	ErrInvalidStreamsConfiguration = errors.New("invalid streams configuration")
	ErrUnknownStreamType           = errors.New("unknown stream type")
	ErrInvalidStream               = errors.New("invalid stream")
	ErrStreamNotFound              = errors.New("stream not found")
	ErrInvalidBitwiseLevel         = errors.New("bitwise level must be numeric")
	ErrInvalidLoggerName           = errors.New("invalid logger name")
)
