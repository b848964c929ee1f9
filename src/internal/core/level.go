// FILE: clilogger/src/internal/core/level.go
package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownLevel is returned when a level token does not resolve in the active level table.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is a severity value. Its meaning depends on the LevelSpec it belongs to.
type Level int

// Ordinal severity values.
const (
	LevelTrace Level = 10
	LevelDebug Level = 20
	LevelInfo  Level = 30
	LevelWarn  Level = 40
	LevelError Level = 50
	LevelFatal Level = 60
	LevelNone  Level = 70
)

// Bitwise severity flags.
const (
	BitwiseNone  Level = 0
	BitwiseTrace Level = 1 << 0
	BitwiseDebug Level = 1 << 1
	BitwiseInfo  Level = 1 << 2
	BitwiseWarn  Level = 1 << 3
	BitwiseError Level = 1 << 4
	BitwiseFatal Level = 1 << 5
	BitwiseAll   Level = BitwiseTrace | BitwiseDebug | BitwiseInfo | BitwiseWarn | BitwiseError | BitwiseFatal
)

// LevelSpec is one of the two level universes. The zero value selects nothing and is
// replaced by Ordinal wherever a logger is constructed.
type LevelSpec struct {
	Trace Level
	Debug Level
	Info  Level
	Warn  Level
	Error Level
	Fatal Level
	None  Level
	// All is only defined for the bitwise table
	All Level

	bitwise bool
}

var (
	// Ordinal levels compare with >=.
	Ordinal = LevelSpec{
		Trace: LevelTrace,
		Debug: LevelDebug,
		Info:  LevelInfo,
		Warn:  LevelWarn,
		Error: LevelError,
		Fatal: LevelFatal,
		None:  LevelNone,
	}

	// Bitwise levels compare by flag containment.
	Bitwise = LevelSpec{
		Trace:   BitwiseTrace,
		Debug:   BitwiseDebug,
		Info:    BitwiseInfo,
		Warn:    BitwiseWarn,
		Error:   BitwiseError,
		Fatal:   BitwiseFatal,
		None:    BitwiseNone,
		All:     BitwiseAll,
		bitwise: true,
	}
)

// Names lists the level names in severity order. "all" is only present for the bitwise table.
var Names = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// IsBitwise reports whether s is the flag-based table.
func (s LevelSpec) IsBitwise() bool {
	return s.bitwise
}

// IsZero reports whether no table was selected.
func (s LevelSpec) IsZero() bool {
	return s == LevelSpec{}
}

// Lookup maps a case-insensitive level name to its value.
func (s LevelSpec) Lookup(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return s.Trace, true
	case "debug":
		return s.Debug, true
	case "info":
		return s.Info, true
	case "warn", "warning":
		return s.Warn, true
	case "error":
		return s.Error, true
	case "fatal":
		return s.Fatal, true
	case "none":
		return s.None, true
	case "all":
		if s.bitwise {
			return s.All, true
		}
	}
	return 0, false
}

// Name returns the level name for an exact value, or "" when the value is not a named level.
func (s LevelSpec) Name(l Level) string {
	switch l {
	case s.Trace:
		return "trace"
	case s.Debug:
		return "debug"
	case s.Info:
		return "info"
	case s.Warn:
		return "warn"
	case s.Error:
		return "error"
	case s.Fatal:
		return "fatal"
	case s.None:
		return "none"
	}
	if s.bitwise && l == s.All {
		return "all"
	}
	return ""
}

// Defined reports whether l is one of the table's named values.
func (s LevelSpec) Defined(l Level) bool {
	return s.Name(l) != ""
}

// Resolve converts a level token (name or number) into a Level.
// Ordinal tables only accept defined values; bitwise tables accept any number
// so that flags can be combined, but names must still match.
func (s LevelSpec) Resolve(token any) (Level, error) {
	if name, ok := token.(string); ok {
		if l, found := s.Lookup(name); found {
			return l, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	l, ok := ToLevel(token)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T)", ErrUnknownLevel, token, token)
	}
	if s.bitwise || s.Defined(l) {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownLevel, l)
}

// Enabled applies the table's comparison rule to a record level and a sink threshold.
func (s LevelSpec) Enabled(level, threshold Level) bool {
	if s.bitwise {
		return threshold&level == level
	}
	return level >= threshold
}

// ToLevel converts the numeric kinds produced by Go code and config decoders to a Level.
func ToLevel(v any) (Level, bool) {
	switch n := v.(type) {
	case Level:
		return n, true
	case int:
		return Level(n), true
	case int8:
		return Level(n), true
	case int16:
		return Level(n), true
	case int32:
		return Level(n), true
	case int64:
		return Level(n), true
	case uint:
		return Level(n), true
	case uint8:
		return Level(n), true
	case uint16:
		return Level(n), true
	case uint32:
		return Level(n), true
	case uint64:
		return Level(n), true
	case float32:
		return floatLevel(float64(n))
	case float64:
		return floatLevel(n)
	default:
		return 0, false
	}
}

func floatLevel(f float64) (Level, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return Level(f), true
}
