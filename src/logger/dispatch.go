// FILE: clilogger/src/logger/dispatch.go
package logger

import (
	"fmt"

	"clilogger/src/internal/core"
	"clilogger/src/internal/format"
)

// Log writes a record at level to every sink whose threshold enables it.
//
// With no arguments Log only reports whether level is enabled. Otherwise it returns false
// when write listeners took over the record, and true when the record was written.
// A zero level is never logged, and neither is a nil or empty message.
func (l *Logger) Log(level Level, args ...any) bool {
	if level == 0 {
		return false
	}
	if len(args) == 0 {
		return l.Enabled(level)
	}
	if args[0] == nil || args[0] == "" {
		return false
	}

	targets := l.enabledSinks(level)
	listeners := l.events.writeListeners()
	if len(targets) == 0 {
		return len(listeners) == 0
	}

	rec := l.newRecord(level, args)
	for _, s := range targets {
		if len(listeners) > 0 {
			for _, fn := range listeners {
				fn(rec, s.writer)
			}
			continue
		}
		l.write(s, rec)
	}
	return len(listeners) == 0
}

// Enabled reports whether any sink would write a record at level.
func (l *Logger) Enabled(level Level) bool {
	if level == 0 {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, s := range l.sinks {
		if l.levels.Enabled(level, s.level) {
			return true
		}
	}
	return false
}

// enabledSinks returns copies of the sinks that accept level.
func (l *Logger) enabledSinks(level Level) []sink {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []sink
	for _, s := range l.sinks {
		if l.levels.Enabled(level, s.level) {
			out = append(out, *s)
		}
	}
	return out
}

func (l *Logger) write(s sink, rec *Record) {
	var err error
	if s.kind == core.TypeRaw {
		if rw, ok := s.writer.(RecordWriter); ok {
			err = rw.WriteRecord(rec)
		} else {
			err = l.writeFormatted(s, rec, l.rawFormatter)
		}
	} else {
		formatter := l.textFormatter
		if l.useJSON(&s) {
			formatter = l.jsonFormatter
		}
		err = l.writeFormatted(s, rec, formatter)
	}

	if err != nil {
		l.events.emitError(fmt.Errorf("sink %q: %w", s.name, err), s.writer)
	}
}

func (l *Logger) writeFormatted(s sink, rec *Record, f format.Formatter) error {
	data, err := f.Format(rec)
	if err != nil {
		return fmt.Errorf("failed to format record: %w", err)
	}
	_, err = s.writer.Write(data)
	return err
}

// Trace logs at the trace level. With no arguments it reports whether trace is enabled.
func (l *Logger) Trace(args ...any) bool {
	return l.Log(l.levels.Trace, args...)
}

// Debug logs at the debug level. With no arguments it reports whether debug is enabled.
func (l *Logger) Debug(args ...any) bool {
	return l.Log(l.levels.Debug, args...)
}

// Info logs at the info level. With no arguments it reports whether info is enabled.
func (l *Logger) Info(args ...any) bool {
	return l.Log(l.levels.Info, args...)
}

// Warn logs at the warn level. With no arguments it reports whether warn is enabled.
func (l *Logger) Warn(args ...any) bool {
	return l.Log(l.levels.Warn, args...)
}

// Error logs at the error level. With no arguments it reports whether error is enabled.
func (l *Logger) Error(args ...any) bool {
	return l.Log(l.levels.Error, args...)
}

// Fatal logs at the fatal level. It does not exit the process.
// With no arguments it reports whether fatal is enabled.
func (l *Logger) Fatal(args ...any) bool {
	return l.Log(l.levels.Fatal, args...)
}
