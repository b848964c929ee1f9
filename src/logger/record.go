// FILE: clilogger/src/logger/record.go
package logger

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"clilogger/src/internal/core"
	"clilogger/src/internal/format"
)

type messageKind int

const (
	kindText messageKind = iota
	kindError
	kindStructured
	kindList
)

// message is the first argument of a log call, classified once.
type message struct {
	kind   messageKind
	text   string
	err    error
	fields map[string]any
	value  any
}

func classify(v any) message {
	switch m := v.(type) {
	case string:
		return message{kind: kindText, text: m}
	case error:
		return message{kind: kindError, err: m}
	case Fields:
		return message{kind: kindStructured, fields: m, value: m}
	case map[string]any:
		return message{kind: kindStructured, fields: m, value: m}
	case fmt.Stringer:
		return message{kind: kindText, text: m.String()}
	case []byte:
		return message{kind: kindText, text: string(m)}
	case nil:
		return message{kind: kindText, text: fmt.Sprint(v)}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		return message{kind: kindStructured, fields: toFields(v), value: v}
	case reflect.Slice, reflect.Array:
		return message{kind: kindList, text: string(format.Marshal(v)), value: v}
	}
	return message{kind: kindText, text: fmt.Sprint(v)}
}

// toFields turns a struct or map into its JSON object properties.
func toFields(v any) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal(format.Marshal(v), &fields); err != nil {
		return nil
	}
	return fields
}

func errorInfo(err error) *ErrorInfo {
	return &ErrorInfo{
		Message: err.Error(),
		Name:    fmt.Sprintf("%T", err),
		Stack:   fmt.Sprintf("%+v", err),
	}
}

// template splits the arguments following an error or structured value.
func template(rest []any) (string, []any) {
	if s, ok := rest[0].(string); ok {
		return s, rest[1:]
	}
	return fmt.Sprint(rest[0]), rest[1:]
}

// newRecord builds the record for one log call. args is never empty.
func (l *Logger) newRecord(level Level, args []any) *Record {
	l.mu.RLock()
	callers := l.callers
	l.mu.RUnlock()

	rec := &Record{
		Time:      time.Now(),
		Pid:       l.pid,
		Hostname:  l.hostname,
		Name:      l.cfg.Name,
		Level:     level,
		LevelName: l.levels.Name(level),
		Version:   core.RecordVersion,
	}

	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}

	msg := classify(args[0])
	rest := args[1:]

	switch msg.kind {
	case kindError:
		rec.Err = errorInfo(msg.err)
		if len(rest) == 0 {
			rec.SetLiteral(msg.err.Error())
		} else {
			rec.Template, rec.Params = template(rest)
		}
	case kindStructured:
		for k, v := range msg.fields {
			fields[k] = v
		}
		if len(rest) == 0 {
			rec.SetLiteral(string(format.Marshal(msg.value)))
		} else {
			rec.Template, rec.Params = template(rest)
		}
	case kindList:
		if len(rest) == 0 {
			rec.SetLiteral(msg.text)
		} else {
			rec.Template, rec.Params = msg.text, rest
		}
	default:
		rec.Template, rec.Params = msg.text, rest
	}

	for k, v := range fields {
		if serialize, ok := l.serializers[k]; ok && serialize != nil {
			fields[k] = serialize(v)
		}
	}
	if len(fields) > 0 {
		rec.Fields = fields
	}

	if l.cfg.Src && callers != nil {
		rec.Src = callers.Capture(l.cfg.Stack)
	}

	if l.message.Enabled() {
		rec.SetPostFormatter(l.message.Apply)
	}
	return rec
}
