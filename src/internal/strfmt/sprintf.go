// FILE: clilogger/src/internal/strfmt/sprintf.go

// Package strfmt implements the printf-style substitution used for log messages and
// the optional message normalizers.
package strfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Sprintf substitutes params into template.
//
// Supported verbs: %s (string form), %d and %i (integer), %f (float), %j (JSON),
// %o and %O (detailed Go form) and %% (literal percent). Verbs without a matching
// parameter are left untouched and surplus parameters are appended separated by spaces.
// A template without parameters is returned as-is.
func Sprintf(template string, params ...any) string {
	if len(params) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(params))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		verb := template[i+1]
		if verb == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		if !isVerb(verb) || next >= len(params) {
			b.WriteByte(c)
			continue
		}

		b.WriteString(render(verb, params[next]))
		next++
		i++
	}

	for ; next < len(params); next++ {
		b.WriteByte(' ')
		if s, ok := params[next].(string); ok {
			b.WriteString(s)
		} else {
			b.WriteString(inspect(params[next]))
		}
	}

	return b.String()
}

// Join renders values the way Sprintf renders surplus parameters.
func Join(values ...any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			parts = append(parts, s)
		} else {
			parts = append(parts, inspect(v))
		}
	}
	return strings.Join(parts, " ")
}

func isVerb(c byte) bool {
	switch c {
	case 's', 'd', 'i', 'f', 'j', 'o', 'O':
		return true
	}
	return false
}

func render(verb byte, v any) string {
	switch verb {
	case 's':
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	case 'd', 'i':
		return integer(v)
	case 'f':
		f, ok := number(v)
		if !ok {
			return "NaN"
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case 'j':
		data, err := json.Marshal(v)
		if err != nil {
			return "[Circular]"
		}
		return string(data)
	default:
		return inspect(v)
	}
}

func inspect(v any) string {
	if v == nil {
		return "<nil>"
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", v)
}

// integer renders v in base 10. Integer kinds and integer strings keep every digit;
// floats are truncated toward zero.
func integer(v any) string {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return strconv.FormatInt(n, 10)
		}
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return strconv.FormatUint(n, 10)
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	f, ok := number(v)
	switch {
	case !ok || math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(math.Trunc(f), 'f', 0, 64)
}

func number(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
