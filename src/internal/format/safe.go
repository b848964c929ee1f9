// FILE: clilogger/src/internal/format/safe.go
package format

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unsafe"
)

// CircularMarker replaces a value that refers back to one of its ancestors.
const CircularMarker = "[Circular]"

var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	errorType         = reflect.TypeFor[error]()
	timeType          = reflect.TypeFor[time.Time]()
)

// Marshal encodes v as JSON and never fails: values with reference cycles are rewritten
// with CircularMarker, and anything still unencodable is written as its string form.
func Marshal(v any) []byte {
	if err, ok := v.(error); ok {
		if rv := reflect.ValueOf(v); rv.Kind() != reflect.Pointer || !rv.IsNil() {
			v = err.Error()
		}
	}

	if data, err := marshal(v); err == nil {
		return data
	}
	if data, err := marshal(Decycle(v)); err == nil {
		return data
	}
	data, _ := json.Marshal(fmt.Sprint(v))
	return data
}

func marshal(v any) ([]byte, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(b.String(), "\n")), nil
}

type visit struct {
	ptr unsafe.Pointer
	typ reflect.Type
}

// Decycle converts v into plain maps, slices and scalars, replacing back references.
func Decycle(v any) any {
	return decycle(reflect.ValueOf(v), make(map[visit]bool))
}

func decycle(rv reflect.Value, seen map[visit]bool) any {
	if !rv.IsValid() {
		return nil
	}

	t := rv.Type()
	if t.Implements(errorType) && (t.Kind() != reflect.Pointer || !rv.IsNil()) {
		return rv.Interface().(error).Error()
	}
	if t == timeType || (t.Implements(jsonMarshalerType) && t.Kind() != reflect.Pointer) {
		return rv.Interface()
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		key := visit{rv.UnsafePointer(), t}
		if seen[key] {
			return CircularMarker
		}
		seen[key] = true
		defer delete(seen, key)
		return decycle(rv.Elem(), seen)

	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return decycle(rv.Elem(), seen)

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		key := visit{rv.UnsafePointer(), t}
		if seen[key] {
			return CircularMarker
		}
		seen[key] = true
		defer delete(seen, key)

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = decycle(iter.Value(), seen)
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		if rv.Len() > 0 {
			key := visit{rv.UnsafePointer(), t}
			if seen[key] {
				return CircularMarker
			}
			seen[key] = true
			defer delete(seen, key)
		}
		return decycleList(rv, seen)

	case reflect.Array:
		return decycleList(rv, seen)

	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup("json"); ok {
				tagName, _, _ := strings.Cut(tag, ",")
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}
			out[name] = decycle(rv.Field(i), seen)
		}
		return out

	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(rv.Interface())

	default:
		return rv.Interface()
	}
}

func decycleList(rv reflect.Value, seen map[visit]bool) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = decycle(rv.Index(i), seen)
	}
	return out
}
