// FILE: clilogger/src/internal/format/json.go
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"clilogger/src/internal/core"

	"github.com/valyala/bytebufferpool"
)

// Fields that are always written by the formatter and cannot be overridden by custom fields
var reservedFields = map[string]bool{
	"name":     true,
	"hostname": true,
	"pid":      true,
	"level":    true,
	"msg":      true,
	"time":     true,
	"v":        true,
}

// JSONFormatter produces one JSON object per record.
type JSONFormatter struct {
	pretty bool
}

// NewJSONFormatter creates a new JSON formatter. Recognized options: "pretty".
func NewJSONFormatter(options map[string]any) (*JSONFormatter, error) {
	f := &JSONFormatter{}
	if pretty, ok := options["pretty"].(bool); ok {
		f.pretty = pretty
	}
	return f, nil
}

// Format transforms a single Record into a JSON line.
//
// Custom fields come first in key order, followed by the standard fields. A custom field
// sharing a name with a standard field is dropped; "err" and "src" are only reserved when
// the record carries error or caller information.
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteByte('{')
	first := true
	writeKey := func(key string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.B = strconv.AppendQuote(buf.B, key)
		buf.WriteByte(':')
	}

	keys := make([]string, 0, len(rec.Fields))
	for k := range rec.Fields {
		if reservedFields[k] || (k == "err" && rec.Err != nil) || (k == "src" && rec.Src != nil) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		writeKey(k)
		buf.B = append(buf.B, Marshal(rec.Fields[k])...)
	}

	writeKey("name")
	buf.B = append(buf.B, Marshal(rec.Name)...)
	writeKey("hostname")
	buf.B = append(buf.B, Marshal(rec.Hostname)...)
	writeKey("pid")
	buf.B = strconv.AppendInt(buf.B, int64(rec.Pid), 10)
	writeKey("level")
	buf.B = strconv.AppendInt(buf.B, int64(rec.Level), 10)
	writeKey("msg")
	buf.B = append(buf.B, Marshal(rec.Message())...)
	writeKey("time")
	buf.B = strconv.AppendQuote(buf.B, rec.Timestamp())
	writeKey("v")
	buf.B = strconv.AppendInt(buf.B, int64(rec.Version), 10)

	if rec.Err != nil {
		writeKey("err")
		buf.B = append(buf.B, Marshal(rec.Err)...)
	}
	if rec.Src != nil {
		writeKey("src")
		buf.B = append(buf.B, Marshal(rec.Src)...)
	}
	buf.WriteByte('}')

	var result []byte
	if f.pretty {
		var out bytes.Buffer
		if err := json.Indent(&out, buf.B, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent JSON: %w", err)
		}
		result = out.Bytes()
	} else {
		result = append([]byte(nil), buf.B...)
	}

	// Add newline
	return append(result, '\n'), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}
