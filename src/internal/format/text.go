// FILE: clilogger/src/internal/format/text.go
package format

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"clilogger/src/internal/core"

	"github.com/valyala/bytebufferpool"
)

const DefaultTimestampFormat = time.RFC3339

// Produces human-readable text logs using templates
type TextFormatter struct {
	timestampFormat string
	template        *template.Template
}

// Creates a new text formatter. Recognized options: "template", "timestamp_format".
func NewTextFormatter(options map[string]any) (*TextFormatter, error) {
	f := &TextFormatter{
		timestampFormat: DefaultTimestampFormat,
	}

	text := "{{.Message}}"
	if tmpl, ok := options["template"].(string); ok && tmpl != "" {
		text = tmpl
	}
	if tsFormat, ok := options["timestamp_format"].(string); ok && tsFormat != "" {
		f.timestampFormat = tsFormat
	}

	// Create template with helper functions
	funcMap := template.FuncMap{
		"FmtTime": func(t time.Time) string {
			return t.Format(f.timestampFormat)
		},
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"TrimSpace": strings.TrimSpace,
	}

	tmpl, err := template.New("log").Funcs(funcMap).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Formats the record using the template
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	data := map[string]any{
		"Time":      rec.Time,
		"Level":     rec.Level,
		"LevelName": rec.LevelName,
		"Name":      rec.Name,
		"Hostname":  rec.Hostname,
		"Pid":       rec.Pid,
		"Message":   rec.Message(),
		"Fields":    rec.Fields,
	}

	// Set default level name for combined flags
	if data["LevelName"] == "" {
		data["LevelName"] = fmt.Sprintf("%d", rec.Level)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := f.template.Execute(buf, data); err != nil {
		// Fallback: return a basic formatted message
		fallback := fmt.Sprintf("[%s] [%s] %s - %s\n",
			rec.Time.Format(f.timestampFormat),
			strings.ToUpper(rec.LevelName),
			rec.Name,
			rec.Message())
		return []byte(fallback), nil
	}

	// Ensure newline at end
	result := append([]byte(nil), buf.B...)
	if len(result) == 0 || result[len(result)-1] != '\n' {
		result = append(result, '\n')
	}

	return result, nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
