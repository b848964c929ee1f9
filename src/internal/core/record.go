// FILE: clilogger/src/internal/core/record.go
package core

import (
	"time"

	"clilogger/src/internal/strfmt"
)

// ErrorInfo describes an error passed as the message argument.
type ErrorInfo struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Stack   string `json:"stack,omitempty"`
}

// CallSite describes where a log call was made.
type CallSite struct {
	File  string   `json:"file"`
	Line  int      `json:"line"`
	Func  string   `json:"func,omitempty"`
	Stack []string `json:"stack,omitempty"`
}

// Record is a single log event. It is built fresh for every log call and must be treated
// as read-only once it has been handed to a stream or a listener.
type Record struct {
	Time     time.Time
	Pid      int
	Hostname string
	Name     string
	Level    Level
	// LevelName is the name of Level in the logger's table, empty for combined flags
	LevelName string

	// Template and Params are kept apart until the message is read so that listeners
	// can see the raw substitution parameters.
	Template string
	Params   []any

	Err    *ErrorInfo
	Src    *CallSite
	Fields map[string]any

	Version int

	literal  bool
	post     func(string) string
	msg      string
	rendered bool
}

// SetLiteral makes text the final message: no substitution and no post-formatting.
func (r *Record) SetLiteral(text string) {
	r.Template = text
	r.Params = nil
	r.literal = true
	r.rendered = false
}

// Literal reports whether the message bypasses substitution.
func (r *Record) Literal() bool {
	return r.literal
}

// SetPostFormatter installs the transform applied to the substituted message.
func (r *Record) SetPostFormatter(fn func(string) string) {
	r.post = fn
	r.rendered = false
}

// Message substitutes Params into Template and applies the post formatter.
// The result is computed once.
func (r *Record) Message() string {
	if r.rendered {
		return r.msg
	}

	if r.literal {
		r.msg = r.Template
	} else {
		r.msg = strfmt.Sprintf(r.Template, r.Params...)
		if r.post != nil {
			r.msg = r.post(r.msg)
		}
	}
	r.rendered = true
	return r.msg
}

// Timestamp renders Time in the record's ISO-8601 form.
func (r *Record) Timestamp() string {
	return r.Time.UTC().Format(TimeLayout)
}

// RecordWriter is implemented by streams that consume records directly instead of
// serialized bytes. Such streams are registered with the raw sink type.
type RecordWriter interface {
	WriteRecord(rec *Record) error
}
