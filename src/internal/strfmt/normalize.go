// FILE: clilogger/src/internal/strfmt/normalize.go
package strfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPeriod terminates messages when normalization is enabled.
const DefaultPeriod = "."

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Punctuate appends period unless s already ends with it or is blank.
func Punctuate(s, period string) string {
	if period == "" || strings.TrimSpace(s) == "" || strings.HasSuffix(s, period) {
		return s
	}
	return s + period
}

// Options selects the message normalizers. Normalize implies Capitalize and a "." period
// and takes precedence over Pedantic.
type Options struct {
	Normalize  bool
	Capitalize bool
	Pedantic   string
	Formatter  func(string) string
}

// Enabled reports whether any transform is configured.
func (o Options) Enabled() bool {
	return o.Normalize || o.Capitalize || o.Pedantic != "" || o.Formatter != nil
}

// Apply runs the configured transforms in order: capitalize, punctuate, user formatter.
func (o Options) Apply(s string) string {
	if o.Normalize || o.Capitalize {
		s = Capitalize(s)
	}

	period := o.Pedantic
	if o.Normalize {
		period = DefaultPeriod
	}
	s = Punctuate(s, period)

	if o.Formatter != nil {
		s = o.Formatter(s)
	}
	return s
}
