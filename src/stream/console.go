// FILE: clilogger/src/stream/console.go
package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"clilogger/src/internal/core"
	"clilogger/src/internal/strfmt"

	"golang.org/x/term"
)

// ConsoleWriter prints one message with printf-style substitution.
type ConsoleWriter func(format string, args ...any)

// ConsoleWriters selects a writer per severity. Nil entries fall back to the defaults:
// trace, debug and info print to stdout, warn, error and fatal to stderr.
type ConsoleWriters struct {
	Trace ConsoleWriter
	Debug ConsoleWriter
	Info  ConsoleWriter
	Warn  ConsoleWriter
	Error ConsoleWriter
	Fatal ConsoleWriter
}

// AllWriters uses fn for every severity.
func AllWriters(fn ConsoleWriter) ConsoleWriters {
	return ConsoleWriters{Trace: fn, Debug: fn, Info: fn, Warn: fn, Error: fn, Fatal: fn}
}

// merge fills nil entries of w from base.
func (w ConsoleWriters) merge(base ConsoleWriters) ConsoleWriters {
	pick := func(a, b ConsoleWriter) ConsoleWriter {
		if a != nil {
			return a
		}
		return b
	}
	return ConsoleWriters{
		Trace: pick(w.Trace, base.Trace),
		Debug: pick(w.Debug, base.Debug),
		Info:  pick(w.Info, base.Info),
		Warn:  pick(w.Warn, base.Warn),
		Error: pick(w.Error, base.Error),
		Fatal: pick(w.Fatal, base.Fatal),
	}
}

// Merge fills nil entries of w from base.
func (w ConsoleWriters) Merge(base ConsoleWriters) ConsoleWriters {
	return w.merge(base)
}

// PrefixFunc builds the printed line from the configured prefix and one message line.
type PrefixFunc func(prefix, line string, rec *core.Record) string

// ConsoleOptions configures a Console.
type ConsoleOptions struct {
	Writers ConsoleWriters
	// Prefix is printed before every line, separated by a space
	Prefix string
	// PrefixFunc replaces the default prefixing when set
	PrefixFunc PrefixFunc
	// Color prepends the upper-cased level name, in color when the default writer
	// for that level targets a terminal
	Color bool
}

var levelColors = map[string]string{
	"trace": "\x1b[90m",
	"debug": "\x1b[36m",
	"info":  "\x1b[32m",
	"warn":  "\x1b[33m",
	"error": "\x1b[31m",
	"fatal": "\x1b[35m",
}

const colorReset = "\x1b[0m"

// Console routes records to severity-specific writer functions.
type Console struct {
	levels     core.LevelSpec
	writers    map[core.Level]ConsoleWriter
	fallback   ConsoleWriter
	tty        map[core.Level]bool
	prefix     string
	prefixFunc PrefixFunc
	color      bool
}

// NewConsole creates a console stream for the given level table.
func NewConsole(levels core.LevelSpec, opts ConsoleOptions) *Console {
	if levels.IsZero() {
		levels = core.Ordinal
	}

	stdoutTTY := isTerminal(os.Stdout)
	stderrTTY := isTerminal(os.Stderr)
	defaults := ConsoleWriters{
		Trace: printer(os.Stdout),
		Debug: printer(os.Stdout),
		Info:  printer(os.Stdout),
		Warn:  printer(os.Stderr),
		Error: printer(os.Stderr),
		Fatal: printer(os.Stderr),
	}
	w := opts.Writers.merge(defaults)

	c := &Console{
		levels: levels,
		writers: map[core.Level]ConsoleWriter{
			levels.Trace: w.Trace,
			levels.Debug: w.Debug,
			levels.Info:  w.Info,
			levels.Warn:  w.Warn,
			levels.Error: w.Error,
			levels.Fatal: w.Fatal,
		},
		fallback: w.Info,
		tty: map[core.Level]bool{
			levels.Trace: opts.Writers.Trace == nil && stdoutTTY,
			levels.Debug: opts.Writers.Debug == nil && stdoutTTY,
			levels.Info:  opts.Writers.Info == nil && stdoutTTY,
			levels.Warn:  opts.Writers.Warn == nil && stderrTTY,
			levels.Error: opts.Writers.Error == nil && stderrTTY,
			levels.Fatal: opts.Writers.Fatal == nil && stderrTTY,
		},
		prefix:     opts.Prefix,
		prefixFunc: opts.PrefixFunc,
		color:      opts.Color,
	}
	return c
}

// WriteRecord prints the record's message with the writer for its level. Messages spanning
// several lines are printed line by line, each with the prefix.
func (c *Console) WriteRecord(rec *core.Record) error {
	level := c.severity(rec.Level)
	writer, ok := c.writers[level]
	if !ok {
		writer = c.fallback
	}

	prefix := c.prefix
	if c.color {
		prefix = strings.TrimSpace(c.label(level) + " " + prefix)
	}

	for _, line := range strings.Split(rec.Message(), "\n") {
		writer("%s", c.compose(prefix, line, rec))
	}
	return nil
}

// Write prints text written directly to the console with the info writer.
func (c *Console) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(text, "\n") {
		c.fallback("%s", c.compose(c.prefix, line, nil))
	}
	return len(p), nil
}

func (c *Console) compose(prefix, line string, rec *core.Record) string {
	if c.prefixFunc != nil {
		return c.prefixFunc(prefix, line, rec)
	}
	if prefix == "" {
		return line
	}
	return prefix + " " + line
}

// severity maps a record level to the named level whose writer handles it. Combined
// bitwise flags use the most severe flag they contain.
func (c *Console) severity(l core.Level) core.Level {
	if !c.levels.IsBitwise() || c.levels.Defined(l) {
		return l
	}
	for _, candidate := range []core.Level{c.levels.Fatal, c.levels.Error, c.levels.Warn, c.levels.Info, c.levels.Debug, c.levels.Trace} {
		if l&candidate == candidate {
			return candidate
		}
	}
	return c.levels.Info
}

func (c *Console) label(l core.Level) string {
	name := c.levels.Name(l)
	if name == "" {
		name = fmt.Sprintf("%d", l)
	}
	label := strings.ToUpper(name)
	if color, ok := levelColors[name]; ok && c.tty[l] {
		return color + label + colorReset
	}
	return label
}

func printer(w io.Writer) ConsoleWriter {
	return func(format string, args ...any) {
		fmt.Fprintln(w, strfmt.Sprintf(format, args...))
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
