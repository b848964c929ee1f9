// FILE: clilogger/src/stream/console_test.go
package stream

import (
	"fmt"
	"testing"

	"clilogger/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	level string
	line  string
}

func capture(out *[]captured, level string) ConsoleWriter {
	return func(format string, args ...any) {
		*out = append(*out, captured{level: level, line: fmt.Sprintf(format, args...)})
	}
}

func captureAll(out *[]captured) ConsoleWriters {
	return ConsoleWriters{
		Trace: capture(out, "trace"),
		Debug: capture(out, "debug"),
		Info:  capture(out, "info"),
		Warn:  capture(out, "warn"),
		Error: capture(out, "error"),
		Fatal: capture(out, "fatal"),
	}
}

func TestConsole(t *testing.T) {
	t.Run("RoutesByLevel", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: captureAll(&out)})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelWarn, Template: "careful"}))
		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelDebug, Template: "n=%d", Params: []any{3}}))

		assert.Equal(t, []captured{
			{level: "warn", line: "careful"},
			{level: "debug", line: "n=3"},
		}, out)
	})

	t.Run("PrefixesEveryLine", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: captureAll(&out), Prefix: "[app]"})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelInfo, Template: "one\ntwo"}))
		assert.Equal(t, []captured{
			{level: "info", line: "[app] one"},
			{level: "info", line: "[app] two"},
		}, out)
	})

	t.Run("PrefixFunc", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{
			Writers: captureAll(&out),
			Prefix:  "svc",
			PrefixFunc: func(prefix, line string, rec *core.Record) string {
				return fmt.Sprintf("%s|%s|%d", prefix, line, rec.Level)
			},
		})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelError, Template: "boom"}))
		assert.Equal(t, []captured{{level: "error", line: "svc|boom|50"}}, out)
	})

	t.Run("ColorLabelWithoutTerminal", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: captureAll(&out), Color: true})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelFatal, Template: "down"}))
		assert.Equal(t, []captured{{level: "fatal", line: "FATAL down"}}, out)
	})

	t.Run("BitwiseCombinedFlagsUseMostSevere", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Bitwise, ConsoleOptions{Writers: captureAll(&out)})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.BitwiseInfo | core.BitwiseError, Template: "mixed"}))
		require.NoError(t, c.WriteRecord(&core.Record{Level: core.BitwiseTrace, Template: "fine"}))
		assert.Equal(t, []captured{
			{level: "error", line: "mixed"},
			{level: "trace", line: "fine"},
		}, out)
	})

	t.Run("UnknownLevelFallsBackToInfo", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: captureAll(&out)})

		require.NoError(t, c.WriteRecord(&core.Record{Level: 35, Template: "odd"}))
		assert.Equal(t, []captured{{level: "info", line: "odd"}}, out)
	})

	t.Run("PlainWriteUsesInfo", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: captureAll(&out)})

		n, err := c.Write([]byte("raw text\n"))
		require.NoError(t, err)
		assert.Equal(t, 9, n)
		assert.Equal(t, []captured{{level: "info", line: "raw text"}}, out)
	})

	t.Run("AllWriters", func(t *testing.T) {
		var out []captured
		c := NewConsole(core.Ordinal, ConsoleOptions{Writers: AllWriters(capture(&out, "all"))})

		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelTrace, Template: "t"}))
		require.NoError(t, c.WriteRecord(&core.Record{Level: core.LevelError, Template: "e"}))
		assert.Equal(t, []captured{{level: "all", line: "t"}, {level: "all", line: "e"}}, out)
	})
}
