// FILE: clilogger/src/logger/child_test.go
package logger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"clilogger/src/logger"
	"clilogger/src/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChild(t *testing.T) {
	t.Run("AddsFieldsWithoutTouchingParent", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", JSON: true, Stream: &buf, Fields: logger.Fields{"env": "test"}})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{Fields: logger.Fields{"component": "x"}})
		require.NoError(t, err)

		child.Info("from child")
		parent.Info("from parent")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "x", lines[0]["component"])
		assert.Equal(t, "test", lines[0]["env"])
		assert.Equal(t, "app", lines[0]["name"])
		assert.NotContains(t, lines[1], "component")
		assert.Equal(t, logger.Fields{"env": "test"}, parent.Fields())
	})

	t.Run("OverridesName", func(t *testing.T) {
		parent, err := logger.New(logger.Config{Name: "app", Stream: io.Discard})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{Name: "worker"})
		require.NoError(t, err)
		assert.Equal(t, "worker", child.Name())
		assert.Equal(t, "app", parent.Name())

		_, err = parent.Child(logger.Config{Name: " "})
		assert.ErrorIs(t, err, logger.ErrInvalidLoggerName)
	})

	t.Run("IndependentThresholds", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", Stream: &buf})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{})
		require.NoError(t, err)
		require.NoError(t, child.SetLevel("error"))

		assert.Equal(t, logger.INFO, parent.Level())
		assert.Equal(t, logger.ERROR, child.Level())

		child.Info("dropped")
		parent.Info("kept")
		child.Error("shared writer")
		assert.Equal(t, "kept\nshared writer\n", buf.String())
	})

	t.Run("AppendsStreams", func(t *testing.T) {
		var parentBuf, childBuf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", Stream: &parentBuf})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{Streams: logger.StreamConfig{Stream: &childBuf, Name: "extra"}})
		require.NoError(t, err)

		sinks := child.Sinks()
		require.Len(t, sinks, 2)
		assert.Equal(t, "extra", sinks[1].Name)
		assert.Len(t, parent.Sinks(), 1)

		child.Info("both")
		assert.Equal(t, "both\n", parentBuf.String())
		assert.Equal(t, "both\n", childBuf.String())
	})

	t.Run("LevelAppliesToInheritedSinks", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", Stream: &buf})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{Level: "warn"})
		require.NoError(t, err)
		assert.Equal(t, logger.WARN, child.Level())
		assert.Equal(t, logger.INFO, parent.Level())
	})

	t.Run("InheritsCurrentLevel", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", Stream: &buf})
		require.NoError(t, err)
		require.NoError(t, parent.SetLevel("debug"))

		child, err := parent.Child(logger.Config{Streams: logger.StreamConfig{Stream: io.Discard, Name: "new"}})
		require.NoError(t, err)
		level, err := child.LevelFor("new")
		require.NoError(t, err)
		assert.Equal(t, logger.DEBUG, level)
	})

	t.Run("InheritsLevelTable", func(t *testing.T) {
		parent, err := logger.New(logger.Config{Name: "app", Levels: logger.Bitwise, Stream: io.Discard})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{})
		require.NoError(t, err)
		assert.True(t, child.Levels().IsBitwise())
		assert.Equal(t, logger.BitwiseInfo, child.Level())
	})

	t.Run("SwitchesLevelTable", func(t *testing.T) {
		parent, err := logger.New(logger.Config{Name: "app", Stream: io.Discard})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{Levels: logger.Bitwise})
		require.NoError(t, err)
		assert.True(t, child.Levels().IsBitwise())
		assert.False(t, parent.Levels().IsBitwise())
		assert.Equal(t, logger.BitwiseInfo, child.Level())
		assert.True(t, child.Info())
		assert.False(t, child.Debug())
	})

	t.Run("EnablesOptions", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{Name: "app", Stream: &buf})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{JSON: true, Normalize: true})
		require.NoError(t, err)

		child.Info("structured now")
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "Structured now.", lines[0]["msg"])
	})

	t.Run("JSONFollowsChildUnlessOverridden", func(t *testing.T) {
		var plain, pinned bytes.Buffer
		parent, err := logger.New(logger.Config{
			Name: "app",
			Streams: []logger.StreamConfig{
				{Stream: &plain, Name: "plain"},
				{Stream: &pinned, Name: "pinned", JSON: logger.Bool(false)},
			},
		})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{JSON: true})
		require.NoError(t, err)

		child.Info("from child")
		parent.Info("from parent")

		lines := strings.Split(strings.TrimRight(plain.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
		assert.Equal(t, "from child", rec["msg"])
		assert.Equal(t, "from parent", lines[1])

		assert.Equal(t, "from child\nfrom parent\n", pinned.String())

		assert.True(t, child.Sinks()[0].JSON)
		assert.False(t, child.Sinks()[1].JSON)
		assert.False(t, parent.Sinks()[0].JSON)
	})

	t.Run("MergesSerializers", func(t *testing.T) {
		var buf bytes.Buffer
		parent, err := logger.New(logger.Config{
			Name:        "app",
			JSON:        true,
			Stream:      &buf,
			Serializers: map[string]logger.Serializer{"token": func(any) any { return "redacted" }},
		})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{
			Serializers: map[string]logger.Serializer{"id": func(v any) any { return "id-" + v.(string) }},
		})
		require.NoError(t, err)

		child.Info(logger.Fields{"token": "abc", "id": "7"}, "request")
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "redacted", lines[0]["token"])
		assert.Equal(t, "id-7", lines[0]["id"])
	})

	t.Run("CloseLeavesInheritedSinks", func(t *testing.T) {
		dir := t.TempDir()
		parent, err := logger.New(logger.Config{Name: "app", Streams: logger.StreamConfig{Path: dir + "/parent.log"}})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{})
		require.NoError(t, err)
		require.NoError(t, child.Close())

		var errs []error
		parent.OnError(func(err error, _ io.Writer) { errs = append(errs, err) })
		parent.Info("still open")
		assert.Empty(t, errs)
		require.NoError(t, parent.Close())
	})

	t.Run("ConsoleChild", func(t *testing.T) {
		var lines []string
		parent, err := logger.New(logger.Config{Name: "app", Stream: io.Discard})
		require.NoError(t, err)

		child, err := parent.Child(logger.Config{
			Console: true,
			Writers: stream.AllWriters(func(format string, args ...any) {
				lines = append(lines, args[0].(string))
			}),
		})
		require.NoError(t, err)

		child.Warn("to console")
		assert.Equal(t, []string{"to console"}, lines)
		assert.Len(t, child.Sinks(), 1)
	})
}
