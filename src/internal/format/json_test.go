// FILE: clilogger/src/internal/format/json_test.go
package format

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"clilogger/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	t.Run("BasicFormatting", func(t *testing.T) {
		formatter, err := NewJSONFormatter(nil)
		require.NoError(t, err)

		output, err := formatter.Format(newTestRecord())
		require.NoError(t, err)

		var result map[string]any
		err = json.Unmarshal(output, &result)
		require.NoError(t, err, "Output should be valid JSON")

		assert.Equal(t, "2023-01-01T12:00:00.000Z", result["time"])
		assert.Equal(t, float64(30), result["level"])
		assert.Equal(t, "test-app", result["name"])
		assert.Equal(t, "test-host", result["hostname"])
		assert.Equal(t, float64(4242), result["pid"])
		assert.Equal(t, "this is a test", result["msg"])
		assert.Equal(t, float64(0), result["v"])
		assert.NotContains(t, result, "err")
		assert.NotContains(t, result, "src")
		assert.True(t, strings.HasSuffix(string(output), "\n"), "Output should end with a newline")
		assert.Equal(t, 1, strings.Count(string(output), "\n"))
	})

	t.Run("PrettyFormatting", func(t *testing.T) {
		formatter, err := NewJSONFormatter(map[string]any{"pretty": true})
		require.NoError(t, err)

		output, err := formatter.Format(newTestRecord())
		require.NoError(t, err)

		assert.Contains(t, string(output), `  "level": 30`)
		assert.True(t, strings.HasSuffix(string(output), "\n"))
	})

	t.Run("CustomFieldsCannotOverrideStandard", func(t *testing.T) {
		rec := newTestRecord()
		rec.Fields = map[string]any{"component": "db", "msg": "spoofed", "level": 99}

		formatter, _ := NewJSONFormatter(nil)
		output, err := formatter.Format(rec)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(output, &result))
		assert.Equal(t, "db", result["component"])
		assert.Equal(t, "this is a test", result["msg"])
		assert.Equal(t, float64(30), result["level"])
	})

	t.Run("ErrFieldKeptWithoutError", func(t *testing.T) {
		rec := newTestRecord()
		rec.Fields = map[string]any{"err": "custom"}

		formatter, _ := NewJSONFormatter(nil)
		output, err := formatter.Format(rec)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(output, &result))
		assert.Equal(t, "custom", result["err"])
	})

	t.Run("ErrorAndSource", func(t *testing.T) {
		rec := newTestRecord()
		rec.Err = &core.ErrorInfo{Message: "boom", Name: "*errors.errorString"}
		rec.Src = &core.CallSite{File: "main.go", Line: 12, Func: "main.run"}

		formatter, _ := NewJSONFormatter(nil)
		output, err := formatter.Format(rec)
		require.NoError(t, err)

		var result struct {
			Err core.ErrorInfo `json:"err"`
			Src core.CallSite  `json:"src"`
		}
		require.NoError(t, json.Unmarshal(output, &result))
		assert.Equal(t, "boom", result.Err.Message)
		assert.Equal(t, 12, result.Src.Line)
	})

	t.Run("CircularField", func(t *testing.T) {
		cyclic := map[string]any{"name": "loop"}
		cyclic["self"] = cyclic

		rec := newTestRecord()
		rec.Fields = map[string]any{"data": cyclic}

		formatter, _ := NewJSONFormatter(nil)
		output, err := formatter.Format(rec)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(output, &result))
		data := result["data"].(map[string]any)
		assert.Equal(t, "loop", data["name"])
		assert.Equal(t, CircularMarker, data["self"])
	})

	t.Run("ErrorFieldValue", func(t *testing.T) {
		rec := newTestRecord()
		rec.Fields = map[string]any{"cause": errors.New("disk full")}

		formatter, _ := NewJSONFormatter(nil)
		output, err := formatter.Format(rec)
		require.NoError(t, err)
		assert.Contains(t, string(output), `"cause":"disk full"`)
	})
}

type node struct {
	Name string `json:"name"`
	Next *node  `json:"next,omitempty"`
	skip int
}

func TestDecycle(t *testing.T) {
	t.Run("PointerCycle", func(t *testing.T) {
		a := &node{Name: "a"}
		b := &node{Name: "b", Next: a}
		a.Next = b

		out := Decycle(a).(map[string]any)
		assert.Equal(t, "a", out["name"])
		next := out["next"].(map[string]any)
		assert.Equal(t, "b", next["name"])
		assert.Equal(t, CircularMarker, next["next"])
		assert.NotContains(t, out, "skip")
	})

	t.Run("SharedReferenceIsNotCircular", func(t *testing.T) {
		shared := &node{Name: "shared"}
		out := Decycle([]any{shared, shared}).([]any)
		require.Len(t, out, 2)
		assert.Equal(t, "shared", out[1].(map[string]any)["name"])
	})

	t.Run("MarshalFallsBack", func(t *testing.T) {
		a := &node{Name: "a"}
		a.Next = a
		assert.Equal(t, `{"name":"a","next":"[Circular]"}`, string(Marshal(a)))
	})

	t.Run("UnencodableValue", func(t *testing.T) {
		assert.Equal(t, `"(1+2i)"`, string(Marshal(complex(1, 2))))
	})
}
