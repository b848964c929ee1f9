// FILE: clilogger/src/stream/ring_test.go
package stream

import (
	"fmt"
	"testing"

	"clilogger/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer(t *testing.T) {
	t.Run("DefaultLimit", func(t *testing.T) {
		r := NewRingBuffer(0)
		assert.Equal(t, core.DefaultRingLimit, r.Limit())
	})

	t.Run("NewestFirst", func(t *testing.T) {
		r := NewRingBuffer(3)
		for i := range 5 {
			_, err := fmt.Fprintf(r, "line %d\n", i)
			require.NoError(t, err)
		}

		assert.Equal(t, 3, r.Len())
		assert.Equal(t, []any{"line 4", "line 3", "line 2"}, r.Records())
	})

	t.Run("StoresRecords", func(t *testing.T) {
		r := NewRingBuffer(2)
		rec := &core.Record{Template: "hello"}
		require.NoError(t, r.WriteRecord(rec))
		_, _ = r.Write([]byte("text  \n"))

		records := r.Records()
		require.Len(t, records, 2)
		assert.Equal(t, "text", records[0])
		assert.Same(t, rec, records[1])
	})

	t.Run("RecordsIsCopy", func(t *testing.T) {
		r := NewRingBuffer(2)
		_, _ = r.Write([]byte("a"))
		records := r.Records()
		records[0] = "changed"
		assert.Equal(t, []any{"a"}, r.Records())
	})

	t.Run("Reset", func(t *testing.T) {
		r := NewRingBuffer(2)
		_, _ = r.Write([]byte("a"))
		r.Reset()
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Records())
	})
}
