// FILE: clilogger/src/stream/throttle_test.go
package stream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestThrottle(t *testing.T) {
	t.Run("DropsOverBurst", func(t *testing.T) {
		var buf bytes.Buffer
		th := NewThrottle(&buf, 0.001, 2)

		_, err := th.Write([]byte("a"))
		require.NoError(t, err)
		_, err = th.Write([]byte("b"))
		require.NoError(t, err)
		n, err := th.Write([]byte("c"))
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Zero(t, n)

		assert.Equal(t, "ab", buf.String())
		stats := th.GetStats()
		assert.Equal(t, uint64(2), stats["total_written"])
		assert.Equal(t, uint64(1), stats["total_dropped"])
		assert.Equal(t, 2, stats["burst"])
	})

	t.Run("ClosesUnderlying", func(t *testing.T) {
		rec := &closeRecorder{}
		th := NewThrottle(rec, 10, 1)
		require.NoError(t, th.Close())
		assert.True(t, rec.closed)
	})

	t.Run("CloseWithoutCloser", func(t *testing.T) {
		th := NewThrottle(&bytes.Buffer{}, 10, 0)
		assert.NoError(t, th.Close())
		assert.Equal(t, 1, th.GetStats()["burst"])
	})
}
