// FILE: clilogger/src/stream/throttle.go
package stream

import (
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by Throttle when a write exceeds the configured rate.
var ErrRateLimited = errors.New("stream rate limit exceeded")

// Throttle limits the write rate of an underlying writer with a token bucket.
// Writes over the limit are dropped and reported with ErrRateLimited.
type Throttle struct {
	w       io.Writer
	limiter *rate.Limiter

	// Statistics
	totalWritten atomic.Uint64
	totalDropped atomic.Uint64
}

// NewThrottle allows perSecond writes on average with bursts of up to burst writes.
func NewThrottle(w io.Writer, perSecond float64, burst int) *Throttle {
	if burst < 1 {
		burst = 1
	}
	return &Throttle{
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (t *Throttle) Write(p []byte) (int, error) {
	if !t.limiter.Allow() {
		t.totalDropped.Add(1)
		return 0, ErrRateLimited
	}
	t.totalWritten.Add(1)
	return t.w.Write(p)
}

// Close closes the underlying writer when it is an io.Closer.
func (t *Throttle) Close() error {
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// GetStats returns throttle statistics
func (t *Throttle) GetStats() map[string]any {
	return map[string]any{
		"rate":          float64(t.limiter.Limit()),
		"burst":         t.limiter.Burst(),
		"total_written": t.totalWritten.Load(),
		"total_dropped": t.totalDropped.Load(),
	}
}
