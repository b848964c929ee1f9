// FILE: clilogger/src/stream/ring.go
package stream

import (
	"strings"
	"sync"

	"clilogger/src/internal/core"
)

// RingBuffer keeps the most recent records in memory, newest first.
// Text writes are stored as strings with trailing whitespace removed; records written
// through WriteRecord are stored as *core.Record.
type RingBuffer struct {
	mu      sync.Mutex
	limit   int
	records []any
}

// NewRingBuffer creates a ring buffer holding at most limit entries.
// A non-positive limit selects the default of 16.
func NewRingBuffer(limit int) *RingBuffer {
	if limit <= 0 {
		limit = core.DefaultRingLimit
	}
	return &RingBuffer{
		limit:   limit,
		records: make([]any, 0, limit),
	}
}

// Write stores p as a string entry.
func (r *RingBuffer) Write(p []byte) (int, error) {
	r.push(strings.TrimRightFunc(string(p), isSpace))
	return len(p), nil
}

// WriteRecord stores rec as-is.
func (r *RingBuffer) WriteRecord(rec *core.Record) error {
	r.push(rec)
	return nil
}

func (r *RingBuffer) push(entry any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, nil)
	copy(r.records[1:], r.records)
	r.records[0] = entry

	if len(r.records) > r.limit {
		r.records[len(r.records)-1] = nil
		r.records = r.records[:r.limit]
	}
}

// Records returns a copy of the buffered entries, newest first.
func (r *RingBuffer) Records() []any {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]any, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of buffered entries.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Limit returns the capacity.
func (r *RingBuffer) Limit() int {
	return r.limit
}

// Reset drops all entries.
func (r *RingBuffer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.records)
	r.records = r.records[:0]
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
