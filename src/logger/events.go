// FILE: clilogger/src/logger/events.go
package logger

import (
	"io"
	"sync"
)

// Event names accepted by ListenerCount.
const (
	EventWrite = "write"
	EventError = "error"
)

// WriteListener receives a record in place of the sink that would have written it.
type WriteListener func(rec *Record, stream io.Writer)

// ErrorListener receives write failures.
type ErrorListener func(err error, stream io.Writer)

type listener[T any] struct {
	id uint64
	fn T
}

type events struct {
	mu     sync.RWMutex
	nextID uint64
	write  []listener[WriteListener]
	errors []listener[ErrorListener]
}

func newEvents() *events {
	return &events{}
}

// OnWrite registers a write listener. While at least one is registered, log calls emit
// records to listeners and write nothing. The returned func removes the listener.
func (l *Logger) OnWrite(fn WriteListener) func() {
	e := l.events
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.write = append(e.write, listener[WriteListener]{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.write = remove(e.write, id)
	}
}

// OnError registers an error listener. The returned func removes it.
func (l *Logger) OnError(fn ErrorListener) func() {
	e := l.events
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	e.errors = append(e.errors, listener[ErrorListener]{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.errors = remove(e.errors, id)
	}
}

// ListenerCount returns the number of listeners registered for event.
func (l *Logger) ListenerCount(event string) int {
	e := l.events
	e.mu.RLock()
	defer e.mu.RUnlock()

	switch event {
	case EventWrite:
		return len(e.write)
	case EventError:
		return len(e.errors)
	}
	return 0
}

func (e *events) writeListeners() []WriteListener {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]WriteListener, len(e.write))
	for i, w := range e.write {
		out[i] = w.fn
	}
	return out
}

func (e *events) emitError(err error, stream io.Writer) {
	e.mu.RLock()
	fns := make([]ErrorListener, len(e.errors))
	for i, h := range e.errors {
		fns[i] = h.fn
	}
	e.mu.RUnlock()

	for _, fn := range fns {
		fn(err, stream)
	}
}

func remove[T any](list []listener[T], id uint64) []listener[T] {
	for i, h := range list {
		if h.id == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
