// FILE: clilogger/src/stream/tcp.go
package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
	"github.com/lixenwraith/log/compat"
	"github.com/panjf2000/gnet/v2"
)

// ErrTCPNotRunning is returned by Write before Start or after Stop.
var ErrTCPNotRunning = errors.New("tcp stream not running")

// TCPOptions configures a TCP broadcast stream.
type TCPOptions struct {
	Host string
	Port int64
	// BufferSize bounds the queue between Write and the broadcast loop
	BufferSize int64
}

// TCP broadcasts every write to all connected clients.
type TCP struct {
	opts   TCPOptions
	logger *log.Logger

	server   *tcpServer
	engine   *gnet.Engine
	engineMu sync.Mutex

	input   chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	startTime time.Time

	activeConns    atomic.Int64
	totalWritten   atomic.Uint64
	totalDropped   atomic.Uint64
	writeErrors    atomic.Uint64
	consecutiveErr map[gnet.Conn]int
	errorMu        sync.Mutex
}

// NewTCP creates a TCP broadcast stream. Diagnostics go to logger.
func NewTCP(opts TCPOptions, logger *log.Logger) (*TCP, error) {
	if opts.Port <= 0 || opts.Port > 65535 {
		return nil, fmt.Errorf("invalid tcp port: %d", opts.Port)
	}
	if opts.Host == "" {
		opts.Host = "0.0.0.0"
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 1000
	}
	if logger == nil {
		logger = log.NewLogger()
	}

	return &TCP{
		opts:           opts,
		logger:         logger,
		input:          make(chan []byte, opts.BufferSize),
		done:           make(chan struct{}),
		consecutiveErr: make(map[gnet.Conn]int),
	}, nil
}

// Start launches the gnet server and the broadcast loop.
func (t *TCP) Start(ctx context.Context) error {
	t.server = &tcpServer{
		stream:  t,
		clients: make(map[gnet.Conn]struct{}),
	}
	t.startTime = time.Now()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.broadcastLoop(ctx)
	}()

	addr := fmt.Sprintf("tcp://%s:%d", t.opts.Host, t.opts.Port)

	opts := []gnet.Option{
		gnet.WithLogger(compat.NewGnetAdapter(t.logger)),
		gnet.WithMulticore(true),
		gnet.WithReusePort(true),
	}

	errChan := make(chan error, 1)
	go func() {
		t.logger.Info("msg", "Starting TCP stream",
			"component", "tcp_stream",
			"port", t.opts.Port)

		err := gnet.Run(t.server, addr, opts...)
		if err != nil {
			t.logger.Error("msg", "TCP stream server failed",
				"component", "tcp_stream",
				"port", t.opts.Port,
				"error", err)
		}
		errChan <- err
	}()

	go func() {
		select {
		case <-ctx.Done():
			t.stopEngine()
		case <-t.done:
		}
	}()

	select {
	case err := <-errChan:
		close(t.done)
		t.wg.Wait()
		if err == nil {
			err = fmt.Errorf("tcp server on port %d exited", t.opts.Port)
		}
		return err
	case <-time.After(100 * time.Millisecond):
		t.running.Store(true)
		t.logger.Info("msg", "TCP stream started", "component", "tcp_stream", "port", t.opts.Port)
		return nil
	}
}

// Stop shuts down the server and waits for the broadcast loop.
func (t *TCP) Stop() {
	if !t.running.CompareAndSwap(true, false) {
		return
	}
	t.logger.Info("msg", "Stopping TCP stream", "component", "tcp_stream")

	close(t.done)
	t.stopEngine()
	t.wg.Wait()

	t.logger.Info("msg", "TCP stream stopped", "component", "tcp_stream")
}

// Close stops the stream. It makes TCP usable as an owned io.WriteCloser.
func (t *TCP) Close() error {
	t.Stop()
	return nil
}

func (t *TCP) stopEngine() {
	t.engineMu.Lock()
	engine := t.engine
	t.engine = nil
	t.engineMu.Unlock()

	if engine != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		(*engine).Stop(ctx)
	}
}

// Write queues a copy of p for broadcast. A full queue drops the write.
func (t *TCP) Write(p []byte) (int, error) {
	if !t.running.Load() {
		return 0, ErrTCPNotRunning
	}

	data := make([]byte, len(p))
	copy(data, p)

	select {
	case t.input <- data:
		return len(p), nil
	default:
		t.totalDropped.Add(1)
		return 0, fmt.Errorf("tcp stream buffer full, write dropped")
	}
}

// ActiveConnections returns the number of connected clients.
func (t *TCP) ActiveConnections() int64 {
	return t.activeConns.Load()
}

// GetStats returns the stream's statistics.
func (t *TCP) GetStats() map[string]any {
	return map[string]any{
		"type":               "tcp",
		"port":               t.opts.Port,
		"buffer_size":        t.opts.BufferSize,
		"active_connections": t.activeConns.Load(),
		"total_written":      t.totalWritten.Load(),
		"total_dropped":      t.totalDropped.Load(),
		"write_errors":       t.writeErrors.Load(),
		"start_time":         t.startTime,
	}
}

func (t *TCP) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.done:
			return
		case data := <-t.input:
			t.totalWritten.Add(1)
			t.broadcast(data)
		}
	}
}

func (t *TCP) broadcast(data []byte) {
	t.server.mu.RLock()
	defer t.server.mu.RUnlock()

	for conn := range t.server.clients {
		conn.AsyncWrite(data, func(c gnet.Conn, err error) error {
			if err != nil {
				t.writeErrors.Add(1)
				t.handleWriteError(c, err)
			} else {
				t.errorMu.Lock()
				delete(t.consecutiveErr, c)
				t.errorMu.Unlock()
			}
			return nil
		})
	}
}

// handleWriteError closes a connection after three consecutive failed writes.
func (t *TCP) handleWriteError(c gnet.Conn, err error) {
	t.errorMu.Lock()
	defer t.errorMu.Unlock()

	t.consecutiveErr[c]++
	count := t.consecutiveErr[c]

	t.logger.Debug("msg", "AsyncWrite error",
		"component", "tcp_stream",
		"remote_addr", c.RemoteAddr().String(),
		"error", err,
		"consecutive_errors", count)

	if count >= 3 {
		t.logger.Warn("msg", "Closing connection due to repeated write errors",
			"component", "tcp_stream",
			"remote_addr", c.RemoteAddr().String(),
			"error_count", count)
		delete(t.consecutiveErr, c)
		c.Close()
	}
}

// tcpServer implements gnet.EventHandler for the broadcast stream.
type tcpServer struct {
	gnet.BuiltinEventEngine
	stream  *TCP
	clients map[gnet.Conn]struct{}
	mu      sync.RWMutex
}

func (s *tcpServer) OnBoot(eng gnet.Engine) gnet.Action {
	s.stream.engineMu.Lock()
	s.stream.engine = &eng
	s.stream.engineMu.Unlock()

	s.stream.logger.Debug("msg", "TCP server booted",
		"component", "tcp_stream",
		"port", s.stream.opts.Port)
	return gnet.None
}

func (s *tcpServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	count := s.stream.activeConns.Add(1)
	s.stream.logger.Debug("msg", "TCP connection opened",
		"component", "tcp_stream",
		"remote_addr", c.RemoteAddr().String(),
		"active_connections", count)
	return nil, gnet.None
}

func (s *tcpServer) OnClose(c gnet.Conn, err error) gnet.Action {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	s.stream.errorMu.Lock()
	delete(s.stream.consecutiveErr, c)
	s.stream.errorMu.Unlock()

	count := s.stream.activeConns.Add(-1)
	s.stream.logger.Debug("msg", "TCP connection closed",
		"component", "tcp_stream",
		"active_connections", count,
		"error", err)
	return gnet.None
}

// OnTraffic discards client input; the stream is write-only.
func (s *tcpServer) OnTraffic(c gnet.Conn) gnet.Action {
	c.Discard(-1)
	return gnet.None
}
