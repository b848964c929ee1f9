// FILE: clilogger/src/internal/source/stdin.go
package source

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/log"
)

// StdinSource reads lines from standard input, or from any reader given in the options.
type StdinSource struct {
	reader      io.Reader
	detectLevel bool
	bufferSize  int64

	subscribers []chan Line
	done        chan struct{}
	stopOnce    sync.Once
	logger      *log.Logger

	totalLines   atomic.Uint64
	skippedLines atomic.Uint64
	startTime    time.Time
	lastLineTime atomic.Value // time.Time
}

// NewStdinSource creates a line source. Recognized options: "reader" (io.Reader),
// "buffer_size" (int64) and "detect_level" (bool).
func NewStdinSource(options map[string]any, logger *log.Logger) (*StdinSource, error) {
	bufferSize := int64(1000)
	if bufSize, ok := options["buffer_size"].(int64); ok && bufSize > 0 {
		bufferSize = bufSize
	}

	var reader io.Reader = os.Stdin
	if r, ok := options["reader"].(io.Reader); ok && r != nil {
		reader = r
	}

	detect, _ := options["detect_level"].(bool)

	if logger == nil {
		logger = log.NewLogger()
	}

	source := &StdinSource{
		reader:      reader,
		detectLevel: detect,
		bufferSize:  bufferSize,
		subscribers: make([]chan Line, 0),
		done:        make(chan struct{}),
		logger:      logger,
	}
	source.lastLineTime.Store(time.Time{})
	return source, nil
}

// Subscribe must be called before Start.
func (s *StdinSource) Subscribe() <-chan Line {
	ch := make(chan Line, s.bufferSize)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *StdinSource) Start() error {
	s.startTime = time.Now()
	go s.readLoop()
	s.logger.Info("msg", "Stdin source started", "component", "stdin_source")
	return nil
}

// Stop ends delivery. A read blocked on the input is abandoned, not interrupted.
func (s *StdinSource) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.logger.Info("msg", "Stdin source stopped", "component", "stdin_source")
	})
}

func (s *StdinSource) GetStats() SourceStats {
	lastLine, _ := s.lastLineTime.Load().(time.Time)

	return SourceStats{
		Type:         "stdin",
		TotalLines:   s.totalLines.Load(),
		SkippedLines: s.skippedLines.Load(),
		StartTime:    s.startTime,
		LastLineTime: lastLine,
		Details: map[string]any{
			"detect_level": s.detectLevel,
			"buffer_size":  s.bufferSize,
		},
	}
}

func (s *StdinSource) readLoop() {
	defer func() {
		for _, ch := range s.subscribers {
			close(ch)
		}
	}()

	scanner := bufio.NewScanner(s.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			s.skippedLines.Add(1)
			continue
		}

		line := Line{
			Time: time.Now(),
			Text: text,
		}
		if s.detectLevel {
			line.Level = DetectLevel(text)
		}

		if !s.publish(line) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("msg", "Scanner error reading stdin",
			"component", "stdin_source",
			"error", err)
	}
}

// publish blocks until every subscriber took the line; false means the source was stopped.
func (s *StdinSource) publish(line Line) bool {
	s.totalLines.Add(1)
	s.lastLineTime.Store(line.Time)

	for _, ch := range s.subscribers {
		select {
		case ch <- line:
		case <-s.done:
			return false
		}
	}
	return true
}
