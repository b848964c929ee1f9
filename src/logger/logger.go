// FILE: clilogger/src/logger/logger.go
package logger

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"clilogger/src/internal/core"
	"clilogger/src/internal/format"
	"clilogger/src/internal/strfmt"
)

// Logger formats records and dispatches them to its sinks. It is safe for concurrent use.
type Logger struct {
	cfg    Config
	levels LevelSpec

	mu    sync.RWMutex
	level Level
	sinks []*sink

	fields      Fields
	serializers map[string]Serializer
	message     strfmt.Options
	callers     CallSiteCapturer

	pid      int
	hostname string

	jsonFormatter format.Formatter
	textFormatter format.Formatter
	rawFormatter  format.Formatter

	events *events
}

// New creates a Logger. Configuration errors fail construction; I/O errors on the
// sinks are reported later through the error event.
func New(cfg Config) (*Logger, error) {
	hostname, _ := os.Hostname()
	return build(cfg, buildContext{
		pid:      os.Getpid(),
		hostname: hostname,
	})
}

// buildContext carries what a child takes over from its parent.
type buildContext struct {
	pid       int
	hostname  string
	inherited []*sink
	isChild   bool
	// retarget applies the resolved default level to inherited sinks
	retarget bool
}

func build(cfg Config, bc buildContext) (*Logger, error) {
	if cfg.Name == "" && !bc.isChild {
		cfg.Name = filepath.Base(os.Args[0])
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLoggerName, cfg.Name)
	}
	if cfg.Levels.IsZero() {
		cfg.Levels = Ordinal
	}
	if cfg.Stack {
		cfg.Src = true
	}

	l := &Logger{
		cfg:         cfg,
		levels:      cfg.Levels,
		level:       cfg.Levels.Info,
		fields:      maps.Clone(cfg.Fields),
		serializers: maps.Clone(cfg.Serializers),
		message: strfmt.Options{
			Normalize:  cfg.Normalize,
			Capitalize: cfg.Capitalize,
			Pedantic:   cfg.Pedantic,
			Formatter:  cfg.Formatter,
		},
		callers:  runtimeCapturer{},
		pid:      bc.pid,
		hostname: bc.hostname,
		events:   newEvents(),
	}
	if l.fields == nil {
		l.fields = Fields{}
	}

	if cfg.Level != nil {
		level, err := l.levels.Resolve(cfg.Level)
		if err != nil {
			return nil, err
		}
		l.level = level
	}

	if err := l.initFormatters(); err != nil {
		return nil, err
	}

	if cfg.Console {
		l.sinks = []*sink{l.consoleSink()}
		return l, nil
	}

	l.sinks = bc.inherited
	if bc.retarget {
		for _, s := range l.sinks {
			s.level = l.level
		}
	}
	configs, err := streamConfigs(cfg)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 && len(l.sinks) == 0 {
		configs = []*StreamConfig{{Stream: os.Stdout}}
	}
	for _, sc := range configs {
		s, err := l.newSink(sc)
		if err != nil {
			l.closeOwned(l.sinks[len(bc.inherited):])
			return nil, err
		}
		l.sinks = append(l.sinks, s)
	}

	return l, nil
}

func (l *Logger) initFormatters() error {
	var err error
	if l.jsonFormatter, err = format.New("json", nil); err != nil {
		return err
	}
	if l.rawFormatter, err = format.New("raw", nil); err != nil {
		return err
	}
	l.textFormatter = l.rawFormatter
	if l.cfg.Template != "" {
		if l.textFormatter, err = format.New("text", map[string]any{"template": l.cfg.Template}); err != nil {
			return fmt.Errorf("invalid logger template: %w", err)
		}
	}
	return nil
}

// Name returns the logger name.
func (l *Logger) Name() string {
	return l.cfg.Name
}

// Levels returns the logger's level table.
func (l *Logger) Levels() LevelSpec {
	return l.levels
}

// Fields returns a copy of the fields added to every record.
func (l *Logger) Fields() Fields {
	return maps.Clone(l.fields)
}

// SetCallSiteCapturer replaces the call site capture used when Src is enabled.
func (l *Logger) SetCallSiteCapturer(c CallSiteCapturer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callers = c
}

// Close closes the writers this logger opened itself. Sinks inherited by a child are
// left to their owner.
func (l *Logger) Close() error {
	l.mu.RLock()
	sinks := l.sinks
	l.mu.RUnlock()
	return l.closeOwned(sinks)
}

func (l *Logger) closeOwned(sinks []*sink) error {
	var errs []error
	for _, s := range sinks {
		if !s.owned {
			continue
		}
		if c, ok := s.writer.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close sink %q: %w", s.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// resolveToken resolves a level token for SetLevel and SetLevelFor.
func (l *Logger) resolveToken(token any) (Level, error) {
	if l.levels.IsBitwise() {
		if _, ok := core.ToLevel(token); !ok {
			return 0, fmt.Errorf("%w: %v (%T)", ErrInvalidBitwiseLevel, token, token)
		}
	}
	return l.levels.Resolve(token)
}
