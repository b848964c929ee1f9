// FILE: clilogger/src/logger/registry.go
package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"clilogger/src/internal/core"
	"clilogger/src/stream"
)

type sink struct {
	name  string
	kind  string
	level Level
	// json is the per-stream override; nil follows the logger's JSON option
	json   *bool
	writer io.Writer
	// owned sinks are closed by Close
	owned bool
}

// useJSON reports whether s is serialized as JSON by l. Inherited sinks without an override
// follow the child's setting.
func (l *Logger) useJSON(s *sink) bool {
	if s.json != nil {
		return *s.json
	}
	return l.cfg.JSON
}

func (l *Logger) sinkInfo(s *sink) Sink {
	return Sink{Name: s.name, Type: s.kind, Level: s.level, JSON: l.useJSON(s), Stream: s.writer}
}

// streamConfigs normalizes Config.Stream and Config.Streams into a list.
func streamConfigs(cfg Config) ([]*StreamConfig, error) {
	var configs []*StreamConfig
	if cfg.Stream != nil {
		configs = append(configs, &StreamConfig{Stream: cfg.Stream})
	}

	switch v := cfg.Streams.(type) {
	case nil:
	case StreamConfig:
		configs = append(configs, &v)
	case *StreamConfig:
		if v == nil {
			return nil, fmt.Errorf("%w: nil stream config", ErrInvalidStreamsConfiguration)
		}
		c := *v
		configs = append(configs, &c)
	case []StreamConfig:
		for i := range v {
			c := v[i]
			configs = append(configs, &c)
		}
	case []*StreamConfig:
		for i, sc := range v {
			if sc == nil {
				return nil, fmt.Errorf("%w: nil stream config at index %d", ErrInvalidStreamsConfiguration, i)
			}
			c := *sc
			configs = append(configs, &c)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidStreamsConfiguration, cfg.Streams)
	}
	return configs, nil
}

func (l *Logger) newSink(sc *StreamConfig) (*sink, error) {
	s := &sink{
		name:  sc.Name,
		level: l.level,
	}
	if sc.JSON != nil {
		override := *sc.JSON
		s.json = &override
	}

	if sc.Level != nil {
		level, err := l.levels.Resolve(sc.Level)
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", sc.Name, err)
		}
		s.level = level
	}

	switch sc.Type {
	case "", core.TypeStream, core.TypeFile, core.TypeRaw:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStreamType, sc.Type)
	}

	switch target := sc.Stream.(type) {
	case nil:
		if sc.Path == "" {
			return nil, fmt.Errorf("%w: stream %q has neither a writer nor a path", ErrInvalidStream, sc.Name)
		}
		file, err := stream.NewFile(sc.Path, stream.FileOptions{
			Flags:    sc.Flags,
			Mode:     sc.Mode,
			Encoding: sc.Encoding,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
		}
		s.writer = file
		s.owned = true
		s.kind = core.TypeFile
		if s.name == "" {
			s.name = sc.Path
		}
	case string:
		switch target {
		case "stdout":
			s.writer = os.Stdout
		case "stderr":
			s.writer = os.Stderr
		default:
			return nil, fmt.Errorf("%w: unknown named stream %q", ErrInvalidStream, target)
		}
		s.kind = core.TypeStream
		if s.name == "" {
			s.name = target
		}
	case io.Writer:
		if isNilWriter(target) {
			return nil, fmt.Errorf("%w: stream %q is a nil %T", ErrInvalidStream, sc.Name, target)
		}
		s.writer = target
		s.kind = core.TypeStream
		if _, ok := target.(RecordWriter); ok {
			s.kind = core.TypeRaw
		}
	default:
		return nil, fmt.Errorf("%w: %T is not an io.Writer", ErrInvalidStream, sc.Stream)
	}

	if sc.Type != "" {
		s.kind = sc.Type
	}
	return s, nil
}

func (l *Logger) consoleSink() *sink {
	console := stream.NewConsole(l.levels, stream.ConsoleOptions{
		Writers:    l.cfg.Writers,
		Prefix:     l.cfg.Prefix,
		PrefixFunc: l.cfg.PrefixFunc,
		Color:      l.cfg.Color,
	})
	return &sink{
		name:   "console",
		kind:   core.TypeRaw,
		level:  l.level,
		writer: console,
	}
}

// Sinks returns a snapshot of the registered sinks in registration order.
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Sink, len(l.sinks))
	for i, s := range l.sinks {
		out[i] = l.sinkInfo(s)
	}
	return out
}

// Level returns the most verbose threshold across all sinks. For the bitwise table this is
// the lowest flag set in any threshold, or 0 when a sink has threshold 0.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.sinks) == 0 {
		return l.level
	}

	var lowest Level
	for i, s := range l.sinks {
		candidate := s.level
		if l.levels.IsBitwise() {
			if candidate == 0 {
				return 0
			}
			candidate &= -candidate
		}
		if i == 0 || candidate < lowest {
			lowest = candidate
		}
	}
	return lowest
}

// SetLevel sets the threshold of every sink and the default for sinks added later.
// Bitwise loggers only accept numeric tokens.
func (l *Logger) SetLevel(token any) error {
	level, err := l.resolveToken(token)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	for _, s := range l.sinks {
		s.level = level
	}
	return nil
}

// LevelFor returns the threshold of the sink selected by index or name.
func (l *Logger) LevelFor(target any) (Level, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, err := l.findSink(target)
	if err != nil {
		return 0, err
	}
	return s.level, nil
}

// SetLevelFor sets the threshold of the sink selected by index or name.
func (l *Logger) SetLevelFor(target, token any) error {
	level, err := l.resolveToken(token)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.findSink(target)
	if err != nil {
		return err
	}
	s.level = level
	return nil
}

func (l *Logger) findSink(target any) (*sink, error) {
	switch t := target.(type) {
	case string:
		for _, s := range l.sinks {
			if s.name == t {
				return s, nil
			}
		}
	default:
		if n, ok := core.ToLevel(target); ok {
			i := int(n)
			if i >= 0 && i < len(l.sinks) {
				return l.sinks[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrStreamNotFound, target)
}

// isNilWriter catches typed nil pointers, maps, funcs and the like stored in an io.Writer.
func isNilWriter(w io.Writer) bool {
	rv := reflect.ValueOf(w)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
