// FILE: clilogger/src/logger/child.go
package logger

import "maps"

// Child creates a logger that inherits this logger's configuration, fields and sinks.
//
// Non-zero values in extra override the parent's. Boolean options can be switched on but
// not off. Fields and serializers are merged with extra taking precedence, and the streams
// in extra are added after the inherited sinks. Inherited sinks share the parent's writers
// but have their own thresholds: setting a level on the child never changes the parent.
// The child uses the parent's level table unless extra.Levels selects another one, in which
// case inherited thresholds are reset to the child's default level.
func (l *Logger) Child(extra Config) (*Logger, error) {
	l.mu.RLock()
	parentLevel := l.level
	callers := l.callers
	inherited := make([]*sink, len(l.sinks))
	for i, s := range l.sinks {
		c := *s
		c.owned = false
		inherited[i] = &c
	}
	l.mu.RUnlock()

	cfg := l.cfg
	cfg.Stream, cfg.Streams = extra.Stream, extra.Streams

	if extra.Name != "" {
		cfg.Name = extra.Name
	}
	cfg.JSON = cfg.JSON || extra.JSON
	cfg.Src = cfg.Src || extra.Src
	cfg.Stack = cfg.Stack || extra.Stack
	cfg.Console = cfg.Console || extra.Console
	cfg.Color = cfg.Color || extra.Color
	cfg.Normalize = cfg.Normalize || extra.Normalize
	cfg.Capitalize = cfg.Capitalize || extra.Capitalize

	cfg.Writers = extra.Writers.Merge(cfg.Writers)
	if extra.Prefix != "" {
		cfg.Prefix = extra.Prefix
	}
	if extra.PrefixFunc != nil {
		cfg.PrefixFunc = extra.PrefixFunc
	}
	if extra.Template != "" {
		cfg.Template = extra.Template
	}
	if extra.Pedantic != "" {
		cfg.Pedantic = extra.Pedantic
	}
	if extra.Formatter != nil {
		cfg.Formatter = extra.Formatter
	}

	cfg.Fields = merge(l.fields, extra.Fields)
	cfg.Serializers = merge(l.serializers, extra.Serializers)

	retarget := false
	cfg.Level = parentLevel
	if !extra.Levels.IsZero() && extra.Levels != l.levels {
		cfg.Levels = extra.Levels
		cfg.Level = nil
		retarget = true
	}
	if extra.Level != nil {
		cfg.Level = extra.Level
		retarget = true
	}

	child, err := build(cfg, buildContext{
		pid:       l.pid,
		hostname:  l.hostname,
		inherited: inherited,
		isChild:   true,
		retarget:  retarget,
	})
	if err != nil {
		return nil, err
	}
	child.callers = callers
	return child, nil
}

func merge[M ~map[string]V, V any](base, over M) M {
	out := maps.Clone(base)
	if out == nil {
		out = make(M, len(over))
	}
	maps.Copy(out, over)
	return out
}
