// FILE: clilogger/src/cmd/clilogger/bootstrap.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"clilogger/src/internal/config"
	"clilogger/src/internal/core"
	"clilogger/src/internal/filter"
	"clilogger/src/internal/format"
	"clilogger/src/internal/source"
	"clilogger/src/internal/version"
	"clilogger/src/logger"
	"clilogger/src/serializers"
	"clilogger/src/stream"

	"github.com/lixenwraith/log"
)

// app ties the configured logger to its output.
type app struct {
	log         *logger.Logger
	levels      core.LevelSpec
	recordLevel core.Level
	filters     *filter.Chain

	// Ring dump format
	json     bool
	template string

	stdout   io.Writer
	ring     *stream.RingBuffer
	tcp      *stream.TCP
	file     *stream.File
	throttle *stream.Throttle

	linesLogged   atomic.Uint64
	linesFiltered atomic.Uint64
	linesDropped  atomic.Uint64
}

// bootstrap builds the logger and its output from cfg. Records for the stdout output
// and the ring dump go to stdout.
func bootstrap(ctx context.Context, cfg *config.Config, stdout io.Writer) (*app, error) {
	levels := config.LevelSpec(&cfg.Logger)
	threshold, err := config.ParseLevel(levels, cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logger.level: %w", err)
	}
	recordLevel, err := config.ParseLevel(levels, cfg.Logger.RecordLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid logger.record_level: %w", err)
	}

	a := &app{
		levels:      levels,
		recordLevel: recordLevel,
		json:        cfg.Logger.JSON,
		template:    cfg.Logger.Template,
		stdout:      stdout,
	}

	if a.filters, err = filter.NewChain(cfg.Input.Filters, levels, diag); err != nil {
		return nil, fmt.Errorf("invalid input filter: %w", err)
	}

	target, err := a.openOutput(ctx, &cfg.Output)
	if err != nil {
		return nil, err
	}

	if cfg.Output.Rate.PerSecond > 0 && a.ring == nil {
		a.throttle = stream.NewThrottle(target, cfg.Output.Rate.PerSecond, int(cfg.Output.Rate.Burst))
		target = a.throttle
	}

	l, err := logger.New(logger.Config{
		Name:        cfg.Logger.Name,
		JSON:        cfg.Logger.JSON,
		Src:         cfg.Logger.Src,
		Levels:      levels,
		Level:       threshold,
		Template:    cfg.Logger.Template,
		Normalize:   cfg.Logger.Normalize,
		Serializers: serializers.Standard(),
		Fields:      parseFields(cfg.Logger.Fields),
		Streams:     logger.StreamConfig{Stream: target, Name: cfg.Output.Type},
	})
	if err != nil {
		a.closeOutput()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = l

	l.OnError(func(err error, _ io.Writer) {
		if errors.Is(err, stream.ErrRateLimited) {
			a.linesDropped.Add(1)
			diag.Debug("msg", "Record dropped by rate limit", "component", "clilogger")
			return
		}
		diag.Warn("msg", "Record write failed",
			"component", "clilogger",
			"error", err)
	})

	diag.Info("msg", "Logger ready",
		"component", "clilogger",
		"version", version.Short(),
		"name", l.Name(),
		"output", cfg.Output.Type,
		"bitwise", levels.IsBitwise(),
		"level", levels.Name(threshold))

	return a, nil
}

func (a *app) openOutput(ctx context.Context, cfg *config.OutputConfig) (io.Writer, error) {
	switch cfg.Type {
	case "", "stdout":
		return a.stdout, nil

	case "stderr":
		return os.Stderr, nil

	case "file":
		f, err := stream.NewFile(cfg.File.Path, stream.FileOptions{
			Flags:    cfg.File.Flags,
			Encoding: cfg.File.Encoding,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create file output: %w", err)
		}
		a.file = f
		return f, nil

	case "tcp":
		t, err := stream.NewTCP(stream.TCPOptions{
			Host:       cfg.TCP.Host,
			Port:       cfg.TCP.Port,
			BufferSize: cfg.TCP.BufferSize,
		}, diag)
		if err != nil {
			return nil, fmt.Errorf("failed to create tcp output: %w", err)
		}
		if err := t.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to start tcp output: %w", err)
		}
		a.tcp = t
		return t, nil

	case "ring":
		a.ring = stream.NewRingBuffer(int(cfg.Ring.Limit))
		return a.ring, nil

	default:
		return nil, fmt.Errorf("unknown output type: %s", cfg.Type)
	}
}

func (a *app) closeOutput() error {
	var errs []error
	if a.file != nil {
		errs = append(errs, a.file.Close())
	}
	if a.tcp != nil {
		errs = append(errs, a.tcp.Close())
	}
	return errors.Join(errs...)
}

// logLine logs one input line at its detected level, or at the record level, when it
// passes the filters at that level.
func (a *app) logLine(line source.Line) {
	level := a.recordLevel
	if line.Level != "" {
		if detected, ok := a.levels.Lookup(line.Level); ok {
			level = detected
		}
	}

	if !a.filters.Apply(line, level) {
		a.linesFiltered.Add(1)
		return
	}
	a.log.Log(level, "%s", line.Text)
	a.linesLogged.Add(1)
}

// logMessage logs a template and its parameters once, at the record level.
func (a *app) logMessage(args []string) {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	a.log.Log(a.recordLevel, values...)
	a.linesLogged.Add(1)
}

// Close flushes the ring to stdout, oldest first, and releases the output.
func (a *app) Close() error {
	errs := []error{a.log.Close()}
	if a.ring != nil {
		errs = append(errs, a.dumpRing())
	}
	errs = append(errs, a.closeOutput())
	return errors.Join(errs...)
}

func (a *app) dumpRing() error {
	name := "raw"
	options := map[string]any{}
	switch {
	case a.json:
		name = "json"
	case a.template != "":
		name = "text"
		options["template"] = a.template
	}
	f, err := format.New(name, options)
	if err != nil {
		return err
	}

	entries := a.ring.Records()
	for i := len(entries) - 1; i >= 0; i-- {
		var line []byte
		switch entry := entries[i].(type) {
		case *core.Record:
			if line, err = f.Format(entry); err != nil {
				return fmt.Errorf("failed to format buffered record: %w", err)
			}
		case string:
			line = []byte(entry + "\n")
		}
		if _, err := a.stdout.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// GetStats returns line counters and the statistics of the active output.
func (a *app) GetStats() map[string]any {
	stats := map[string]any{
		"lines_logged":   a.linesLogged.Load(),
		"lines_filtered": a.linesFiltered.Load(),
		"lines_dropped":  a.linesDropped.Load(),
	}
	if a.filters.Len() > 0 {
		stats["filter"] = a.filters.GetStats()
	}
	if a.file != nil {
		stats["file"] = a.file.GetStats()
	}
	if a.tcp != nil {
		stats["tcp"] = a.tcp.GetStats()
	}
	if a.throttle != nil {
		stats["rate"] = a.throttle.GetStats()
	}
	if a.ring != nil {
		stats["ring"] = map[string]any{"buffered": a.ring.Len(), "limit": a.ring.Limit()}
	}
	return stats
}

// consume logs lines from ch until it closes or ctx is cancelled.
func consume(ctx context.Context, a *app, ch <-chan source.Line) {
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-ch:
			if !ok {
				return
			}
			a.logLine(line)
		}
	}
}

// parseFields turns "key=value" pairs into record fields. Validation already rejected
// malformed entries.
func parseFields(pairs []string) logger.Fields {
	if len(pairs) == 0 {
		return nil
	}
	fields := make(logger.Fields, len(pairs))
	for _, pair := range pairs {
		if key, value, ok := strings.Cut(pair, "="); ok {
			fields[strings.TrimSpace(key)] = value
		}
	}
	return fields
}

// initializeLogger sets up diagnostics for the tool itself.
func initializeLogger(cfg *config.Config) error {
	diag = log.NewLogger()

	var configArgs []string

	if cfg.Quiet {
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=false",
			"level=255")

		return diag.InitWithDefaults(configArgs...)
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_stdout=false")

	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stdout")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_stdout=true",
			"stdout_target=stderr")

	default:
		return fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if cfg.Logging.Format != "" {
		configArgs = append(configArgs, fmt.Sprintf("format=%s", cfg.Logging.Format))
	}

	return diag.InitWithDefaults(configArgs...)
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
