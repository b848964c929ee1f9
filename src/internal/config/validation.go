// FILE: clilogger/src/internal/config/validation.go
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"text/template"

	"clilogger/src/internal/core"
	"clilogger/src/stream"
)

// ValidateConfig checks the whole configuration and fills in defaults that depend on
// other settings.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLogConfig()
	}
	if err := validateLogConfig(cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := validateLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if cfg.Input.BufferSize <= 0 {
		cfg.Input.BufferSize = 1000
	}
	for i := range cfg.Input.Filters {
		if err := validateFilter(i, &cfg.Input.Filters[i], LevelSpec(&cfg.Logger)); err != nil {
			return fmt.Errorf("input config: %w", err)
		}
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"stdout": true, "stderr": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	validFormats := map[string]bool{
		"txt": true, "json": true, "": true,
	}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	return nil
}

func validateLogger(cfg *LoggerConfig) error {
	levels := LevelSpec(cfg)

	if _, err := ParseLevel(levels, cfg.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if cfg.RecordLevel == "" {
		cfg.RecordLevel = "info"
	}
	if _, err := ParseLevel(levels, cfg.RecordLevel); err != nil {
		return fmt.Errorf("record_level: %w", err)
	}

	if cfg.Template != "" {
		if _, err := template.New("validate").Funcs(templateFuncs).Parse(cfg.Template); err != nil {
			return fmt.Errorf("template: %w", err)
		}
	}

	for _, field := range cfg.Fields {
		key, _, ok := strings.Cut(field, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("field %q must have the form key=value", field)
		}
	}
	return nil
}

// templateFuncs mirrors the helpers the text formatter provides so that templates using
// them pass validation.
var templateFuncs = template.FuncMap{
	"FmtTime":   func(any) string { return "" },
	"ToUpper":   strings.ToUpper,
	"ToLower":   strings.ToLower,
	"TrimSpace": strings.TrimSpace,
}

func validateOutput(cfg *OutputConfig) error {
	switch cfg.Type {
	case "stdout", "stderr":
	case "file":
		if strings.TrimSpace(cfg.File.Path) == "" {
			return fmt.Errorf("file.path: cannot be empty")
		}
		if _, err := stream.NewFile(cfg.File.Path, stream.FileOptions{
			Flags:    cfg.File.Flags,
			Encoding: cfg.File.Encoding,
		}); err != nil {
			return fmt.Errorf("file: %w", err)
		}
	case "tcp":
		if cfg.TCP.Port < 1 || cfg.TCP.Port > 65535 {
			return fmt.Errorf("tcp.port: must be between 1 and 65535, got %d", cfg.TCP.Port)
		}
		if cfg.TCP.Host == "" {
			cfg.TCP.Host = "0.0.0.0"
		}
		if cfg.TCP.Host != "0.0.0.0" {
			if net.ParseIP(cfg.TCP.Host) == nil {
				return fmt.Errorf("tcp.host: invalid IP address: %s", cfg.TCP.Host)
			}
		}
		if cfg.TCP.BufferSize <= 0 {
			cfg.TCP.BufferSize = 1000
		}
	case "ring":
		if cfg.Ring.Limit <= 0 {
			cfg.Ring.Limit = int64(core.DefaultRingLimit)
		}
	default:
		return fmt.Errorf("invalid output type: %s (valid: stdout, stderr, file, tcp, ring)", cfg.Type)
	}

	if cfg.Rate.PerSecond < 0 {
		return fmt.Errorf("rate.per_second cannot be negative: %v", cfg.Rate.PerSecond)
	}
	if cfg.Rate.PerSecond > 0 && cfg.Rate.Burst <= 0 {
		cfg.Rate.Burst = 1
	}
	return nil
}

// LevelSpec returns the level table selected by the logger configuration.
func LevelSpec(cfg *LoggerConfig) core.LevelSpec {
	if cfg.Bitwise {
		return core.Bitwise
	}
	return core.Ordinal
}

// ParseLevel resolves a level given as a name or as a decimal number.
func ParseLevel(levels core.LevelSpec, token string) (core.Level, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(token)); err == nil {
		return levels.Resolve(n)
	}
	return levels.Resolve(token)
}
