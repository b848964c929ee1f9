// FILE: clilogger/src/cmd/clilogger/flags_test.go
package main

import (
	"flag"
	"io"
	"testing"

	"clilogger/src/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		fc, err := ParseFlags([]string{"-level", "warn", "-json", "-output", "ring", "-ring", "4", "-at", "error"}, io.Discard)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"--logger.level=warn",
			"--logger.json=true",
			"--output.type=ring",
			"--output.ring.limit=4",
			"--logger.record_level=error",
		}, fc.ConfigArgs())
		assert.Empty(t, fc.Message)
	})

	t.Run("UnsetFlagsAreNotOverrides", func(t *testing.T) {
		fc, err := ParseFlags(nil, io.Discard)
		require.NoError(t, err)
		assert.Empty(t, fc.ConfigArgs())
	})

	t.Run("PositionalMessage", func(t *testing.T) {
		fc, err := ParseFlags([]string{"-quiet", "hello %s", "world"}, io.Discard)
		require.NoError(t, err)
		assert.True(t, fc.Quiet)
		assert.Equal(t, []string{"hello %s", "world"}, fc.Message)
		assert.Contains(t, fc.ConfigArgs(), "--quiet=true")
	})

	t.Run("ConfigAndVersion", func(t *testing.T) {
		fc, err := ParseFlags([]string{"-config", "/etc/clilogger.toml", "-version"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "/etc/clilogger.toml", fc.ConfigFile)
		assert.True(t, fc.ShowVersion)
		assert.Empty(t, fc.ConfigArgs())
	})

	t.Run("Filters", func(t *testing.T) {
		fc, err := ParseFlags([]string{"-include", "api", "-exclude", "healthz"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, []config.FilterConfig{
			{Type: config.FilterTypeInclude, Patterns: []string{"api"}},
			{Type: config.FilterTypeExclude, Patterns: []string{"healthz"}},
		}, fc.Filters())
		assert.Empty(t, fc.ConfigArgs())
	})

	t.Run("InvalidOutput", func(t *testing.T) {
		_, err := ParseFlags([]string{"-output", "syslog"}, io.Discard)
		assert.ErrorContains(t, err, "invalid output")
	})

	t.Run("Help", func(t *testing.T) {
		_, err := ParseFlags([]string{"-h"}, io.Discard)
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}
