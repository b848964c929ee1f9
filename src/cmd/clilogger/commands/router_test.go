// FILE: clilogger/src/cmd/clilogger/commands/router_test.go
package commands

import (
	"bytes"
	"testing"

	"clilogger/src/internal/core"
	"clilogger/src/internal/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		handled bool
	}{
		{"NoArgs", []string{"clilogger"}, false},
		{"Flag", []string{"clilogger", "-json"}, false},
		{"Message", []string{"clilogger", "deploy", "finished"}, false},
		{"Version", []string{"clilogger", "version"}, true},
		{"Levels", []string{"clilogger", "levels"}, true},
		{"HelpFlag", []string{"clilogger", "-json", "--help"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			handled, err := NewCommandRouter(&out).Route(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.handled, handled)
			if !tt.handled {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	handled, err := NewCommandRouter(&out).Route([]string{"clilogger", "version"})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, version.String()+"\n", out.String())

	out.Reset()
	require.NoError(t, NewVersionCommand(&out).Execute([]string{"-v"}))
	assert.Equal(t, version.Full()+"\n", out.String())
}

func TestHelpCommand(t *testing.T) {
	t.Run("General", func(t *testing.T) {
		var out bytes.Buffer
		_, err := NewCommandRouter(&out).Route([]string{"clilogger", "help"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "clilogger: structured logging")
		assert.Contains(t, out.String(), "levels")
		assert.Contains(t, out.String(), "Show version information")
	})

	t.Run("CommandHelp", func(t *testing.T) {
		var out bytes.Buffer
		_, err := NewCommandRouter(&out).Route([]string{"clilogger", "levels", "-h"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Levels Command")
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		var out bytes.Buffer
		_, err := NewCommandRouter(&out).Route([]string{"clilogger", "help", "bogus"})
		assert.ErrorContains(t, err, "unknown command: bogus")
	})
}

func TestLevelsCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewLevelsCommand(&out).Execute(nil))

	text := out.String()
	for _, want := range []string{"trace", "fatal", "none", "all", "10", "60", "70", "32", "63", "-"} {
		assert.Contains(t, text, want)
	}

	assert.Equal(t, "-", levelCell(core.Ordinal, "all"))
	assert.Equal(t, "63", levelCell(core.Bitwise, "all"))
	assert.Equal(t, "40", levelCell(core.Ordinal, "warn"))
}
