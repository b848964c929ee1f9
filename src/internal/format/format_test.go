// FILE: clilogger/src/internal/format/format_test.go
package format

import (
	"testing"
	"time"

	"clilogger/src/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *core.Record {
	return &core.Record{
		Time:      time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Pid:       4242,
		Hostname:  "test-host",
		Name:      "test-app",
		Level:     core.LevelInfo,
		LevelName: "info",
		Template:  "this is a %s",
		Params:    []any{"test"},
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name        string
		formatName  string
		expected    string
		expectError bool
	}{
		{
			name:       "JSONFormatter",
			formatName: "json",
			expected:   "json",
		},
		{
			name:       "TextFormatter",
			formatName: "text",
			expected:   "text",
		},
		{
			name:       "RawFormatter",
			formatName: "raw",
			expected:   "raw",
		},
		{
			name:       "DefaultToRaw",
			formatName: "",
			expected:   "raw",
		},
		{
			name:        "UnknownFormatter",
			formatName:  "xml",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatter, err := New(tc.formatName, nil)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, formatter)
			} else {
				require.NoError(t, err)
				require.NotNil(t, formatter)
				assert.Equal(t, tc.expected, formatter.Name())
			}
		})
	}
}

func TestRawFormatter_Format(t *testing.T) {
	formatter, err := NewRawFormatter(nil)
	require.NoError(t, err)

	output, err := formatter.Format(newTestRecord())
	require.NoError(t, err)

	assert.Equal(t, "this is a test\n", string(output))
}
