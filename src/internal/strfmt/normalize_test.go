// FILE: clilogger/src/internal/strfmt/normalize_test.go
package strfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		opts     Options
		input    string
		expected string
	}{
		{"Disabled", Options{}, "mock write info", "mock write info"},
		{"Normalize", Options{Normalize: true}, "mock write info", "Mock write info."},
		{"NormalizeBeatsPedantic", Options{Normalize: true, Pedantic: "?"}, "mock write info", "Mock write info."},
		{"Capitalize", Options{Capitalize: true}, "mock write info", "Mock write info"},
		{"Pedantic", Options{Pedantic: "."}, "mock write info", "mock write info."},
		{"CustomPeriod", Options{Pedantic: "!@!"}, "mock write info", "mock write info!@!"},
		{"AlreadyPunctuated", Options{Normalize: true}, "done.", "Done."},
		{
			name:     "Formatter",
			opts:     Options{Formatter: func(s string) string { return strings.Replace(s, "write", "WRITE", 1) }},
			input:    "mock write info",
			expected: "mock WRITE info",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.opts.Apply(tc.input))
		})
	}
}

func TestOptions_Enabled(t *testing.T) {
	assert.False(t, Options{}.Enabled())
	assert.True(t, Options{Pedantic: "."}.Enabled())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Élan", Capitalize("élan"))
	assert.Equal(t, "123", Capitalize("123"))
}
