// FILE: clilogger/src/internal/strfmt/sprintf_test.go
package strfmt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintf(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		params   []any
		expected string
	}{
		{"NoParams", "mock %s message", nil, "mock %s message"},
		{"String", "mock %s message", []any{"info"}, "mock info message"},
		{"Integer", "%d items", []any{42}, "42 items"},
		{"IntegerFromFloat", "%i items", []any{4.9}, "4 items"},
		{"IntegerNaN", "%d items", []any{"many"}, "NaN items"},
		{"IntegerBeyondFloatPrecision", "%d", []any{int64(9007199254740993)}, "9007199254740993"},
		{"MaxInt64", "%i", []any{int64(math.MaxInt64)}, "9223372036854775807"},
		{"MaxUint64", "%d", []any{uint64(math.MaxUint64)}, "18446744073709551615"},
		{"MinInt64", "%d", []any{int64(math.MinInt64)}, "-9223372036854775808"},
		{"IntegerString", "%d", []any{" 9007199254740993 "}, "9007199254740993"},
		{"FloatString", "%d", []any{"-2.7"}, "-2"},
		{"LargeFloat", "%d", []any{1e20}, "100000000000000000000"},
		{"InfiniteFloat", "%d", []any{math.Inf(-1)}, "-Infinity"},
		{"Float", "%f ms", []any{1.5}, "1.5 ms"},
		{"JSON", "payload %j", []any{map[string]any{"a": 1}}, `payload {"a":1}`},
		{"Percent", "100%% of %s", []any{"tests"}, "100% of tests"},
		{"MissingParam", "%s and %s", []any{"one"}, "one and %s"},
		{"SurplusParams", "hello", []any{"world", 42}, "hello world 42"},
		{"ErrorParam", "failed: %s", []any{errors.New("boom")}, "failed: boom"},
		{"UnknownVerb", "%x %s", []any{"v"}, "%x v"},
		{"TrailingPercent", "50%", []any{"x"}, "50% x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Sprintf(tc.template, tc.params...))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a 1 true", Join("a", 1, true))
	assert.Equal(t, "", Join())
}
