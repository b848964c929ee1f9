// FILE: clilogger/src/cmd/clilogger/output_test.go
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputHandler(t *testing.T) {
	var buf bytes.Buffer

	loud := &OutputHandler{stderr: &buf}
	loud.Status("loaded %d filters\n", 2)
	assert.Equal(t, "loaded 2 filters\n", buf.String())

	buf.Reset()
	quiet := &OutputHandler{quiet: true, stderr: &buf}
	quiet.Status("hidden\n")
	assert.Empty(t, buf.String())
}
