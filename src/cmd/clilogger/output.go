// FILE: clilogger/src/cmd/clilogger/output.go
package main

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// OutputHandler writes the tool's own status messages to stderr, respecting quiet mode.
// Records never go through it.
type OutputHandler struct {
	quiet  bool
	mu     sync.Mutex
	stderr io.Writer
}

// Global output handler instance
var output *OutputHandler

// InitOutputHandler initializes the global output handler.
func InitOutputHandler(quiet bool) {
	output = &OutputHandler{
		quiet:  quiet,
		stderr: os.Stderr,
	}
}

// Status writes to stderr unless quiet.
func (o *OutputHandler) Status(format string, args ...any) {
	if o.quiet {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format, args...)
}

// Status writes through the global handler, or straight to stderr before it exists.
func Status(format string, args ...any) {
	if output != nil {
		output.Status(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
