// FILE: clilogger/src/logger/callsite.go
package logger

import (
	"fmt"
	"runtime"
	"strings"
)

// CallSiteCapturer finds the call site of a log call.
type CallSiteCapturer interface {
	Capture(stack bool) *CallSite
}

// packagePrefix is the function name prefix of this package, e.g. "clilogger/src/logger.".
var packagePrefix string

func init() {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	packagePrefix = name[:slash+1+dot+1]
}

// runtimeCapturer reports the first frame outside this package.
type runtimeCapturer struct{}

func (runtimeCapturer) Capture(stack bool) *CallSite {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var site *CallSite
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, packagePrefix) {
			if site == nil {
				site = &CallSite{File: frame.File, Line: frame.Line, Func: frame.Function}
				if !stack {
					return site
				}
			}
			site.Stack = append(site.Stack, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return site
}
