// FILE: clilogger/src/cmd/clilogger/main_test.go
package main

import (
	"os"
	"testing"

	"github.com/lixenwraith/log"
)

func TestMain(m *testing.M) {
	diag = log.NewLogger()
	os.Exit(m.Run())
}
