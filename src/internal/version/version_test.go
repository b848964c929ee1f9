// FILE: clilogger/src/internal/version/version_test.go
package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "dev"
	assert.Equal(t, "dev (commit: unknown, built: unknown)", String())

	Version = "v1.2.0"
	assert.Equal(t, "v1.2.0 (commit: unknown, built: unknown)", String())
	assert.Equal(t, "v1.2.0", Short())
	assert.Contains(t, Full(), runtime.Version())
}
