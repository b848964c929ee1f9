// FILE: clilogger/src/cmd/clilogger/commands/version.go
package commands

import (
	"fmt"
	"io"

	"clilogger/src/internal/version"
)

// VersionCommand handles version display
type VersionCommand struct {
	out io.Writer
}

func NewVersionCommand(out io.Writer) *VersionCommand {
	return &VersionCommand{out: out}
}

func (c *VersionCommand) Execute(args []string) error {
	if len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose") {
		fmt.Fprintln(c.out, version.Full())
		return nil
	}
	fmt.Fprintln(c.out, version.String())
	return nil
}

func (c *VersionCommand) Description() string {
	return "Show version information"
}

func (c *VersionCommand) Help() string {
	return `Version Command - Show clilogger version information

Usage:
  clilogger version [-v]
  clilogger -version

Options:
  -v, --verbose   Include Go version and platform
`
}
