// FILE: clilogger/src/cmd/clilogger/commands/help.go
package commands

import (
	"fmt"
	"sort"
	"strings"
)

const generalHelpTemplate = `clilogger: structured logging for shell pipelines.

Usage:
  clilogger [options] [message [params...]]
  clilogger <command> [args]

Commands:
%s

Common Options:
  -config <path>       Path to configuration file (default: ~/.config/clilogger.toml)
  -level <level>       Threshold for written records
  -at <level>          Level for lines without a detected level
  -json                Write JSON records
  -output <type>       stdout, stderr, file, tcp, ring
  -quiet               Suppress diagnostics and status output
  -h, --help           Display this help message and exit

For command-specific help:
  clilogger help <command>
  clilogger <command> --help

Configuration Sources (Precedence: CLI > Env > File > Defaults):
  - CLI flags override all other settings
  - CLILOGGER_* environment variables override file settings
  - TOML configuration file
`

// HelpCommand prints general or command-specific help.
type HelpCommand struct {
	router *CommandRouter
}

func NewHelpCommand(router *CommandRouter) *HelpCommand {
	return &HelpCommand{router: router}
}

func (c *HelpCommand) Execute(args []string) error {
	if len(args) > 0 {
		handler, exists := c.router.GetCommand(args[0])
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprint(c.router.out, handler.Help())
		return nil
	}

	fmt.Fprintf(c.router.out, generalHelpTemplate, c.formatCommandList())
	return nil
}

func (c *HelpCommand) formatCommandList() string {
	commands := c.router.GetCommands()

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %-10s %s", name, commands[name].Description()))
	}
	return strings.Join(lines, "\n")
}

func (c *HelpCommand) Description() string {
	return "Display help information"
}

func (c *HelpCommand) Help() string {
	return `Help Command - Display help information

Usage:
  clilogger help [command]

Examples:
  clilogger help
  clilogger help levels
`
}
