// FILE: clilogger/src/cmd/clilogger/commands/router.go
package commands

import (
	"fmt"
	"io"
)

// Handler defines the interface required for all subcommands.
type Handler interface {
	Execute(args []string) error
	Description() string
	Help() string
}

// CommandRouter routes CLI arguments to subcommand handlers.
type CommandRouter struct {
	commands map[string]Handler
	out      io.Writer
}

// NewCommandRouter creates the router with all available commands writing to out.
func NewCommandRouter(out io.Writer) *CommandRouter {
	router := &CommandRouter{
		commands: make(map[string]Handler),
		out:      out,
	}

	router.commands["levels"] = NewLevelsCommand(out)
	router.commands["version"] = NewVersionCommand(out)
	router.commands["help"] = NewHelpCommand(router)

	return router
}

// Route executes a subcommand named by args[1]. It reports false when args[1] is a flag
// or not a command, in which case the arguments belong to the main program.
func (r *CommandRouter) Route(args []string) (bool, error) {
	if len(args) < 2 {
		return false, nil
	}

	cmdName := args[1]

	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			if handler, exists := r.commands[cmdName]; exists && cmdName != "help" {
				fmt.Fprint(r.out, handler.Help())
				return true, nil
			}
			return true, r.commands["help"].Execute(nil)
		}
	}

	handler, exists := r.commands[cmdName]
	if !exists {
		// Positional words are the message to log
		return false, nil
	}

	return true, handler.Execute(args[2:])
}

// GetCommand returns a specific command handler by its name.
func (r *CommandRouter) GetCommand(name string) (Handler, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetCommands returns a map of all registered commands.
func (r *CommandRouter) GetCommands() map[string]Handler {
	return r.commands
}
