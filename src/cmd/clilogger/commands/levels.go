// FILE: clilogger/src/cmd/clilogger/commands/levels.go
package commands

import (
	"fmt"
	"io"
	"strconv"

	"clilogger/src/internal/core"

	"github.com/olekukonko/tablewriter"
)

// LevelsCommand prints the ordinal and bitwise level tables side by side.
type LevelsCommand struct {
	out io.Writer
}

func NewLevelsCommand(out io.Writer) *LevelsCommand {
	return &LevelsCommand{out: out}
}

func (c *LevelsCommand) Execute(args []string) error {
	names := append(append([]string{}, core.Names...), "none", "all")

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{
			name,
			levelCell(core.Ordinal, name),
			levelCell(core.Bitwise, name),
		})
	}

	table := tablewriter.NewTable(c.out)
	table.Header([]string{"Name", "Ordinal", "Bitwise"})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build level table: %w", err)
	}
	return table.Render()
}

// levelCell renders a level value, or "-" when the table does not define the name.
func levelCell(levels core.LevelSpec, name string) string {
	level, ok := levels.Lookup(name)
	if !ok {
		return "-"
	}
	return strconv.Itoa(int(level))
}

func (c *LevelsCommand) Description() string {
	return "Show the ordinal and bitwise level tables"
}

func (c *LevelsCommand) Help() string {
	return `Levels Command - Show the level tables

Usage:
  clilogger levels

Ordinal levels compare with >=: a threshold of warn writes warn, error and fatal.
Bitwise levels are flags: a threshold is the OR of the levels to write, e.g.
  clilogger -bitwise -level 48   (error|fatal)
`
}
