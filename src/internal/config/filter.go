// FILE: clilogger/src/internal/config/filter.go
package config

import (
	"fmt"
	"regexp"

	"clilogger/src/internal/core"
)

// FilterType selects whether matching lines are kept or dropped.
type FilterType string

const (
	FilterTypeInclude FilterType = "include"
	FilterTypeExclude FilterType = "exclude"
)

// FilterLogic combines the patterns of one filter.
type FilterLogic string

const (
	FilterLogicOr  FilterLogic = "or"
	FilterLogicAnd FilterLogic = "and"
)

// FilterConfig selects input lines before they are logged. A line matches when its text
// matches the patterns (combined by Logic) and its level is one of Levels; an empty list
// does not constrain.
type FilterConfig struct {
	Type     FilterType  `toml:"type"`
	Logic    FilterLogic `toml:"logic"`
	Patterns []string    `toml:"patterns"`

	// Level names or numbers in the logger's level table
	Levels []string `toml:"levels"`
}

func validateFilter(index int, cfg *FilterConfig, levels core.LevelSpec) error {
	switch cfg.Type {
	case FilterTypeInclude, FilterTypeExclude, "":
	default:
		return fmt.Errorf("filter[%d]: invalid type '%s' (must be 'include' or 'exclude')", index, cfg.Type)
	}

	switch cfg.Logic {
	case FilterLogicOr, FilterLogicAnd, "":
	default:
		return fmt.Errorf("filter[%d]: invalid logic '%s' (must be 'or' or 'and')", index, cfg.Logic)
	}

	for i, pattern := range cfg.Patterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("filter[%d] pattern[%d] '%s': invalid regex: %w", index, i, pattern, err)
		}
	}
	for i, token := range cfg.Levels {
		if _, err := ParseLevel(levels, token); err != nil {
			return fmt.Errorf("filter[%d] level[%d]: %w", index, i, err)
		}
	}
	return nil
}
