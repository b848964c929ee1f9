// FILE: clilogger/src/internal/filter/filter.go
package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"clilogger/src/internal/config"
	"clilogger/src/internal/core"
	"clilogger/src/internal/source"
)

// rule is one compiled filter. It matches a line when the text condition and the level
// condition both hold; a condition with nothing configured always holds.
type rule struct {
	exclude  bool
	all      bool
	patterns []*regexp.Regexp
	levels   []core.Level

	matched atomic.Uint64
	dropped atomic.Uint64
}

func compile(cfg config.FilterConfig, levels core.LevelSpec) (*rule, error) {
	r := &rule{
		exclude: cfg.Type == config.FilterTypeExclude,
		all:     cfg.Logic == config.FilterLogicAnd,
	}

	for i, pattern := range cfg.Patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern[%d] '%s': %w", i, pattern, err)
		}
		r.patterns = append(r.patterns, re)
	}

	for i, token := range cfg.Levels {
		level, err := config.ParseLevel(levels, token)
		if err != nil {
			return nil, fmt.Errorf("level[%d]: %w", i, err)
		}
		r.levels = append(r.levels, level)
	}
	return r, nil
}

// keeps reports whether the line survives this rule.
func (r *rule) keeps(line source.Line, level core.Level, levels core.LevelSpec) bool {
	if len(r.patterns) == 0 && len(r.levels) == 0 {
		return true
	}

	hit := r.matchText(line) && r.matchLevel(level, levels)
	if hit {
		r.matched.Add(1)
	}
	if hit == r.exclude {
		r.dropped.Add(1)
		return false
	}
	return true
}

// matchText matches the detected level marker together with the text, as "warn text".
func (r *rule) matchText(line source.Line) bool {
	if len(r.patterns) == 0 {
		return true
	}

	text := line.Text
	if line.Level != "" {
		text = line.Level + " " + text
	}

	for _, re := range r.patterns {
		if re.MatchString(text) != r.all {
			return !r.all
		}
	}
	return r.all
}

// matchLevel compares with equality for ordinal levels; a bitwise entry is a mask, so
// "48" admits error and fatal.
func (r *rule) matchLevel(level core.Level, levels core.LevelSpec) bool {
	if len(r.levels) == 0 {
		return true
	}
	for _, want := range r.levels {
		if levels.IsBitwise() {
			if levels.Enabled(level, want) {
				return true
			}
		} else if level == want {
			return true
		}
	}
	return false
}

func (r *rule) describe(levels core.LevelSpec) map[string]any {
	kind, logic := config.FilterTypeInclude, config.FilterLogicOr
	if r.exclude {
		kind = config.FilterTypeExclude
	}
	if r.all {
		logic = config.FilterLogicAnd
	}

	names := make([]string, len(r.levels))
	for i, level := range r.levels {
		if names[i] = levels.Name(level); names[i] == "" {
			names[i] = strconv.Itoa(int(level))
		}
	}

	return map[string]any{
		"type":          string(kind),
		"logic":         string(logic),
		"pattern_count": len(r.patterns),
		"levels":        strings.Join(names, ","),
		"total_matched": r.matched.Load(),
		"total_dropped": r.dropped.Load(),
	}
}
