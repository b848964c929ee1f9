// FILE: clilogger/src/internal/filter/chain.go
package filter

import (
	"fmt"
	"sync/atomic"

	"clilogger/src/internal/config"
	"clilogger/src/internal/core"
	"clilogger/src/internal/source"

	"github.com/lixenwraith/log"
)

// Chain decides which input lines are logged. A line must survive every rule, in order.
// Levels are interpreted in the level table the records are written with.
type Chain struct {
	rules  []*rule
	levels core.LevelSpec
	logger *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	totalPassed    atomic.Uint64
}

// NewChain compiles the filter configurations for the given level table. Type defaults to
// include and Logic to or.
func NewChain(configs []config.FilterConfig, levels core.LevelSpec, logger *log.Logger) (*Chain, error) {
	chain := &Chain{
		rules:  make([]*rule, 0, len(configs)),
		levels: levels,
		logger: logger,
	}

	for i, cfg := range configs {
		r, err := compile(cfg, levels)
		if err != nil {
			return nil, fmt.Errorf("filter[%d]: %w", i, err)
		}
		chain.rules = append(chain.rules, r)
	}

	if len(chain.rules) > 0 {
		logger.Info("msg", "Input filters loaded",
			"component", "filter_chain",
			"filter_count", len(chain.rules),
			"bitwise", levels.IsBitwise())
	}
	return chain, nil
}

// Apply reports whether line, about to be logged at level, passes every rule.
func (c *Chain) Apply(line source.Line, level core.Level) bool {
	c.totalProcessed.Add(1)

	for i, r := range c.rules {
		if !r.keeps(line, level, c.levels) {
			c.logger.Debug("msg", "Line filtered out",
				"component", "filter_chain",
				"filter_index", i,
				"level", level)
			return false
		}
	}

	c.totalPassed.Add(1)
	return true
}

// Len returns the number of rules.
func (c *Chain) Len() int {
	return len(c.rules)
}

// GetStats returns chain counters and one entry per rule.
func (c *Chain) GetStats() map[string]any {
	rules := make([]map[string]any, len(c.rules))
	for i, r := range c.rules {
		rules[i] = r.describe(c.levels)
	}

	return map[string]any{
		"filter_count":    len(c.rules),
		"total_processed": c.totalProcessed.Load(),
		"total_passed":    c.totalPassed.Load(),
		"filters":         rules,
	}
}
