// FILE: clilogger/src/cmd/clilogger/status.go
package main

import (
	"context"
	"time"
)

const statusInterval = 30 * time.Second

// statusReporter periodically logs the app's statistics at debug level.
func statusReporter(ctx context.Context, a *app, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reportStatus(a)
		}
	}
}

func reportStatus(a *app) {
	defer func() {
		if r := recover(); r != nil {
			diag.Error("msg", "Panic in status reporter",
				"component", "status_reporter",
				"panic", r)
		}
	}()

	stats := a.GetStats()
	statusFields := []any{
		"msg", "Status report",
		"component", "status_reporter",
		"lines_logged", stats["lines_logged"],
		"lines_dropped", stats["lines_dropped"],
	}

	if tcp, ok := stats["tcp"].(map[string]any); ok {
		statusFields = append(statusFields,
			"tcp_connections", tcp["active_connections"],
			"tcp_dropped", tcp["total_dropped"])
	}
	if file, ok := stats["file"].(map[string]any); ok {
		statusFields = append(statusFields,
			"file_bytes", file["bytes_written"],
			"file_errors", file["write_errors"])
	}
	if ring, ok := stats["ring"].(map[string]any); ok {
		statusFields = append(statusFields, "ring_buffered", ring["buffered"])
	}

	diag.Debug(statusFields...)
}
