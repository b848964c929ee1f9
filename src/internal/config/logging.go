// FILE: clilogger/src/internal/config/logging.go
package config

// LogConfig configures diagnostics of the tool itself, separate from the records it writes.
type LogConfig struct {
	// Output mode: "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Format: "txt" or "json"
	Format string `toml:"format"`
}

// DefaultLogConfig returns the diagnostic defaults.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output: "stderr",
		Level:  "warn",
		Format: "txt",
	}
}
