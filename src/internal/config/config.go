// FILE: clilogger/src/internal/config/config.go
package config

// Config is the complete clilogger configuration.
type Config struct {
	// Logger shapes the records written for each input line
	Logger LoggerConfig `toml:"logger"`

	// Output selects where records go
	Output OutputConfig `toml:"output"`

	// Input controls how lines are read
	Input InputConfig `toml:"input"`

	// Logging configures the tool's own diagnostics
	Logging *LogConfig `toml:"logging"`

	// Quiet suppresses diagnostics and status output
	Quiet bool `toml:"quiet"`
}

type LoggerConfig struct {
	// Logger name; empty uses the program name
	Name string `toml:"name"`

	// Threshold: a level name, or a number for bitwise levels
	Level string `toml:"level"`

	// Level written for lines without a detected level
	RecordLevel string `toml:"record_level"`

	JSON      bool   `toml:"json"`
	Src       bool   `toml:"src"`
	Bitwise   bool   `toml:"bitwise"`
	Normalize bool   `toml:"normalize"`
	Template  string `toml:"template"`

	// Fields added to every record, as "key=value"
	Fields []string `toml:"fields"`
}

type OutputConfig struct {
	// "stdout", "stderr", "file", "tcp" or "ring"
	Type string `toml:"type"`

	File FileOutputConfig `toml:"file"`
	TCP  TCPOutputConfig  `toml:"tcp"`
	Ring RingOutputConfig `toml:"ring"`
	Rate RateConfig       `toml:"rate"`
}

type FileOutputConfig struct {
	Path     string `toml:"path"`
	Flags    string `toml:"flags"`
	Encoding string `toml:"encoding"`
}

type TCPOutputConfig struct {
	Host       string `toml:"host"`
	Port       int64  `toml:"port"`
	BufferSize int64  `toml:"buffer_size"`
}

type RingOutputConfig struct {
	// Number of records kept and printed on exit
	Limit int64 `toml:"limit"`
}

type RateConfig struct {
	// Records per second; 0 disables limiting
	PerSecond float64 `toml:"per_second"`
	Burst     int64   `toml:"burst"`
}

type InputConfig struct {
	// Map "[ERROR]"-style markers in a line to the record level
	DetectLevel bool `toml:"detect_level"`

	// Lines queued between the reader and the logger
	BufferSize int64 `toml:"buffer_size"`

	// Every filter must pass for a line to be logged
	Filters []FilterConfig `toml:"filters"`
}

func defaults() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:       "info",
			RecordLevel: "info",
		},
		Output: OutputConfig{
			Type: "stdout",
			File: FileOutputConfig{
				Path:     "clilogger.log",
				Flags:    "a",
				Encoding: "utf8",
			},
			TCP: TCPOutputConfig{
				Host:       "0.0.0.0",
				Port:       9090,
				BufferSize: 1000,
			},
			Ring: RingOutputConfig{
				Limit: 16,
			},
			Rate: RateConfig{
				PerSecond: 0,
				Burst:     10,
			},
		},
		Input: InputConfig{
			DetectLevel: false,
			BufferSize:  1000,
		},
		Logging: DefaultLogConfig(),
	}
}
