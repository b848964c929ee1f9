// FILE: clilogger/src/cmd/clilogger/flags.go
package main

import (
	"flag"
	"fmt"
	"io"

	"clilogger/src/internal/config"
)

// flagKeys maps command-line flags to configuration paths.
var flagKeys = map[string]string{
	"name":         "logger.name",
	"level":        "logger.level",
	"at":           "logger.record_level",
	"json":         "logger.json",
	"src":          "logger.src",
	"bitwise":      "logger.bitwise",
	"normalize":    "logger.normalize",
	"template":     "logger.template",
	"output":       "output.type",
	"file":         "output.file.path",
	"tcp-port":     "output.tcp.port",
	"ring":         "output.ring.limit",
	"rate":         "output.rate.per_second",
	"detect-level": "input.detect_level",
	"quiet":        "quiet",
}

// FlagConfig holds the flags handled before configuration is loaded.
type FlagConfig struct {
	ConfigFile  string
	ShowVersion bool
	Quiet       bool

	// Message is the positional template and parameters, logged once instead of reading stdin
	Message []string

	// Include and Exclude are regular expressions added as input filters
	Include string
	Exclude string

	overrides []string
}

// ConfigArgs returns the explicitly set flags as "--path=value" arguments for the loader.
func (f *FlagConfig) ConfigArgs() []string {
	return f.overrides
}

// Filters returns the filters given by -include and -exclude.
func (f *FlagConfig) Filters() []config.FilterConfig {
	var filters []config.FilterConfig
	if f.Include != "" {
		filters = append(filters, config.FilterConfig{Type: config.FilterTypeInclude, Patterns: []string{f.Include}})
	}
	if f.Exclude != "" {
		filters = append(filters, config.FilterConfig{Type: config.FilterTypeExclude, Patterns: []string{f.Exclude}})
	}
	return filters
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, usageOut io.Writer) (*FlagConfig, error) {
	fs := flag.NewFlagSet("clilogger", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() { customUsage(usageOut) }

	fc := &FlagConfig{}
	fs.StringVar(&fc.ConfigFile, "config", "", "Config file path")
	fs.BoolVar(&fc.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&fc.Quiet, "quiet", false, "Suppress diagnostics and status output")

	fs.String("name", "", "Logger name")
	fs.String("level", "", "Threshold: trace, debug, info, warn, error, fatal, none (or a number)")
	fs.String("at", "", "Level for lines without a detected level")
	fs.Bool("json", false, "Write JSON records")
	fs.Bool("src", false, "Record the call site")
	fs.Bool("bitwise", false, "Use bitwise levels")
	fs.Bool("normalize", false, "Capitalize messages and end them with a period")
	fs.String("template", "", "text/template for plain-text records")
	output := fs.String("output", "", "Output: stdout, stderr, file, tcp, ring")
	fs.String("file", "", "File path for file output")
	fs.Int64("tcp-port", 0, "Port for tcp output")
	fs.Int64("ring", 0, "Records kept by ring output")
	fs.Float64("rate", 0, "Maximum records per second, 0 for unlimited")
	fs.Bool("detect-level", false, "Detect [ERROR]-style level markers in input lines")
	fs.StringVar(&fc.Include, "include", "", "Only log input lines matching this regex")
	fs.StringVar(&fc.Exclude, "exclude", "", "Skip input lines matching this regex")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *output != "" {
		validOutputs := map[string]bool{
			"stdout": true, "stderr": true, "file": true, "tcp": true, "ring": true,
		}
		if !validOutputs[*output] {
			return nil, fmt.Errorf("invalid output: %s (valid: stdout, stderr, file, tcp, ring)", *output)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			fc.overrides = append(fc.overrides, fmt.Sprintf("--%s=%s", key, f.Value.String()))
		}
	})
	fc.Message = fs.Args()

	return fc, nil
}

func customUsage(w io.Writer) {
	fmt.Fprintf(w, "clilogger - structured logging for shell pipelines\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  clilogger [options] [message [params...]]\n")
	fmt.Fprintf(w, "  clilogger <command> [args]\n\n")

	fmt.Fprintf(w, "Without a message, every line read from stdin is logged.\n\n")

	fmt.Fprintf(w, "General:\n")
	fmt.Fprintf(w, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(w, "  -version\n\tShow version information\n")
	fmt.Fprintf(w, "  -quiet\n\tSuppress diagnostics and status output\n")

	fmt.Fprintf(w, "\nRecords:\n")
	fmt.Fprintf(w, "  -name string\n\tLogger name (default: program name)\n")
	fmt.Fprintf(w, "  -level string\n\tThreshold: trace, debug, info, warn, error, fatal, none\n")
	fmt.Fprintf(w, "  -at string\n\tLevel for lines without a detected level (default: info)\n")
	fmt.Fprintf(w, "  -json\n\tWrite JSON records\n")
	fmt.Fprintf(w, "  -src\n\tRecord the call site\n")
	fmt.Fprintf(w, "  -bitwise\n\tUse bitwise levels (trace=1 ... fatal=32, all=63)\n")
	fmt.Fprintf(w, "  -normalize\n\tCapitalize messages and end them with a period\n")
	fmt.Fprintf(w, "  -template string\n\ttext/template for plain-text records\n")
	fmt.Fprintf(w, "  -detect-level\n\tDetect [ERROR]-style level markers in input lines\n")
	fmt.Fprintf(w, "  -include string\n\tOnly log input lines matching this regex\n")
	fmt.Fprintf(w, "  -exclude string\n\tSkip input lines matching this regex\n")

	fmt.Fprintf(w, "\nOutput:\n")
	fmt.Fprintf(w, "  -output string\n\tstdout, stderr, file, tcp, ring (default: stdout)\n")
	fmt.Fprintf(w, "  -file string\n\tFile path for file output\n")
	fmt.Fprintf(w, "  -tcp-port int\n\tPort for tcp output\n")
	fmt.Fprintf(w, "  -ring int\n\tRecords kept by ring output and printed on exit\n")
	fmt.Fprintf(w, "  -rate float\n\tMaximum records per second, 0 for unlimited\n")

	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  # Wrap a command's output as JSON records\n")
	fmt.Fprintf(w, "  make 2>&1 | clilogger -json -detect-level -name build\n\n")
	fmt.Fprintf(w, "  # Log a single message\n")
	fmt.Fprintf(w, "  clilogger -at warn \"deploy of %%s finished\" v1.2\n\n")
	fmt.Fprintf(w, "  # Broadcast lines to TCP clients\n")
	fmt.Fprintf(w, "  tail -f app.log | clilogger -output tcp -tcp-port 9090\n\n")

	fmt.Fprintf(w, "Environment Variables:\n")
	fmt.Fprintf(w, "  CLILOGGER_CONFIG_FILE              Config file path\n")
	fmt.Fprintf(w, "  CLILOGGER_CONFIG_DIR               Config directory\n")
	fmt.Fprintf(w, "  CLILOGGER_<SECTION>_<KEY>          Any config value, e.g. CLILOGGER_LOGGER_LEVEL\n")
	fmt.Fprintf(w, "  CLILOGGER_DISABLE_STATUS_REPORTER  Disable periodic status reports (set to 1)\n")
}
