// FILE: clilogger/src/cmd/clilogger/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"clilogger/src/cmd/clilogger/commands"
	"clilogger/src/internal/config"
	"clilogger/src/internal/source"
	"clilogger/src/internal/version"

	"github.com/lixenwraith/log"
)

// diag carries the tool's own diagnostics, never the records it writes.
var diag *log.Logger

func main() {
	os.Exit(run())
}

func run() int {
	router := commands.NewCommandRouter(os.Stdout)
	handled, err := router.Route(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if handled {
		return 0
	}

	flagCfg, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	InitOutputHandler(flagCfg.Quiet)

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		return 0
	}

	if flagCfg.ConfigFile != "" {
		os.Setenv("CLILOGGER_CONFIG_FILE", flagCfg.ConfigFile)
	}

	cfg, err := config.LoadWithCLI(flagCfg.ConfigArgs())
	if err != nil {
		if flagCfg.ConfigFile != "" && strings.Contains(err.Error(), "not found") {
			Status("Config file not found: %s\n", flagCfg.ConfigFile)
			return 2
		}
		Status("Failed to load config: %v\n", err)
		return 1
	}

	cfg.Input.Filters = append(cfg.Input.Filters, flagCfg.Filters()...)

	if err := initializeLogger(cfg); err != nil {
		Status("Failed to initialize diagnostics: %v\n", err)
		return 1
	}
	defer shutdownLogger()

	diag.Info("msg", "clilogger starting",
		"version", version.String(),
		"config_file", config.GetConfigPath(),
		"output", cfg.Output.Type)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := bootstrap(ctx, cfg, os.Stdout)
	if err != nil {
		diag.Error("msg", "Failed to bootstrap", "error", err)
		Status("Error: %v\n", err)
		return 1
	}

	if enableStatusReporter() {
		go statusReporter(ctx, a, statusInterval)
	}

	if len(flagCfg.Message) > 0 {
		a.logMessage(flagCfg.Message)
	} else if err := readInput(ctx, cfg, a); err != nil {
		diag.Error("msg", "Failed to read input", "error", err)
		a.Close()
		return 1
	}

	if err := a.Close(); err != nil {
		diag.Warn("msg", "Shutdown completed with errors", "error", err)
		return 1
	}
	diag.Info("msg", "Shutdown complete", "lines", a.linesLogged.Load())
	return 0
}

// readInput logs stdin line by line until it ends or a signal arrives.
func readInput(ctx context.Context, cfg *config.Config, a *app) error {
	src, err := source.NewStdinSource(map[string]any{
		"buffer_size":  cfg.Input.BufferSize,
		"detect_level": cfg.Input.DetectLevel,
	}, diag)
	if err != nil {
		return err
	}

	lines := src.Subscribe()
	if err := src.Start(); err != nil {
		return err
	}
	defer src.Stop()

	consume(ctx, a, lines)
	return nil
}

func shutdownLogger() {
	if diag != nil {
		if err := diag.Shutdown(2 * time.Second); err != nil {
			Status("Diagnostics shutdown error: %v\n", err)
		}
	}
}

func enableStatusReporter() bool {
	return os.Getenv("CLILOGGER_DISABLE_STATUS_REPORTER") != "1"
}
