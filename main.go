// anchorpos places floating panels (dropdowns, tooltips) next to an anchor
// element and keeps them inside their container.
//
// It runs either as an interactive terminal playground or as a one-shot
// report over YAML scene fixtures.
//
// Usage:
//
//	anchorpos [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/anchorpos/config.toml)
//	-scene string     Run a scene fixture, or every *.yaml in a directory, and print a report
//	-json             Print the scene report as JSON
//	-tui              Launch the interactive playground (default when stdout is a terminal)
//	-log-file string  Also write logs to this file
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/anchorpos/pkg/config"
	"gitlab.com/tinyland/lab/anchorpos/pkg/scene"
	"gitlab.com/tinyland/lab/anchorpos/pkg/terminal"
	"gitlab.com/tinyland/lab/anchorpos/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		scenePath   = flag.String("scene", "", "Scene fixture (or directory of fixtures) to run")
		asJSON      = flag.Bool("json", false, "Print the scene report as JSON")
		runTUI      = flag.Bool("tui", false, "Launch the interactive playground")
		logFilePath = flag.String("log-file", "", "Also write logs to this file")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("anchorpos %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	caps := terminal.DetectCapabilities()
	interactive := caps.Interactive && *scenePath == ""
	if !caps.Interactive {
		caps.Profile = termenv.Ascii
	}
	caps.ApplyColorProfile()

	// The playground owns the screen, so its logs only go to the file.
	var sinks []io.Writer
	if !interactive {
		sinks = append(sinks, os.Stderr)
	}
	if *logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(*logFilePath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
			os.Exit(1)
		}
		logFile, err := os.OpenFile(*logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		sinks = append(sinks, logFile)
	}
	level := parseLevel(cfg.General.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Debug("terminal",
		"interactive", caps.Interactive,
		"profile", caps.ProfileName(),
		"cols", caps.Size.Cols,
		"rows", caps.Size.Rows,
		"ssh", caps.SSH,
		"mux", caps.Mux)

	switch {
	case *scenePath != "":
		if err := runScenes(*scenePath, *asJSON, logger); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	case *runTUI || caps.Interactive:
		if !caps.Interactive {
			fmt.Fprintln(os.Stderr, "the playground needs a terminal; use -scene for a report")
			os.Exit(2)
		}
		if err := tui.Run(ctx, cfg, caps.ProfileName(), logger); err != nil {
			logger.Error("playground failed", "error", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -scene to print a report")
		flag.Usage()
		os.Exit(2)
	}
}

// runScenes runs one fixture or every fixture in a directory, prints the
// reports and fails if any expectation does not hold.
func runScenes(path string, asJSON bool, logger *slog.Logger) error {
	paths, err := scenePaths(path)
	if err != nil {
		return err
	}

	var (
		reports []scene.Report
		failed  []string
	)
	for _, p := range paths {
		s, err := scene.Load(p)
		if err != nil {
			return err
		}
		r, err := scene.Run(s, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if err := s.Check(r); err != nil {
			logger.Warn("expectation failed", "scene", p, "error", err)
			failed = append(failed, err.Error())
		}
		reports = append(reports, r)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else {
		for _, r := range reports {
			fmt.Println(r)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d scenes failed:\n  %s", len(failed), len(reports), strings.Join(failed, "\n  "))
	}
	return nil
}

// scenePaths expands a directory into its *.yaml and *.yml files.
func scenePaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, m...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("scene: no fixtures in %s", path)
	}
	return paths, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
