// Package main is the entry point for the gridstorm table viewer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/gridstorm/internal/app"
	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/data"
	"github.com/dshills/gridstorm/internal/logging"
	"github.com/dshills/gridstorm/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	sheet      string
	watch      bool
	noMouse    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "gridstorm [flags] FILE",
		Short: "Browse CSV, TSV, JSON and XLSX files in a terminal grid",
		Long: `gridstorm opens a table file in a scrollable grid with frozen and hidden
columns, per-column filters (plain text or Lua expressions starting with "="),
in-place editing and JSON export of the selection.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd.Context(), args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file (default "+config.DefaultPath()+")")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFile, "log-file", "", "Log file (default "+logging.DefaultFile()+")")
	fl.StringVar(&f.sheet, "sheet", "", "Workbook sheet to open (default the first)")
	fl.BoolVarP(&f.watch, "watch", "w", false, "Reload when the file changes")
	fl.BoolVar(&f.noMouse, "no-mouse", false, "Ignore mouse input")
	return cmd
}

func runGrid(ctx context.Context, path string, f flags) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{Path: f.configPath, Required: f.configPath != ""})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Logging.File = f.logFile
	}
	if f.noMouse {
		cfg.Mouse.Enabled = false
	}

	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return err
	}
	defer logger.Close()

	src, err := data.Open(path, data.Options{Sheet: f.sheet})
	if err != nil {
		return err
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Source:  src,
		Backend: term,
		Config:  cfg,
		Logger:  logger.Logger,
		Watch:   f.watch,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", version, "file", path, "watch", f.watch)
	if err := application.Run(ctx); err != nil && !errors.Is(err, app.ErrQuit) {
		logger.Error("run failed", "err", err)
		return err
	}
	logger.Info("exiting")
	return nil
}
