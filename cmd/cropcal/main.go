package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/cropcal/internal/cli"
	"github.com/alexanderramin/cropcal/internal/config"
	"github.com/alexanderramin/cropcal/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Plain output when piped, e.g. into a file or another tool.
	if !isTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app := &cli.App{
		IsInteractive: func() bool { return isTerminal(os.Stdin) },
	}

	app.Load = func(configPath string) error {
		path, err := config.ResolvePath(configPath)
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		level, err := config.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		logger.Debug("config loaded", "path", path, "catalog", cfg.Catalog, "garden_entries", len(cfg.Garden))

		return app.Wire(cfg, service.NewLogUseCaseObserver(logger))
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
