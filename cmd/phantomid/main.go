package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/phantomid/internal/cli"
	"github.com/zarlcorp/phantomid/internal/config"
	"github.com/zarlcorp/phantomid/internal/store"
	"github.com/zarlcorp/phantomid/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("phantomid"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "phantomid: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	cliApp := &cli.App{
		Config:   cfg,
		Version:  version,
		Password: cli.TerminalPassword(os.Stderr),
		RunTUI: func(ctx context.Context) error {
			return runTUI(ctx, cfg)
		},
	}

	if err := cli.NewRootCommand(cliApp).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "phantomid: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context, cfg config.Config) error {
	m := tui.New(version, cfg.DataDir, cfg.Source(), store.IsFirstRun(cfg.DataDir))
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}
	return err
}
