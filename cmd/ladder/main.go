package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/cli"
	"github.com/alexanderramin/ladder/internal/config"
	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	observer := service.NewSlogUseCaseObserver(logger)

	// Without a store path every list lives in memory for this run only.
	var tracker *app.Tracker
	if cfg.Store.Path != "" {
		database, err := db.OpenDB(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		tracker, err = app.NewSQLiteTracker(context.Background(), database, cfg.Store.Seed, observer)
		if err != nil {
			return err
		}
	} else {
		tracker = app.NewMemoryTracker(cfg.Store.Seed, observer)
	}

	a := &cli.App{
		Tracker:   tracker,
		Logger:    logger,
		ServeAddr: cfg.Server.Addr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(a).Execute()
}
