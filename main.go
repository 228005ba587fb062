package main

import (
	"fmt"
	"os"

	"dungeon-crawl/internal/config"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/logger"
	"dungeon-crawl/internal/saveload"
	"dungeon-crawl/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closer, err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := saveload.Open(cfg.SaveBackend, cfg.SavePath)
	if err != nil {
		return fmt.Errorf("open save slot: %w", err)
	}
	defer store.Close()

	dataDir, err := config.DataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	g := game.New(game.Options{
		Width:     cfg.MapWidth,
		Height:    cfg.MapHeight,
		MaxRooms:  cfg.MaxRooms,
		Seed:      cfg.Seed,
		Store:     store,
		RunLog:    cfg.RunLog,
		RunLogDir: dataDir,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	logger.Log.WithFields(logrus.Fields{
		"backend": cfg.SaveBackend,
		"save":    cfg.SavePath,
	}).Info("starting")
	term.Run(screen, g)
	return nil
}
