package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/audio"
	"shooter/internal/config"
	"shooter/internal/game"
	"shooter/internal/logger"
	"shooter/internal/term"
)

const (
	volume  = 0.58
	logFile = "shooter-term.log"
)

func main() {
	cfg, warns := config.Load()

	// The screen owns stdout and stderr while running.
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Init(cfg.LogLevel, cfg.LogFmt)
		logger.Log.WithError(err).Fatal("open log file")
	}
	defer f.Close()
	logger.InitTo(f, cfg.LogLevel, cfg.LogFmt)
	for _, w := range warns {
		logger.Log.WithError(w).Warn("config")
	}

	g := game.New(game.Options{Seed: cfg.Seed, Debug: cfg.Debug})

	if cfg.Audio {
		sys, err := audio.New(volume)
		if err != nil {
			logger.Log.WithError(err).Warn("audio init failed, continuing without sound")
		} else {
			sys.Subscribe(g.Events())
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("terminal")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("terminal init")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, g, term.Options{FPS: cfg.FPS})
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("terminal host")
		os.Exit(1)
	}
}
