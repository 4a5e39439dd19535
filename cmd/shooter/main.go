package main

import (
	"os"

	"shooter/internal/audio"
	"shooter/internal/config"
	"shooter/internal/desktop"
	"shooter/internal/game"
	"shooter/internal/logger"
)

const volume = 0.58

func main() {
	cfg, warns := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFmt)
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

	opts := desktop.Options{Width: cfg.Width, Height: cfg.Height, FPS: cfg.FPS}
	if err := desktop.Run(g, opts); err != nil {
		logger.Log.WithError(err).Error("desktop host")
		os.Exit(1)
	}
}
