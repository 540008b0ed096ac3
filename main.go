package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/squarefx/internal/config"
	"github.com/iburimskiy/squarefx/internal/game"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Warn("using default config", slog.Any("err", err))
	}

	if err := game.Start(cfg, game.DefaultDeps(log)); err != nil {
		log.Error("squarefx stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
