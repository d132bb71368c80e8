//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/ui"
)

func main() {
	cfg := parseFlags()
	if cfg.Console {
		runConsole(cfg)
		return
	}

	s, statePath := buildSimulator(cfg)
	cfg.StatePath = statePath

	game := app.New(s, cfg)
	size := s.Size()

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
