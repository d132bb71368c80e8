package main

import (
	"fmt"
	"os"

	"github.com/integrii/flaggy"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/sim"
	"lifegrid/internal/store"
	"lifegrid/internal/tui"
)

func parseFlags() *app.Config {
	cfg := app.NewConfig()

	flaggy.SetName("lifegrid")
	flaggy.SetDescription("interactive Conway's Game of Life simulator")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&cfg.Width, "x", "width", "board width (10-150)")
	flaggy.Int(&cfg.Height, "y", "height", "board height (10-150)")
	flaggy.Int(&cfg.Speed, "s", "speed", "generations per second (1-30)")
	flaggy.Float64(&cfg.Density, "d", "density", "random-fill probability (0-1)")
	flaggy.Bool(&cfg.Wrap, "w", "wrap", "toroidal boundary")
	flaggy.String(&cfg.Theme, "t", "theme", "color theme (dark|light|amber|ocean)")
	flaggy.String(&cfg.Pattern, "p", "pattern", "pattern to select at startup")
	flaggy.Int(&cfg.Scale, "", "scale", "cell size in pixels (GUI)")
	flaggy.String(&cfg.StatePath, "", "state", "state file path override")
	flaggy.Bool(&cfg.Console, "c", "console", "run the terminal UI instead of the GUI")
	flaggy.Bool(&cfg.Fresh, "f", "fresh", "ignore any saved state")

	flaggy.Parse()

	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg
}

// buildSimulator assembles the simulator from saved state (unless --fresh)
// and the command line, returning it together with the resolved state path.
func buildSimulator(cfg *app.Config) (*sim.Simulator, string) {
	statePath := cfg.StatePath
	if statePath == "" {
		p, err := store.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "state persistence disabled: %v\n", err)
		} else {
			statePath = p
		}
	}

	var (
		settings core.Settings
		board    *core.Board
	)
	if cfg.Fresh || statePath == "" {
		settings = cfg.Settings()
		board = core.NewBoard(settings.Width, settings.Height)
	} else {
		settings, board = store.Load(statePath)
		settings.Density = core.ClampDensity(cfg.Density)
	}

	s := sim.New(board, settings)
	if cfg.Pattern != "" {
		if err := s.PlacePattern(cfg.Pattern); err != nil {
			fmt.Fprintf(os.Stderr, "pattern %q: %v\n", cfg.Pattern, err)
		}
	}
	return s, statePath
}

func runConsole(cfg *app.Config) {
	s, statePath := buildSimulator(cfg)
	tui.New(s, statePath).Run()
}
