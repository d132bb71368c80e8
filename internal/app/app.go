//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/sim"
	"lifegrid/internal/store"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulator to the ebiten.Game interface: it maps keyboard
// and pointer input to simulator operations, drives the timed advance from
// the frame callback, and persists state after every board mutation.
type Game struct {
	sim     *sim.Simulator
	painter *render.GridPainter
	hud     *ui.HUD
	toast   *ui.Toast

	scale     int
	statePath string
	dirty     bool

	patterns   []pattern.Pattern
	patternIdx int

	painting   bool
	paintValue uint8
	lastCellX  int
	lastCellY  int
}

// New constructs a Game for the provided simulator.
func New(s *sim.Simulator, cfg *Config) *Game {
	size := s.Size()
	g := &Game{
		sim:       s,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(size.W * cfg.Scale),
		toast:     ui.NewToast(),
		scale:     cfg.Scale,
		statePath: cfg.StatePath,
		patterns:  pattern.All(),
	}
	if cfg.Pattern != "" {
		for i, p := range g.patterns {
			if p.ID == cfg.Pattern {
				g.patternIdx = i
				break
			}
		}
	}
	s.SetChangeListener(func() { g.dirty = true })
	return g
}

// Update handles per-frame input, advances the simulation and flushes
// pending persistence writes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.save()
		return ebiten.Termination
	}

	g.handleKeys()
	g.handlePointer()
	g.toast.Update()

	g.sim.Tick()
	g.syncBoardSize()

	if g.dirty {
		g.dirty = false
		g.save()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.sim.RandomizeNoise(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		wrap := !g.sim.Settings().Wrap
		g.sim.SetWrap(wrap)
		if wrap {
			g.toast.Show("boundary: wrap")
		} else {
			g.toast.Show("boundary: bounded")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		next := render.NextTheme(g.sim.Settings().Theme)
		g.sim.SetTheme(next)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.patternIdx = (g.patternIdx + len(g.patterns) - 1) % len(g.patterns)
		} else {
			g.patternIdx = (g.patternIdx + 1) % len(g.patterns)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.placeSelected()
	}

	settings := g.sim.Settings()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sim.Resize(settings.Width+1, settings.Height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sim.Resize(settings.Width-1, settings.Height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.Resize(settings.Width, settings.Height+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.Resize(settings.Width, settings.Height-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.sim.SetSpeed(settings.Speed + 1)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.sim.SetSpeed(settings.Speed - 1)
		g.dirty = true
	}
}

func (g *Game) placeSelected() {
	if len(g.patterns) == 0 {
		return
	}
	p := g.patterns[g.patternIdx]
	err := g.sim.PlacePattern(p.ID)
	switch {
	case errors.Is(err, sim.ErrBoardTooSmall):
		g.toast.Show("board too small for " + p.Label)
	case err == nil:
		g.toast.Show(p.Label)
	}
}

// handlePointer implements drag-paint: the press inverts the target cell and
// the stroke keeps applying that value to every cell it enters until release.
func (g *Game) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y, ok := g.cellAtCursor()
		if ok {
			g.painting = true
			g.paintValue = g.sim.ToggleCell(x, y)
			g.lastCellX, g.lastCellY = x, y
		}
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.painting = false
		return
	}
	if !g.painting {
		return
	}
	x, y, ok := g.cellAtCursor()
	if !ok || (x == g.lastCellX && y == g.lastCellY) {
		return
	}
	g.sim.Paint(x, y, g.paintValue)
	g.lastCellX, g.lastCellY = x, y
}

func (g *Game) cellAtCursor() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	x := mx / g.scale
	y := my / g.scale
	if mx < 0 || my < 0 || x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// syncBoardSize reallocates the painter and window after a board resize.
func (g *Game) syncBoardSize() {
	size := g.sim.Size()
	w, h := g.painter.Size()
	if w == size.W && h == size.H {
		return
	}
	g.painter = render.NewGridPainter(size.W, size.H)
	g.hud.Resize(size.W * g.scale)
	ebiten.SetWindowSize(size.W*g.scale, size.H*g.scale+ui.Height)
}

func (g *Game) save() {
	if g.statePath == "" {
		return
	}
	if err := store.Save(g.statePath, g.sim.Settings(), g.sim.Board()); err != nil {
		log.Printf("save state: %v", err)
	}
}

// Draw renders the board, the status bar and any pending toast.
func (g *Game) Draw(screen *ebiten.Image) {
	settings := g.sim.Settings()
	theme := render.Lookup(settings.Theme)
	board := g.sim.Board()
	size := g.sim.Size()

	g.painter.Blit(screen, board.Cells(), theme, g.scale)

	selected := ""
	if len(g.patterns) > 0 {
		selected = g.patterns[g.patternIdx].Label
	}
	g.hud.Draw(screen, size.H*g.scale, ui.Status{
		Generation: g.sim.Generation(),
		Population: board.CountLive(),
		Speed:      settings.Speed,
		Wrap:       settings.Wrap,
		Running:    g.sim.Running(),
		Pattern:    selected,
		Theme:      settings.Theme,
	}, theme)

	g.toast.Draw(screen, theme)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W * g.scale, size.H*g.scale + ui.Height
}
