// Package tui is the terminal frontend, usable without the GUI build tag.
package tui

import (
	"bytes"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegrid/internal/pattern"
	"lifegrid/internal/sim"
	"lifegrid/internal/store"
)

const (
	viewHeader = "header"
	viewConfig = "configuration"
	viewStatus = "status"
	viewBoard  = "board"
	viewHelp   = "help"

	leftColumnWidth = 26
	tickInterval    = 33 * time.Millisecond
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// UI drives the simulator from a gocui terminal interface.
type UI struct {
	sim       *sim.Simulator
	g         *gocui.Gui
	keys      []keyBinding
	patterns  []pattern.Pattern
	selected  int
	statePath string
	dirty     atomic.Bool

	liveFiller string
	deadFiller string

	done chan struct{}
}

// New constructs the terminal UI around the simulator. State is written to
// statePath after board mutations; pass an empty path to disable persistence.
func New(s *sim.Simulator, statePath string) *UI {
	t := &UI{
		sim:        s,
		patterns:   pattern.All(),
		statePath:  statePath,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
		done:       make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", t.cmdQuit, ""},
		{'q', "Q", "quit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "run/pause", t.cmdTogglePlay, ""},
		{'n', "N", "step", t.cmdStep, ""},
		{'c', "C", "clear", t.cmdClear, ""},
		{'r', "R", "randomize", t.cmdRandomize, ""},
		{'g', "G", "noise fill", t.cmdNoise, ""},
		{'w', "W", "wrap on/off", t.cmdToggleWrap, ""},
		{'p', "P", "next pattern", t.cmdNextPattern, ""},
		{gocui.KeyEnter, "ENTER", "place pattern", t.cmdPlacePattern, ""},
		{'+', "+", "faster", t.cmdFaster, ""},
		{'-', "-", "slower", t.cmdSlower, ""},
		{gocui.MouseLeft, "MOUSE", "toggle cell", t.cmdMouseClick, viewBoard},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	s.SetChangeListener(func() { t.dirty.Store(true) })
	return t
}

func (t *UI) initKeyBindings() {
	for _, kb := range t.keys {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Run enters the main loop and blocks until the user quits.
func (t *UI) Run() {
	go t.tickLoop()
	err := t.g.MainLoop()
	close(t.done)
	t.g.Close()
	t.save()
	if err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// tickLoop drives timed advances and screen refreshes from one goroutine;
// the simulator serializes it against input handlers.
func (t *UI) tickLoop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.sim.Tick()
			if t.dirty.Swap(false) {
				t.save()
			}
			t.refresh()
		}
	}
}

func (t *UI) save() {
	if t.statePath == "" {
		return
	}
	// Save errors have nowhere useful to go while the terminal is owned
	// by gocui.
	_ = store.Save(t.statePath, t.sim.Settings(), t.sim.Board())
}

func (t *UI) refresh() {
	t.renderBoard()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *UI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(viewBoard)
		if err != nil {
			return err
		}
		v.Clear()

		board := t.sim.Board()
		maxW, maxH := v.Size()

		var b bytes.Buffer
		for y := 0; y < board.H && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			if board.H > maxH && y == maxH-1 {
				b.WriteString(aurora.Red("board larger than the viewing area").String())
				break
			}
			for x := 0; x < board.W && x < maxW; x++ {
				if board.Get(x, y) != 0 {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *UI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(viewStatus)
		if err != nil {
			return nil
		}
		v.Clear()
		mode := aurora.Blue("paused").String()
		if t.sim.Running() {
			mode = aurora.Cyan("running").String()
		}
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", t.sim.Generation()))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.sim.Population()))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		return nil
	})
}

func (t *UI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(viewConfig)
		if err != nil {
			return nil
		}
		v.Clear()
		s := t.sim.Settings()
		boundary := "bounded"
		if s.Wrap {
			boundary = "wrap"
		}
		sel := ""
		if len(t.patterns) > 0 {
			sel = t.patterns[t.selected].Label
		}
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", s.Width, s.Height))
		_, _ = fmt.Fprintln(v, t.renderProp("Speed", "%v gps", s.Speed))
		_, _ = fmt.Fprintln(v, t.renderProp("Boundary", "%v", boundary))
		_, _ = fmt.Fprintln(v, t.renderProp("Pattern", "%v", sel))
		return nil
	})
}

func (t *UI) renderProp(name string, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(viewHeader, -1, -1, maxX+1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintln(v, " lifegrid: Conway's Game of Life")
	}

	if v, err := g.SetView(viewConfig, 0, 2, leftColumnWidth, 2+(maxY-5-2)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView(viewStatus, 0, 2+(maxY-5-2)/2+1, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView(viewBoard, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}
	t.renderBoard()

	if v, err := g.SetView(viewHelp, -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range t.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *UI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *UI) cmdTogglePlay(_ *gocui.View) error {
	t.sim.TogglePlay()
	t.renderStatus()
	return nil
}

func (t *UI) cmdStep(_ *gocui.View) error {
	t.sim.Step()
	return nil
}

func (t *UI) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	return nil
}

func (t *UI) cmdRandomize(_ *gocui.View) error {
	t.sim.Randomize(time.Now().UnixNano())
	return nil
}

func (t *UI) cmdNoise(_ *gocui.View) error {
	t.sim.RandomizeNoise(time.Now().UnixNano())
	return nil
}

func (t *UI) cmdToggleWrap(_ *gocui.View) error {
	t.sim.SetWrap(!t.sim.Settings().Wrap)
	t.renderConfiguration()
	return nil
}

func (t *UI) cmdNextPattern(_ *gocui.View) error {
	if len(t.patterns) == 0 {
		return nil
	}
	t.selected = (t.selected + 1) % len(t.patterns)
	t.renderConfiguration()
	return nil
}

func (t *UI) cmdPlacePattern(_ *gocui.View) error {
	if len(t.patterns) == 0 {
		return nil
	}
	_ = t.sim.PlacePattern(t.patterns[t.selected].ID)
	return nil
}

func (t *UI) cmdFaster(_ *gocui.View) error {
	t.sim.SetSpeed(t.sim.Settings().Speed + 1)
	t.renderConfiguration()
	return nil
}

func (t *UI) cmdSlower(_ *gocui.View) error {
	t.sim.SetSpeed(t.sim.Settings().Speed - 1)
	t.renderConfiguration()
	return nil
}

func (t *UI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.sim.ToggleCell(cx, cy)
	return nil
}
