// Package sim owns the current board and drives generation advances.
package sim

import (
	"errors"
	"sync"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
)

// ErrBoardTooSmall is returned when a pattern's advisory minimum size exceeds
// the current board. The placement is skipped entirely, never applied in part.
var ErrBoardTooSmall = errors.New("board too small for pattern")

// ErrUnknownPattern is returned for pattern IDs missing from the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// Simulator serializes every board transformation behind one mutex so that
// frame callbacks, input handlers and the terminal frontend's ticker never
// apply two transformations to the same snapshot concurrently. Generation
// advances replace the board wholesale; a renderer holding the previous
// snapshot never sees it change underneath.
type Simulator struct {
	mu       sync.Mutex
	board    *core.Board
	settings core.Settings
	gate     *core.StepGate
	gen      int
	running  bool
	onChange func()
}

// New constructs a stopped simulator around the given board and settings.
// The board dimensions take precedence over the settings' width and height.
func New(board *core.Board, settings core.Settings) *Simulator {
	settings.Clamp()
	if board == nil {
		board = core.NewBoard(settings.Width, settings.Height)
	}
	settings.Width = board.W
	settings.Height = board.H
	return &Simulator{
		board:    board,
		settings: settings,
		gate:     core.NewStepGate(settings.Speed),
	}
}

// SetChangeListener registers a callback invoked after every board mutation,
// outside the simulator lock. Frontends hook display refresh and persistence
// writes here.
func (s *Simulator) SetChangeListener(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Simulator) fireChange() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Board returns the current board snapshot. Generation advances replace the
// snapshot rather than mutating it; direct edits (painting) happen in place
// between frames under the simulator lock.
func (s *Simulator) Board() *core.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Size returns the current board dimensions.
func (s *Simulator) Size() core.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Size{W: s.board.W, H: s.board.H}
}

// Settings returns a copy of the current settings.
func (s *Simulator) Settings() core.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Generation returns the generation counter.
func (s *Simulator) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Population returns the current live-cell count.
func (s *Simulator) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.CountLive()
}

// Running reports whether automatic advance is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Play starts automatic advance.
func (s *Simulator) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
}

// Pause stops automatic advance before the next scheduled generation.
func (s *Simulator) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// TogglePlay flips between running and stopped.
func (s *Simulator) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
}

// Step advances exactly one generation regardless of the run state, which it
// leaves untouched.
func (s *Simulator) Step() {
	s.mu.Lock()
	s.advance()
	s.mu.Unlock()
	s.fireChange()
}

// Tick is the frame callback. While running it advances at most one
// generation, and only when the pacing gate grants a slot.
func (s *Simulator) Tick() {
	s.mu.Lock()
	if !s.running || !s.gate.ShouldStep() {
		s.mu.Unlock()
		return
	}
	s.advance()
	s.mu.Unlock()
	s.fireChange()
}

func (s *Simulator) advance() {
	s.board = life.Advance(s.board, s.settings.Wrap)
	s.gen++
}

// Clear replaces the board with an all-dead one and resets the generation
// counter. The run state is unchanged.
func (s *Simulator) Clear() {
	s.mu.Lock()
	s.board = core.NewBoard(s.board.W, s.board.H)
	s.gen = 0
	s.mu.Unlock()
	s.fireChange()
}

// Randomize replaces the board with a uniform random fill at the configured
// density and resets the generation counter.
func (s *Simulator) Randomize(seed int64) {
	s.mu.Lock()
	s.board = life.NewRandomBoard(s.board.W, s.board.H, s.settings.Density, seed)
	s.gen = 0
	s.mu.Unlock()
	s.fireChange()
}

// RandomizeNoise replaces the board with a Perlin-clustered random fill and
// resets the generation counter.
func (s *Simulator) RandomizeNoise(seed int64) {
	s.mu.Lock()
	s.board = life.NewNoiseBoard(s.board.W, s.board.H, s.settings.Density, seed)
	s.gen = 0
	s.mu.Unlock()
	s.fireChange()
}

// Resize replaces the board with one of the clamped dimensions, preserving
// the overlapping top-left region, and resets the generation counter. Equal
// dimensions are a no-op.
func (s *Simulator) Resize(w, h int) {
	s.mu.Lock()
	w = core.ClampBoardSize(w)
	h = core.ClampBoardSize(h)
	if w == s.board.W && h == s.board.H {
		s.mu.Unlock()
		return
	}
	s.board = s.board.Resize(w, h)
	s.settings.Width = w
	s.settings.Height = h
	s.gen = 0
	s.mu.Unlock()
	s.fireChange()
}

// PlacePattern stamps the named pattern centered on the board and resets the
// generation counter. When the board is below the pattern's advisory minimum
// size nothing is applied.
func (s *Simulator) PlacePattern(id string) error {
	s.mu.Lock()
	p, ok := pattern.ByID(id)
	if !ok {
		s.mu.Unlock()
		return ErrUnknownPattern
	}
	if !p.Fits(s.board.W, s.board.H) {
		s.mu.Unlock()
		return ErrBoardTooSmall
	}
	p.Place(s.board, s.board.W/2, s.board.H/2)
	s.gen = 0
	s.mu.Unlock()
	s.fireChange()
	return nil
}

// Paint writes a single cell in place. Out-of-bounds coordinates are ignored
// and the generation counter is untouched.
func (s *Simulator) Paint(x, y int, v uint8) {
	s.mu.Lock()
	if !s.board.InBounds(x, y) {
		s.mu.Unlock()
		return
	}
	s.board.Set(x, y, v)
	s.mu.Unlock()
	s.fireChange()
}

// ToggleCell inverts a single cell in place and returns the new value, which
// a drag-paint gesture keeps applying until it ends.
func (s *Simulator) ToggleCell(x, y int) uint8 {
	s.mu.Lock()
	if !s.board.InBounds(x, y) {
		s.mu.Unlock()
		return 0
	}
	v := s.board.Toggle(x, y)
	s.mu.Unlock()
	s.fireChange()
	return v
}

// SetSpeed clamps and applies a new generations-per-second rate.
func (s *Simulator) SetSpeed(gps int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Speed = core.ClampSpeed(gps)
	s.gate.SetRate(s.settings.Speed)
}

// SetWrap switches between toroidal and bounded neighbor addressing.
func (s *Simulator) SetWrap(wrap bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Wrap = wrap
}

// SetDensity clamps and stores the random-fill probability.
func (s *Simulator) SetDensity(d float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Density = core.ClampDensity(d)
}

// SetTheme stores the theme name. Validation against the known set happens in
// the rendering layer, which falls back to the default for unknown names.
func (s *Simulator) SetTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Theme = name
}
