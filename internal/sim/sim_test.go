package sim

import (
	"errors"
	"testing"

	"lifegrid/internal/core"
)

func newTestSim() *Simulator {
	settings := core.DefaultSettings()
	settings.Width = 20
	settings.Height = 20
	return New(core.NewBoard(20, 20), settings)
}

func TestPlayPauseStep(t *testing.T) {
	s := newTestSim()
	if s.Running() {
		t.Fatal("simulator must start stopped")
	}
	s.Play()
	if !s.Running() {
		t.Fatal("Play did not start the simulator")
	}
	s.Step()
	if !s.Running() {
		t.Fatal("Step changed the run state")
	}
	s.Pause()
	if s.Running() {
		t.Fatal("Pause did not stop the simulator")
	}
	s.Step()
	if s.Running() {
		t.Fatal("Step changed the run state while stopped")
	}
	if s.Generation() != 2 {
		t.Fatalf("generation = %d after two steps, want 2", s.Generation())
	}
}

func TestTickOnlyAdvancesWhileRunning(t *testing.T) {
	s := newTestSim()
	s.Tick()
	if s.Generation() != 0 {
		t.Fatal("Tick advanced a stopped simulator")
	}
	s.Play()
	s.Tick()
	if s.Generation() != 1 {
		t.Fatalf("generation = %d after first running tick, want 1", s.Generation())
	}
}

func TestTickRespectsPacing(t *testing.T) {
	s := newTestSim()
	s.SetSpeed(1)
	s.Play()
	s.Tick()
	// Two immediate ticks are well inside the 1-second interval.
	s.Tick()
	s.Tick()
	if s.Generation() != 1 {
		t.Fatalf("generation = %d, pacing gate let extra advances through", s.Generation())
	}
}

func TestCounterResets(t *testing.T) {
	s := newTestSim()
	s.Step()
	s.Step()

	s.Clear()
	if s.Generation() != 0 {
		t.Fatal("Clear did not reset the generation counter")
	}

	s.Step()
	s.Randomize(7)
	if s.Generation() != 0 {
		t.Fatal("Randomize did not reset the generation counter")
	}

	s.Step()
	s.Resize(30, 30)
	if s.Generation() != 0 {
		t.Fatal("Resize did not reset the generation counter")
	}

	s.Step()
	if err := s.PlacePattern("glider"); err != nil {
		t.Fatalf("PlacePattern: %v", err)
	}
	if s.Generation() != 0 {
		t.Fatal("PlacePattern did not reset the generation counter")
	}
}

func TestStepDoesNotResetOnPaint(t *testing.T) {
	s := newTestSim()
	s.Step()
	s.Paint(3, 3, 1)
	if s.Generation() != 1 {
		t.Fatal("Paint touched the generation counter")
	}
	if s.Board().Get(3, 3) != 1 {
		t.Fatal("Paint did not set the cell")
	}
}

func TestResizeNoOpKeepsBoardIdentity(t *testing.T) {
	s := newTestSim()
	before := s.Board()
	s.Resize(20, 20)
	if s.Board() != before {
		t.Fatal("equal-dimension resize replaced the board")
	}
}

func TestResizeClampsAndPreservesContent(t *testing.T) {
	s := newTestSim()
	s.Paint(1, 1, 1)
	s.Resize(5, 500) // clamps to 10 x 150
	b := s.Board()
	if b.W != core.MinBoardSize || b.H != core.MaxBoardSize {
		t.Fatalf("resize produced %dx%d", b.W, b.H)
	}
	if b.Get(1, 1) != 1 {
		t.Fatal("resize lost the overlapping cell")
	}
	if s.Settings().Width != b.W || s.Settings().Height != b.H {
		t.Fatal("settings not synced with the resized board")
	}
}

func TestPlacePatternTooSmall(t *testing.T) {
	settings := core.DefaultSettings()
	s := New(core.NewBoard(10, 10), settings)
	s.Step()
	gen := s.Generation()

	err := s.PlacePattern("pulsar")
	if !errors.Is(err, ErrBoardTooSmall) {
		t.Fatalf("expected ErrBoardTooSmall, got %v", err)
	}
	if s.Population() != 0 {
		t.Fatal("failed placement must not touch the board")
	}
	if s.Generation() != gen {
		t.Fatal("failed placement must not touch the counter")
	}
}

func TestPlacePatternUnknown(t *testing.T) {
	s := newTestSim()
	if err := s.PlacePattern("no-such-pattern"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestPlacePatternCenters(t *testing.T) {
	s := newTestSim()
	if err := s.PlacePattern("block"); err != nil {
		t.Fatalf("PlacePattern: %v", err)
	}
	b := s.Board()
	// Block offsets around its 2x2 center: (-1,-1),(0,-1),(-1,0),(0,0).
	for _, c := range [][2]int{{9, 9}, {10, 9}, {9, 10}, {10, 10}} {
		if b.Get(c[0], c[1]) != 1 {
			t.Fatalf("block cell (%d,%d) not set", c[0], c[1])
		}
	}
	if b.CountLive() != 4 {
		t.Fatalf("block placed %d cells, want 4", b.CountLive())
	}
}

func TestToggleCellDragValue(t *testing.T) {
	s := newTestSim()
	v := s.ToggleCell(4, 4)
	if v != 1 {
		t.Fatalf("toggling a dead cell returned %d, want 1", v)
	}
	// The stroke value is applied to later cells as-is.
	s.Paint(5, 4, v)
	s.Paint(6, 4, v)
	if s.Population() != 3 {
		t.Fatalf("population = %d after stroke, want 3", s.Population())
	}
}

func TestChangeListener(t *testing.T) {
	s := newTestSim()
	calls := 0
	s.SetChangeListener(func() {
		calls++
		// Listener runs outside the lock and may read back.
		_ = s.Generation()
	})

	s.Step()
	s.Clear()
	s.Paint(1, 1, 1)
	s.Randomize(3)
	if err := s.PlacePattern("glider"); err != nil {
		t.Fatalf("PlacePattern: %v", err)
	}
	s.Resize(30, 30)

	if calls != 6 {
		t.Fatalf("listener fired %d times, want 6", calls)
	}
}

func TestSettersClamp(t *testing.T) {
	s := newTestSim()
	s.SetSpeed(500)
	if s.Settings().Speed != core.MaxSpeed {
		t.Fatal("SetSpeed did not clamp")
	}
	s.SetDensity(-1)
	if s.Settings().Density != 0 {
		t.Fatal("SetDensity did not clamp")
	}
	s.SetWrap(false)
	if s.Settings().Wrap {
		t.Fatal("SetWrap ignored")
	}
}
