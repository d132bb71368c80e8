package core

// Bounds for user-adjustable settings. Writes outside a bound clamp to the
// nearest valid value rather than failing.
const (
	MinBoardSize = 10
	MaxBoardSize = 150
	MinSpeed     = 1
	MaxSpeed     = 30

	DefaultWidth   = 60
	DefaultHeight  = 40
	DefaultSpeed   = 8
	DefaultDensity = 0.25
	DefaultTheme   = "dark"
)

// Settings holds the user-facing simulation configuration. It is owned by the
// orchestration layer; the board, rule and pattern code take all parameters
// explicitly and never read it.
type Settings struct {
	Width   int
	Height  int
	Speed   int
	Wrap    bool
	Density float64
	Theme   string
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Speed:   DefaultSpeed,
		Wrap:    true,
		Density: DefaultDensity,
		Theme:   DefaultTheme,
	}
}

// Clamp forces every field into its valid range in place.
func (s *Settings) Clamp() {
	s.Width = ClampBoardSize(s.Width)
	s.Height = ClampBoardSize(s.Height)
	s.Speed = ClampSpeed(s.Speed)
	s.Density = ClampDensity(s.Density)
}

// ClampBoardSize forces a board dimension into [MinBoardSize, MaxBoardSize].
func ClampBoardSize(v int) int {
	if v < MinBoardSize {
		return MinBoardSize
	}
	if v > MaxBoardSize {
		return MaxBoardSize
	}
	return v
}

// ClampSpeed forces a generations-per-second rate into [MinSpeed, MaxSpeed].
func ClampSpeed(v int) int {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

// ClampDensity forces a random-fill probability into [0, 1].
func ClampDensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
