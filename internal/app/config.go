package app

import "lifegrid/internal/core"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Speed   int
	Density float64
	Wrap    bool
	Theme   string
	Pattern string

	Scale     int
	StatePath string
	Console   bool
	Fresh     bool
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	s := core.DefaultSettings()
	return &Config{
		Width:   s.Width,
		Height:  s.Height,
		Speed:   s.Speed,
		Density: s.Density,
		Wrap:    s.Wrap,
		Theme:   s.Theme,
		Scale:   10,
	}
}

// Settings converts the flag values into clamped simulator settings.
func (c *Config) Settings() core.Settings {
	s := core.Settings{
		Width:   c.Width,
		Height:  c.Height,
		Speed:   c.Speed,
		Wrap:    c.Wrap,
		Density: c.Density,
		Theme:   c.Theme,
	}
	s.Clamp()
	return s
}
