//go:build !ebiten

package ui

import "lifegrid/internal/render"

// Height is the pixel height of the status bar.
const Height = 18

// Status carries the values shown on the status bar.
type Status struct {
	Generation int
	Population int
	Speed      int
	Wrap       bool
	Running    bool
	Pattern    string
	Theme      string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Resize is a no-op in the headless build.
func (h *HUD) Resize(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, Status, render.Theme) {}
