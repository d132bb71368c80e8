//go:build ebiten

package ui

import (
	"fmt"

	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the status bar.
const Height = 18

const (
	hudPadding  = 6
	hudBaseline = 13
)

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

// HUD renders a one-line status bar under the board.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the given pixel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, Height)}
}

// Resize reallocates the panel for a new pixel width.
func (h *HUD) Resize(width int) {
	if width <= 0 || width == h.width {
		return
	}
	h.width = width
	h.panel = ebiten.NewImage(width, Height)
}

// Draw paints the status bar at the given vertical offset.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, st Status, theme render.Theme) {
	if h == nil {
		return
	}
	h.panel.Fill(theme.Panel)

	mode := "paused"
	if st.Running {
		mode = "running"
	}
	boundary := "bounded"
	if st.Wrap {
		boundary = "wrap"
	}
	line := fmt.Sprintf("gen %d   pop %d   %d gps   %s   %s   pattern: %s   theme: %s",
		st.Generation, st.Population, st.Speed, boundary, mode, st.Pattern, st.Theme)

	text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, hudBaseline, theme.Text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
