//go:build ebiten

package ui

import (
	"time"

	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	toastPadX     = 10
	toastPadY     = 6
	toastMarginY  = 12
	toastLifetime = 2500 * time.Millisecond
)

// Toast draws short-lived advisory messages over the board.
type Toast struct {
	message  string
	deadline time.Time
	pixel    *ebiten.Image
}

// NewToast constructs an empty toast overlay.
func NewToast() *Toast {
	return &Toast{pixel: ebiten.NewImage(1, 1)}
}

// Show replaces the current message and restarts its lifetime.
func (t *Toast) Show(message string) {
	t.message = message
	t.deadline = time.Now().Add(toastLifetime)
}

// Update expires the message once its lifetime has passed.
func (t *Toast) Update() {
	if t.message != "" && time.Now().After(t.deadline) {
		t.message = ""
	}
}

// Draw paints the message centered near the top of the screen.
func (t *Toast) Draw(screen *ebiten.Image, theme render.Theme) {
	if t == nil || t.message == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, t.message)
	textW := bounds.Dx()
	textH := bounds.Dy()

	boxW := textW + 2*toastPadX
	boxH := textH + 2*toastPadY
	screenW := screen.Bounds().Dx()
	boxX := (screenW - boxW) / 2
	if boxX < 0 {
		boxX = 0
	}

	t.pixel.Fill(theme.Panel)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(float64(boxX), toastMarginY)
	screen.DrawImage(t.pixel, op)

	textX := boxX + toastPadX
	textY := toastMarginY + toastPadY + textH
	text.Draw(screen, t.message, face, textX, textY, theme.Text)
}
