//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// gridlines are skipped below this cell size; they would swallow the cells.
const minGridScale = 4

// GridPainter updates a single RGBA image based on binary cell data and draws
// it scaled, with gridlines between cells.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	return gp
}

// Size returns the board dimensions the painter was allocated for.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Blit uploads the cells into the painter image and draws it at the given
// cell size using the theme's live/dead colors, then overlays gridlines.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, theme Theme, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillBinaryRGBA(gp.buf, cells, theme.Live, theme.Dead)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale >= minGridScale {
		gp.drawGridlines(dst, theme, scale)
	}
}

func (gp *GridPainter) drawGridlines(dst *ebiten.Image, theme Theme, scale int) {
	gp.pixel.Fill(theme.Grid)
	width := float64(gp.w * scale)
	height := float64(gp.h * scale)
	for x := 1; x < gp.w; x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, height)
		op.GeoM.Translate(float64(x*scale), 0)
		dst.DrawImage(gp.pixel, op)
	}
	for y := 1; y < gp.h; y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(width, 1)
		op.GeoM.Translate(0, float64(y*scale))
		dst.DrawImage(gp.pixel, op)
	}
}
