// Package life implements Conway's B3/S23 rule over a binary board.
package life

import (
	"lifegrid/internal/core"
)

// Advance produces the next generation of the board. Neighbor lookups use the
// Moore neighborhood; with wrap the topology is toroidal, without it
// out-of-range neighbors are excluded from the count. The input board is never
// mutated and the result is always a fresh allocation.
func Advance(b *core.Board, wrap bool) *core.Board {
	w, h := b.W, b.H
	cur := b.Cells()
	next := core.NewBoard(w, h)
	nxt := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if wrap {
						nx = (nx + w) % w
						ny = (ny + h) % h
					} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	return next
}

// NewRandomBoard seeds a fresh board where each cell is independently live
// with the given probability.
func NewRandomBoard(w, h int, density float64, seed int64) *core.Board {
	b := core.NewBoard(w, h)
	core.FillDensity(core.NewRNG(seed).Source(), b.Cells(), density)
	return b
}
