package life

import (
	"github.com/aquilax/go-perlin"

	"lifegrid/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.09
)

// NewNoiseBoard seeds a fresh board with a Perlin-modulated random fill. The
// base density is scaled per cell by the local noise value, producing clumped
// soups instead of uniform static.
func NewNoiseBoard(w, h int, density float64, seed int64) *core.Board {
	density = core.ClampDensity(density)
	b := core.NewBoard(w, h)
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	rng := core.NewRNG(seed).Source()
	cells := b.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Perlin yields roughly [-1, 1]; remap to [0, 1].
			n := (p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			if rng.Float64() < density*2*n {
				cells[y*w+x] = 1
			}
		}
	}
	return b
}
