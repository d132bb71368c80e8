// lifegrid-soak runs the rule engine headless for a fixed number of
// generations and reports throughput and population trajectory.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
)

func main() {
	width := 150
	height := 150
	gens := 1000
	density := 0.25
	seed := int64(42)
	wrap := true
	noise := false
	patternID := ""

	flaggy.SetName("lifegrid-soak")
	flaggy.SetDescription("headless Game of Life soak run")
	flaggy.Int(&width, "x", "width", "board width")
	flaggy.Int(&height, "y", "height", "board height")
	flaggy.Int(&gens, "g", "generations", "generations to run")
	flaggy.Float64(&density, "d", "density", "random-fill probability")
	flaggy.Int64(&seed, "", "seed", "seed for the fill")
	flaggy.Bool(&wrap, "w", "wrap", "toroidal boundary")
	flaggy.Bool(&noise, "", "noise", "use Perlin-clustered fill instead of uniform")
	flaggy.String(&patternID, "p", "pattern", "seed with a catalog pattern instead of a fill")
	flaggy.Parse()

	width = core.ClampBoardSize(width)
	height = core.ClampBoardSize(height)
	density = core.ClampDensity(density)

	var board *core.Board
	switch {
	case patternID != "":
		p, ok := pattern.ByID(patternID)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown pattern %q\n", patternID)
			os.Exit(1)
		}
		board = core.NewBoard(width, height)
		p.Place(board, width/2, height/2)
	case noise:
		board = life.NewNoiseBoard(width, height, density, seed)
	default:
		board = life.NewRandomBoard(width, height, density, seed)
	}

	initial := board.CountLive()
	minPop, maxPop := initial, initial

	fmt.Printf("%s %dx%d, %d generations, wrap=%v, initial population %d\n",
		aurora.Cyan("soak:"), width, height, gens, wrap, initial)

	start := time.Now()
	for i := 0; i < gens; i++ {
		board = life.Advance(board, wrap)
		pop := board.CountLive()
		if pop < minPop {
			minPop = pop
		}
		if pop > maxPop {
			maxPop = pop
		}
	}
	elapsed := time.Since(start)

	rate := float64(gens) / elapsed.Seconds()
	fmt.Printf("%s %v (%.0f gens/sec)\n", aurora.Green("elapsed:"), elapsed.Round(time.Millisecond), rate)
	fmt.Printf("%s final %d, min %d, max %d\n", aurora.Green("population:"), board.CountLive(), minPop, maxPop)
}
