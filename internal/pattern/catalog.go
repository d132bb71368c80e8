package pattern

func init() {
	Register(FromRows("block", "Block", "2x2 still life", 10, 10, []string{
		"OO",
		"OO",
	}))
	Register(FromRows("blinker", "Blinker", "period-2 oscillator", 10, 10, []string{
		"OOO",
	}))
	Register(FromRows("toad", "Toad", "period-2 oscillator", 10, 10, []string{
		".OOO",
		"OOO.",
	}))
	Register(FromRows("beacon", "Beacon", "period-2 oscillator", 10, 10, []string{
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	}))
	Register(FromRows("glider", "Glider", "diagonal period-4 spaceship", 10, 10, []string{
		".O.",
		"..O",
		"OOO",
	}))
	Register(FromRows("lwss", "Lightweight Spaceship", "horizontal period-4 spaceship", 15, 10, []string{
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	}))
	Register(FromRows("rpentomino", "R-Pentomino", "long-lived methuselah", 30, 30, []string{
		".OO",
		"OO.",
		".O.",
	}))
	Register(FromRows("pulsar", "Pulsar", "period-3 oscillator", 17, 17, []string{
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	}))
	Register(FromRows("pentadecathlon", "Pentadecathlon", "period-15 oscillator", 18, 11, []string{
		"..O....O..",
		"OO.OOOO.OO",
		"..O....O..",
	}))
	Register(FromRows("acorn", "Acorn", "methuselah, stabilizes after thousands of generations", 50, 40, []string{
		".O.....",
		"...O...",
		"OO..OOO",
	}))
	Register(FromRows("glidergun", "Gosper Glider Gun", "emits a glider every 30 generations", 40, 25, []string{
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	}))
}
