package pattern

import (
	"testing"

	"lifegrid/internal/core"
)

func TestFromRowsOffsets(t *testing.T) {
	p := FromRows("t", "T", "", 10, 10, []string{
		".O.",
		"..O",
		"OOO",
	})
	want := map[Offset]bool{
		{0, -1}: true,
		{1, 0}:  true,
		{-1, 1}: true,
		{0, 1}:  true,
		{1, 1}:  true,
	}
	got := p.Offsets()
	if len(got) != len(want) {
		t.Fatalf("derived %d offsets, want %d", len(got), len(want))
	}
	for _, o := range got {
		if !want[o] {
			t.Fatalf("unexpected offset %+v", o)
		}
	}
}

func TestFromRowsGlyphs(t *testing.T) {
	p := FromRows("g", "G", "", 10, 10, []string{"OX1. "})
	if len(p.Offsets()) != 3 {
		t.Fatalf("glyphs O, X and 1 should all mark live cells, got %d offsets", len(p.Offsets()))
	}
}

func TestPlaceSetsExactCells(t *testing.T) {
	p := FromRows("row", "Row", "", 10, 10, []string{"OOO"})

	b := core.NewBoard(20, 20)
	b.Set(0, 0, 1) // unrelated cell must survive
	p.Place(b, 6, 5)

	want := map[[2]int]bool{
		{0, 0}: true,
		{5, 5}: true,
		{6, 5}: true,
		{7, 5}: true,
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			alive := b.Get(x, y) == 1
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestPlaceDropsOutOfBoundsOffsets(t *testing.T) {
	p := FromRows("big", "Big", "", 10, 10, []string{
		"OOOOO",
		"OOOOO",
	})
	b := core.NewBoard(10, 10)
	p.Place(b, 0, 0)

	// With the origin at the corner, offsets with a negative component land
	// outside and must be dropped without touching anything else.
	count := 0
	for _, o := range p.Offsets() {
		if b.InBounds(o.DX, o.DY) {
			count++
		}
	}
	if b.CountLive() != count {
		t.Fatalf("placed %d cells, want %d in-bounds targets", b.CountLive(), count)
	}
}

func TestFits(t *testing.T) {
	p := FromRows("f", "F", "", 17, 13, []string{"O"})
	if !p.Fits(17, 13) {
		t.Fatal("exact minimum should fit")
	}
	if p.Fits(16, 13) || p.Fits(17, 12) {
		t.Fatal("below-minimum board reported as fitting")
	}
}

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	seen := map[string]bool{}
	for _, p := range all {
		if p.ID == "" || p.Label == "" {
			t.Fatalf("catalog entry missing ID or label: %+v", p)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate catalog ID %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.Offsets()) == 0 {
			t.Fatalf("pattern %q has no live cells", p.ID)
		}
		if p.MinW < core.MinBoardSize || p.MinH < core.MinBoardSize {
			t.Fatalf("pattern %q minimum below the smallest board", p.ID)
		}
	}
	for _, id := range []string{"glider", "blinker", "pulsar", "glidergun"} {
		if _, ok := ByID(id); !ok {
			t.Fatalf("expected catalog entry %q", id)
		}
	}
}

func TestGliderCellCount(t *testing.T) {
	p, _ := ByID("glider")
	if len(p.Offsets()) != 5 {
		t.Fatalf("glider has %d cells, want 5", len(p.Offsets()))
	}
}
