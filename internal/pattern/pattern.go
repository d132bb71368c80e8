// Package pattern provides the catalog of named seed patterns and their
// placement onto a board.
package pattern

import "lifegrid/internal/core"

// Offset is a live-cell position relative to a pattern's center.
type Offset struct {
	DX, DY int
}

// Pattern is an immutable template of live-cell offsets around a center,
// derived once from a row glyph template. MinW and MinH describe the smallest
// board the pattern fits on legibly; they are advisory, since out-of-bounds
// cells are dropped at placement time.
type Pattern struct {
	ID          string
	Label       string
	Description string
	MinW, MinH  int

	offsets []Offset
}

// FromRows derives a pattern from equal-length template rows. The glyphs
// 'O', 'X' and '1' mark live cells; anything else is dead. Offsets are
// recorded relative to the center of the template bounding box.
func FromRows(id, label, description string, minW, minH int, rows []string) Pattern {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	centerX := width / 2
	centerY := height / 2

	p := Pattern{ID: id, Label: label, Description: description, MinW: minW, MinH: minH}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'O', 'X', '1':
				p.offsets = append(p.offsets, Offset{DX: x - centerX, DY: y - centerY})
			}
		}
	}
	return p
}

// Offsets returns a copy of the pattern's live-cell offsets.
func (p Pattern) Offsets() []Offset {
	out := make([]Offset, len(p.offsets))
	copy(out, p.offsets)
	return out
}

// Fits reports whether a board of the given dimensions meets the pattern's
// advisory minimum size.
func (p Pattern) Fits(w, h int) bool {
	return w >= p.MinW && h >= p.MinH
}

// Place writes the pattern's live cells onto the board around the given
// origin. Offsets landing outside the board are silently dropped.
func (p Pattern) Place(b *core.Board, originX, originY int) {
	for _, o := range p.offsets {
		b.Set(originX+o.DX, originY+o.DY, 1)
	}
}

var (
	catalog []Pattern
	byID    = map[string]Pattern{}
)

// Register adds a pattern to the catalog. Later registrations under an
// existing ID replace the earlier entry but keep its position.
func Register(p Pattern) {
	if p.ID == "" {
		return
	}
	if _, ok := byID[p.ID]; !ok {
		catalog = append(catalog, p)
	} else {
		for i := range catalog {
			if catalog[i].ID == p.ID {
				catalog[i] = p
				break
			}
		}
	}
	byID[p.ID] = p
}

// All returns the catalog in registration order.
func All() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a pattern by identifier.
func ByID(id string) (Pattern, bool) {
	p, ok := byID[id]
	return p, ok
}
