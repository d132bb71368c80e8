package core

// Board stores a 2D grid of binary cell values in row-major order.
type Board struct {
	W, H  int
	cells []uint8
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{W: w, H: h, cells: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.cells }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) lies inside the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(x, y int) (int, int) {
	x = (x%b.W + b.W) % b.W
	y = (y%b.H + b.H) % b.H
	return x, y
}

// Get returns the cell value at (x, y), or 0 when out of bounds.
func (b *Board) Get(x, y int) uint8 {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.cells[y*b.W+x]
}

// Set writes v at (x, y). Out-of-bounds writes are silently dropped.
func (b *Board) Set(x, y int, v uint8) {
	if !b.InBounds(x, y) {
		return
	}
	if v != 0 {
		v = 1
	}
	b.cells[y*b.W+x] = v
}

// Toggle inverts the cell at (x, y) and returns the new value.
// Out-of-bounds coordinates leave the board untouched and return 0.
func (b *Board) Toggle(x, y int) uint8 {
	if !b.InBounds(x, y) {
		return 0
	}
	idx := y*b.W + x
	b.cells[idx] ^= 1
	return b.cells[idx]
}

// CountLive returns the number of live cells.
func (b *Board) CountLive() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear fills the board with zeros.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.W, b.H)
	copy(nb.cells, b.cells)
	return nb
}

// Resize returns a fresh board of the new dimensions with the overlapping
// top-left rectangle copied from the receiver. The receiver is not modified.
func (b *Board) Resize(newW, newH int) *Board {
	nb := NewBoard(newW, newH)
	copyW := b.W
	if nb.W < copyW {
		copyW = nb.W
	}
	copyH := b.H
	if nb.H < copyH {
		copyH = nb.H
	}
	for y := 0; y < copyH; y++ {
		copy(nb.cells[y*nb.W:y*nb.W+copyW], b.cells[y*b.W:y*b.W+copyW])
	}
	return nb
}
