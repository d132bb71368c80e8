package core

// Size describes the dimensions of a simulation board.
type Size struct {
	W int
	H int
}
