package game

// Arena is the logical playfield. Cells run from (0,0) at the bottom-left to
// (Width-1, Height-1) at the top-right.
type Arena struct {
	Width  int
	Height int
}

// Wrap maps any cell coordinate back onto the arena using Euclidean
// remainders: stepping off one edge re-enters from the opposite edge, and
// negative coordinates land on the far side rather than mirroring. Wrap(-1, 0)
// on a 10-wide arena is (9, 0).
func (a Arena) Wrap(x, y int) (int, int) {
	x %= a.Width
	if x < 0 {
		x += a.Width
	}
	y %= a.Height
	if y < 0 {
		y += a.Height
	}
	return x, y
}

// Contains reports whether the cell lies inside the arena bounds.
func (a Arena) Contains(x, y int) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height
}

// CellCount returns the total number of cells.
func (a Arena) CellCount() int {
	return a.Width * a.Height
}
