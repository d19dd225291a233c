package game

//go:generate go tool stringer -type=Direction

// Direction is a cardinal heading on the arena grid.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return d
}

// Delta returns the per-step cell offset for the heading. Y grows upward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	}
	return 0, 0
}
