// Package game implements the snake simulation: the components entities are
// made of, the world singletons, and the systems that advance the arena one
// tick at a time. Rendering and input live elsewhere; the package only deals
// in grid cells and leaves window coordinates to the transform systems.
package game

import (
	"image/color"

	"github.com/kamstrup/intmap"

	"github.com/plus3/snek/ecs"
)

const (
	DefaultArenaWidth  = 10
	DefaultArenaHeight = 10

	// seconds per snake step and per food drop
	DefaultMoveInterval = 0.15
	DefaultFoodInterval = 1.0

	HeadScale    = 0.8
	SegmentScale = 0.65
	FoodScale    = 0.8

	PointsPerFood = 10
)

const (
	headStartX = 3
	headStartY = 3
)

// Position is a cell address on the arena grid. (0,0) is the bottom-left
// cell; Y grows upward.
type Position struct {
	X, Y int
}

// SnakeHead marks the snake's head entity and carries its heading.
type SnakeHead struct {
	Direction Direction
}

// SnakeSegment marks one body cell trailing the head.
type SnakeSegment struct{}

// Food marks an edible cell.
type Food struct{}

// Size is an entity's footprint in cell fractions; 1.0 fills its cell.
type Size struct {
	Width  float64
	Height float64
}

// Tint is the fill color an entity is drawn with.
type Tint struct {
	Color color.RGBA
}

// Sprite is the window-space rectangle of an entity, centered on PX/PY.
// The transform systems derive it from Position and Size after every update.
type Sprite struct {
	PX, PY float32
	W, H   float32
}

// Snake tracks the snake's entity graph and life state across systems.
type Snake struct {
	Head     ecs.EntityId
	Segments []ecs.EntityId // body cells, head exclusive, neck first
	Alive    bool
	Grew     bool     // a segment is owed at TailCell this tick
	TailCell Position // cell the tail vacated on the last move
}

// Length returns the snake's full length including the head.
func (s *Snake) Length() int {
	return len(s.Segments) + 1
}

// Tail returns the entity at the very end of the snake.
func (s *Snake) Tail() ecs.EntityId {
	if len(s.Segments) == 0 {
		return s.Head
	}
	return s.Segments[len(s.Segments)-1]
}

// Score counts points and food eaten for the current run.
type Score struct {
	Points int
	Eaten  int
}

// Controls is the input snapshot the app layer writes before each update.
type Controls struct {
	Left, Right, Up, Down bool
	Restart               bool
}

// MoveClock paces snake movement.
type MoveClock struct {
	Timer ecs.Timer
}

// FoodClock paces food drops.
type FoodClock struct {
	Timer ecs.Timer
}

// Palette holds the colors entities are spawned with.
type Palette struct {
	Background color.RGBA
	Head       color.RGBA
	Segment    color.RGBA
	Food       color.RGBA
}

// DefaultPalette is the classic grey snake and magenta food on near-black.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x0A, G: 0x0A, B: 0x0A, A: 0xFF},
		Head:       color.RGBA{R: 0xB3, G: 0xB3, B: 0xB3, A: 0xFF},
		Segment:    color.RGBA{R: 0x4D, G: 0x4D, B: 0x4D, A: 0xFF},
		Food:       color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	}
}

// Occupancy indexes which entity sits on which cell. OccupancySystem rebuilds
// it at the start of every frame; systems that move or spawn entities within
// a frame keep it current incrementally.
type Occupancy struct {
	Cells *intmap.Map[uint64, ecs.EntityId]
}

// NewOccupancy creates an empty occupancy index sized for the arena.
func NewOccupancy(capacity int) Occupancy {
	return Occupancy{Cells: intmap.New[uint64, ecs.EntityId](capacity)}
}

// Set records id as the occupant of the cell.
func (o *Occupancy) Set(x, y int, id ecs.EntityId) {
	o.Cells.Put(cellKey(x, y), id)
}

// At returns the occupant of the cell, if any.
func (o *Occupancy) At(x, y int) (ecs.EntityId, bool) {
	return o.Cells.Get(cellKey(x, y))
}

// Clear frees the cell.
func (o *Occupancy) Clear(x, y int) {
	o.Cells.Del(cellKey(x, y))
}

// Reset frees all cells.
func (o *Occupancy) Reset() {
	o.Cells.Clear()
}

func cellKey(x, y int) uint64 {
	return uint64(uint32(x))<<32 | uint64(uint32(y))
}

// RegisterComponents registers every component type the game spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[SnakeHead](registry)
	ecs.RegisterComponent[SnakeSegment](registry)
	ecs.RegisterComponent[Food](registry)
	ecs.RegisterComponent[Size](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[Sprite](registry)
}
