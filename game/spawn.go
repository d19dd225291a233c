package game

import "github.com/plus3/snek/ecs"

// SpawnHead creates the head entity on the start cell, facing up.
func SpawnHead(storage *ecs.Storage, palette *Palette) ecs.EntityId {
	return storage.Spawn(
		Position{X: headStartX, Y: headStartY},
		SnakeHead{Direction: Up},
		Size{Width: HeadScale, Height: HeadScale},
		Tint{Color: palette.Head},
		Sprite{},
	)
}

// SpawnSegment creates one body segment on the given cell.
func SpawnSegment(storage *ecs.Storage, palette *Palette, cell Position) ecs.EntityId {
	return storage.Spawn(
		cell,
		SnakeSegment{},
		Size{Width: SegmentScale, Height: SegmentScale},
		Tint{Color: palette.Segment},
		Sprite{},
	)
}

// SpawnFood creates a food entity on the given cell.
func SpawnFood(storage *ecs.Storage, palette *Palette, cell Position) ecs.EntityId {
	return storage.Spawn(
		cell,
		Food{},
		Size{Width: FoodScale, Height: FoodScale},
		Tint{Color: palette.Food},
		Sprite{},
	)
}

// SetupSystem spawns the initial snake during the scheduler's startup phase.
type SetupSystem struct {
	Snake   ecs.Singleton[Snake]
	Palette ecs.Singleton[Palette]
}

func (s *SetupSystem) Execute(frame *ecs.Frame) {
	snake := s.Snake.MustGet()

	snake.Head = SpawnHead(frame.Storage, s.Palette.MustGet())
	snake.Segments = nil
	snake.Alive = true
	snake.Grew = false
}
