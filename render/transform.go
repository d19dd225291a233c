package render

import (
	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/game"
)

// SizeScalingSystem converts cell-relative sizes into pixel extents. An entity
// sized 0.8 covers 80% of a cell no matter how the window and arena relate.
type SizeScalingSystem struct {
	Sprites ecs.Query[struct {
		Size   *game.Size
		Sprite *game.Sprite
	}]
	Arena  ecs.Singleton[game.Arena]
	Window ecs.Singleton[Window]
}

func (s *SizeScalingSystem) Execute(frame *ecs.Frame) {
	cellW, cellH := cellSize(s.Arena.MustGet(), s.Window.MustGet())

	for item := range s.Sprites.Values() {
		item.Sprite.W = float32(item.Size.Width * cellW)
		item.Sprite.H = float32(item.Size.Height * cellH)
	}
}

// PositionTranslationSystem maps grid coordinates to the sprite's pixel
// center. Cell (0,0) sits at the bottom-left of the window and y grows
// upward, so the vertical axis is flipped relative to screen space.
type PositionTranslationSystem struct {
	Sprites ecs.Query[struct {
		Pos    *game.Position
		Sprite *game.Sprite
	}]
	Arena  ecs.Singleton[game.Arena]
	Window ecs.Singleton[Window]
}

func (s *PositionTranslationSystem) Execute(frame *ecs.Frame) {
	window := s.Window.MustGet()
	cellW, cellH := cellSize(s.Arena.MustGet(), window)

	for item := range s.Sprites.Values() {
		item.Sprite.PX = float32((float64(item.Pos.X) + 0.5) * cellW)
		item.Sprite.PY = float32(float64(window.Height) - (float64(item.Pos.Y)+0.5)*cellH)
	}
}
