package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/game"
)

// DrawSystem paints the frame: background fill, one rectangle per sprite,
// then the score line and the game-over overlay. Sprites are drawn from their
// center, which is what PositionTranslationSystem computes.
type DrawSystem struct {
	Sprites ecs.Query[struct {
		Sprite *game.Sprite
		Tint   *game.Tint
	}]
	Screen  ecs.Singleton[Screen]
	Window  ecs.Singleton[Window]
	Palette ecs.Singleton[game.Palette]
	Snake   ecs.Singleton[game.Snake]
	Score   ecs.Singleton[game.Score]
}

func (s *DrawSystem) Execute(frame *ecs.Frame) {
	screen := s.Screen.MustGet()
	if screen.Image == nil {
		return
	}

	screen.Image.Fill(s.Palette.MustGet().Background)

	for item := range s.Sprites.Values() {
		vector.DrawFilledRect(
			screen.Image,
			item.Sprite.PX-item.Sprite.W/2,
			item.Sprite.PY-item.Sprite.H/2,
			item.Sprite.W,
			item.Sprite.H,
			item.Tint.Color,
			false,
		)
	}

	score := s.Score.MustGet()
	ebitenutil.DebugPrintAt(screen.Image, fmt.Sprintf("SCORE %d", score.Points), 8, 8)

	if !s.Snake.MustGet().Alive {
		window := s.Window.MustGet()
		ebitenutil.DebugPrintAt(
			screen.Image,
			fmt.Sprintf("GAME OVER\nFinal score: %d\nPress R to restart", score.Points),
			window.Width/2-60,
			window.Height/2-24,
		)
	}
}
