package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/ecs/debugui"
	"github.com/plus3/snek/game"
)

// InputSystem polls the keyboard into the Controls singleton ahead of the
// systems that consume it. While the overlay captures the keyboard the
// snapshot is cleared so text typed into imgui widgets does not steer the
// snake.
type InputSystem struct {
	Controls        ecs.Singleton[game.Controls]
	ImguiInputState ecs.Singleton[debugui.ImguiInputState]
}

func (s *InputSystem) Execute(frame *ecs.Frame) {
	controls := s.Controls.MustGet()

	if state := s.ImguiInputState.Get(); state != nil && state.WantCaptureKeyboard {
		*controls = game.Controls{}
		return
	}

	controls.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	controls.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	controls.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	controls.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	controls.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
}
