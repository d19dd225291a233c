// Package render turns the simulation's grid state into pixels. The two
// transform systems run in the simulation scheduler's post-update phase and
// bake grid coordinates into sprite rectangles; DrawSystem runs in a separate
// draw scheduler with dt 0 and only reads what the transforms produced.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/snek/game"
)

const (
	DefaultWindowWidth  = 500
	DefaultWindowHeight = 500
)

// Window is the logical pixel size of the playfield.
type Window struct {
	Width  int
	Height int
}

// Screen carries the frame's render target. The application publishes it at
// the top of every Draw call before running the draw scheduler.
type Screen struct {
	Image *ebiten.Image
}

// cellSize returns the pixel dimensions of one arena cell.
func cellSize(arena *game.Arena, window *Window) (float64, float64) {
	return float64(window.Width) / float64(arena.Width),
		float64(window.Height) / float64(arena.Height)
}
