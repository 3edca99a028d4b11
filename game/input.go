package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard polls ebiten key state into the narrow input surface the
// controller component consumes. WASD and the arrow keys move, space fires.
type Keyboard struct{}

// Axis returns the movement direction as -1/0/+1 per axis.
func (Keyboard) Axis() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		y += 1
	}
	return x, y
}

// Fired reports whether the fire key was pressed this frame.
func (Keyboard) Fired() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
