// Package component holds the concrete components the game attaches to
// entities: transforms, sprites, colliders, input control, projectiles, and
// map tiles.
package component

import (
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
)

// DefaultSpeed is the per-frame movement budget used when a transform is
// built without an explicit speed.
const DefaultSpeed = 3

// Transform is an entity's position, velocity, and facing in world pixels,
// plus its sprite footprint and movement speed. Update integrates velocity:
// the velocity vector is normalized to unit length and scaled by Speed, so
// diagonal movement is no faster than axis-aligned movement. SpeedLo/SpeedHi
// bound the per-frame speed jitter the monster behavior applies.
type Transform struct {
	ecs.Base

	Position common.Vector2
	Velocity common.Vector2
	Facing   common.Vector2

	Width  int
	Height int
	Scale  float64

	Speed   float64
	SpeedLo float64
	SpeedHi float64
}

// NewTransform creates a transform at (x, y) with the given sprite footprint.
func NewTransform(x, y float64, width, height int, scale float64) *Transform {
	return &Transform{
		Position: common.Vector2{X: x, Y: y},
		Width:    width,
		Height:   height,
		Scale:    scale,
		Speed:    DefaultSpeed,
	}
}

func (t *Transform) Init() {
	t.Velocity.Zero()
}

func (t *Transform) Update() {
	norm := t.Velocity.Norm()
	if norm != 0 {
		t.Position.X += t.Velocity.X * t.Speed / norm
		t.Position.Y += t.Velocity.Y * t.Speed / norm
		return
	}
	// Zero-length velocity cannot be normalized; fall back to the raw vector.
	t.Position.X += t.Velocity.X * t.Speed
	t.Position.Y += t.Velocity.Y * t.Speed
}
