package component

import (
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
)

// Input is the slice of the host's input state the controller consumes.
// Axis returns -1/0/+1 per axis; Fired is true on the frame the fire key was
// pressed.
type Input interface {
	Axis() (x, y float64)
	Fired() bool
}

// FireFunc spawns a projectile from pos along dir. The game wires it to the
// asset factory so the controller never touches entity construction itself.
type FireFunc func(pos, dir common.Vector2)

// Controller drives its entity's transform from polled input: velocity and
// facing follow the movement axes, the sprite switches between walk and idle
// animations, and the fire key launches a projectile in the facing direction.
type Controller struct {
	ecs.Base

	input Input
	fire  FireFunc

	transform *Transform
	sprite    *Sprite
}

// NewController creates a controller reading from input. fire may be nil for
// entities that cannot shoot.
func NewController(input Input, fire FireFunc) *Controller {
	return &Controller{input: input, fire: fire}
}

func (c *Controller) Init() {
	c.transform, _ = ecs.Get[*Transform](c.Entity())
	c.sprite, _ = ecs.Get[*Sprite](c.Entity())
}

func (c *Controller) Update() {
	if c.input == nil || c.transform == nil {
		return
	}
	x, y := c.input.Axis()
	c.transform.Velocity.X = x
	c.transform.Velocity.Y = y
	if x != 0 || y != 0 {
		c.transform.Facing = common.Vector2{X: x, Y: y}
	}

	if c.sprite != nil {
		if x != 0 || y != 0 {
			c.sprite.Play("walk")
		} else {
			c.sprite.Play("idle")
		}
		c.sprite.SetFlip(x < 0)
	}

	if c.fire != nil && c.input.Fired() {
		dir := c.transform.Facing
		if dir.Norm() == 0 {
			dir = common.Vector2{Y: 1}
		}
		c.fire(c.transform.Position, dir)
	}
}
