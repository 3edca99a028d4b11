package component

import (
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
)

// Collider tag values used by the gameplay code.
const (
	TagPlayer     = "player"
	TagTerrain    = "terrain"
	TagMonster    = "monster"
	TagProjectile = "projectile"
)

// Collider is an axis-aligned hit rectangle. When the entity has a transform
// the rect follows it each frame, offset by Offset; otherwise (static terrain
// colliders built by the map loader) the rect stays wherever it was placed.
// Offset and Size are in world pixels, pre-scaled by the caller.
type Collider struct {
	ecs.Base

	Tag    string
	Rect   common.Rect
	Offset common.Vector2
	Size   common.Vector2

	transform *Transform
}

// NewCollider creates a collider that tracks its entity's transform, inset by
// (offX, offY) with the given size.
func NewCollider(tag string, offX, offY, width, height float64) *Collider {
	return &Collider{
		Tag:    tag,
		Offset: common.Vector2{X: offX, Y: offY},
		Size:   common.Vector2{X: width, Y: height},
		Rect:   common.Rect{Width: width, Height: height},
	}
}

// NewStaticCollider creates a collider fixed at rect, independent of any
// transform. The map loader uses it for terrain.
func NewStaticCollider(tag string, rect common.Rect) *Collider {
	return &Collider{Tag: tag, Rect: rect}
}

func (c *Collider) Init() {
	tr, err := ecs.Get[*Transform](c.Entity())
	if err != nil {
		return
	}
	c.transform = tr
	c.sync()
}

func (c *Collider) Update() {
	if c.transform == nil {
		return
	}
	c.sync()
}

func (c *Collider) sync() {
	c.Rect.X = c.transform.Position.X + c.Offset.X
	c.Rect.Y = c.transform.Position.Y + c.Offset.Y
	c.Rect.Width = c.Size.X
	c.Rect.Height = c.Size.Y
}
