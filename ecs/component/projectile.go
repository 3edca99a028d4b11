package component

import (
	"github.com/softpine/spiderden/common"
	"github.com/softpine/spiderden/ecs"
)

// Projectile gives its entity a fixed heading and a travel budget. Init
// pushes the heading and speed into the sibling transform; Update tracks the
// distance covered and destroys the owner once the budget is spent. The
// entity keeps moving and drawing through the frame it expires in and is
// reclaimed by the next refresh.
type Projectile struct {
	ecs.Base

	Range    float64
	Speed    float64
	Velocity common.Vector2

	distance  float64
	transform *Transform
}

// NewProjectile creates a projectile with the given travel range, per-frame
// speed, and heading.
func NewProjectile(rng, speed float64, velocity common.Vector2) *Projectile {
	return &Projectile{Range: rng, Speed: speed, Velocity: velocity}
}

func (p *Projectile) Init() {
	tr, err := ecs.Get[*Transform](p.Entity())
	if err != nil {
		return
	}
	p.transform = tr
	tr.Velocity = p.Velocity
	tr.Speed = p.Speed
}

func (p *Projectile) Update() {
	if p.transform == nil {
		return
	}
	// The transform normalizes velocity, so each step covers Speed pixels.
	p.distance += p.transform.Speed
	if p.distance > p.Range {
		p.Entity().Destroy()
	}
}
