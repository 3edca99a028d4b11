// Package ecs is a minimal entity-component-system runtime: entities own a
// bounded set of components, the manager owns all entities and per-group
// index lists, and destruction is deferred to an explicit refresh pass so
// references handed out during a frame stay valid through the end of it.
package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Component is a unit of data and per-frame behavior attached to exactly one
// entity. Init runs once, immediately after the component is attached and all
// of its fields have been set. Update runs once per simulation step and Draw
// once per render pass.
type Component interface {
	Init()
	Update()
	Draw(screen *ebiten.Image)

	setEntity(e *Entity)
	Entity() *Entity
}

// Base provides no-op lifecycle hooks and the back-reference to the owning
// entity. Concrete components embed it and override the hooks they need. The
// back-reference is valid for the component's entire lifetime because the
// entity outlives all of its components.
type Base struct {
	entity *Entity
}

func (b *Base) setEntity(e *Entity) { b.entity = e }

// Entity returns the entity this component is attached to.
func (b *Base) Entity() *Entity { return b.entity }

func (b *Base) Init()                     {}
func (b *Base) Update()                   {}
func (b *Base) Draw(screen *ebiten.Image) {}
