package ecs

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Group tags an entity into one of the manager's MaxGroups index lists.
// Groups carry no data of their own; their meaning is assigned by the game
// (players, monsters, map tiles, colliders).
type Group int

// Entity is the identity for one game object: an active flag, a type-indexed
// set of owned components, and a set of group memberships. Entities are
// created only through Manager.AddEntity, which wires the manager
// back-reference.
type Entity struct {
	manager *Manager
	active  bool

	// components holds every attached component in attachment order; slots
	// indexes the same components by TypeID. A slot is populated iff the
	// matching bit in componentBits is set.
	components    []Component
	slots         [MaxComponents]Component
	componentBits uint32
	groupBits     uint32
}

// Add attaches c to e, taking ownership. The component's entity
// back-reference is assigned and Init is invoked after all constructor fields
// are in place. At most one component of each type may be attached; adding a
// second replaces the first in place. Returns ErrComponentCapacity when the
// component type falls outside the fixed slot budget.
func Add[T Component](e *Entity, c T) (T, error) {
	id := TypeFor[T]()
	if int(id) >= MaxComponents {
		var zero T
		return zero, fmt.Errorf("ecs: add component %T: id %d: %w", c, id, ErrComponentCapacity)
	}
	c.setEntity(e)
	if prev := e.slots[id]; prev != nil {
		for i := range e.components {
			if e.components[i] == prev {
				e.components[i] = c
				break
			}
		}
	} else {
		e.components = append(e.components, c)
	}
	e.slots[id] = c
	e.componentBits |= 1 << uint(id)
	c.Init()
	return c, nil
}

// Get returns the attached component of type T, or ErrMissingComponent.
func Get[T Component](e *Entity) (T, error) {
	var zero T
	id := TypeFor[T]()
	if int(id) >= MaxComponents || e.componentBits&(1<<uint(id)) == 0 {
		return zero, fmt.Errorf("ecs: get component %T: %w", zero, ErrMissingComponent)
	}
	return e.slots[id].(T), nil
}

// MustGet is Get for call sites where presence is guaranteed (for example by
// group membership). It panics when the component is absent.
func MustGet[T Component](e *Entity) T {
	c, err := Get[T](e)
	if err != nil {
		panic(err)
	}
	return c
}

// Has reports whether a component of type T is attached to e.
func Has[T Component](e *Entity) bool {
	id := TypeFor[T]()
	return int(id) < MaxComponents && e.componentBits&(1<<uint(id)) != 0
}

// Update invokes Update on every attached component in attachment order.
func (e *Entity) Update() {
	for _, c := range e.components {
		c.Update()
	}
}

// Draw invokes Draw on every attached component in attachment order.
func (e *Entity) Draw(screen *ebiten.Image) {
	for _, c := range e.components {
		c.Draw(screen)
	}
}

// Active reports whether the entity is still live. Inactive entities remain
// valid and iterable until the next Manager.Refresh reaps them.
func (e *Entity) Active() bool { return e.active }

// Destroy flips the active flag. It does not detach components or remove the
// entity from any container; the next Refresh does. Calling it more than once
// is harmless.
func (e *Entity) Destroy() { e.active = false }

// AddGroup tags the entity into g and registers it with the manager's group
// index list. Returns ErrGroupOutOfRange for a group outside the fixed budget.
func (e *Entity) AddGroup(g Group) error {
	if g < 0 || g >= MaxGroups {
		return fmt.Errorf("ecs: add group %d: %w", g, ErrGroupOutOfRange)
	}
	e.groupBits |= 1 << uint(g)
	e.manager.AddToGroup(e, g)
	return nil
}

// DelGroup clears the membership bit for g. The manager's index list entry
// lingers until the next Refresh prunes it.
func (e *Entity) DelGroup(g Group) {
	if g < 0 || g >= MaxGroups {
		return
	}
	e.groupBits &^= 1 << uint(g)
}

// HasGroup reports whether the entity is currently a member of g.
func (e *Entity) HasGroup(g Group) bool {
	return g >= 0 && g < MaxGroups && e.groupBits&(1<<uint(g)) != 0
}
