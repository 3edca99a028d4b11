package ecs

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager owns every live entity and one index list per group. It drives the
// per-frame protocol: Refresh (reclaim), Update (simulate), Draw (render).
// Entities appended by AddEntity keep a stable address for their whole
// lifetime; group lists hold non-owning references into that sequence.
type Manager struct {
	entities []*Entity
	grouped  [MaxGroups][]*Entity
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddEntity allocates a new active entity owned by the manager and appends it
// to the authoritative sequence.
func (m *Manager) AddEntity() *Entity {
	e := &Entity{manager: m, active: true}
	m.entities = append(m.entities, e)
	return e
}

// AddToGroup appends a reference to g's index list. Entries are not
// deduplicated; Refresh prunes by membership bit, so a duplicate entry is
// wasteful but harmless.
func (m *Manager) AddToGroup(e *Entity, g Group) {
	if e == nil || g < 0 || g >= MaxGroups {
		return
	}
	m.grouped[g] = append(m.grouped[g], e)
}

// Group returns g's live index list for iteration. The slice aliases
// manager-owned storage: callers must not mutate it, and its contents are
// only guaranteed consistent with group membership right after Refresh.
func (m *Manager) Group(g Group) []*Entity {
	if g < 0 || g >= MaxGroups {
		return nil
	}
	return m.grouped[g]
}

// Entities returns the authoritative entity sequence in insertion order.
func (m *Manager) Entities() []*Entity {
	return m.entities
}

// Update steps every entity in insertion order. Entities destroyed earlier in
// the same frame still step; they are reclaimed by the Refresh at the top of
// the next frame, so destruction is observable for the remainder of exactly
// one frame.
func (m *Manager) Update() {
	for _, e := range m.entities {
		e.Update()
	}
}

// Draw draws every entity in insertion order. The game renders through the
// per-group lists instead to control layering; this is a convenience fallback
// for callers that do not care about draw order.
func (m *Manager) Draw(screen *ebiten.Image) {
	for _, e := range m.entities {
		e.Draw(screen)
	}
}

// Refresh reclaims destroyed entities. Each group list first drops every
// reference whose entity is inactive or no longer flagged as a member, then
// the authoritative sequence drops inactive entities, releasing them and
// their components. Group pruning inspects entity state, not container
// membership, so the two passes are order-independent.
func (m *Manager) Refresh() {
	for g := range m.grouped {
		m.grouped[g] = slices.DeleteFunc(m.grouped[g], func(e *Entity) bool {
			return !e.Active() || !e.HasGroup(Group(g))
		})
	}
	m.entities = slices.DeleteFunc(m.entities, func(e *Entity) bool {
		return !e.Active()
	})
}
