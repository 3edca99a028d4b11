package ecs

import (
	"reflect"
	"sync"
)

// TypeID is the dense index assigned to each distinct component type. It is
// only ever used as an array index; it is never serialized.
type TypeID int

const (
	// MaxComponents caps how many distinct component types one entity can hold.
	MaxComponents = 32
	// MaxGroups caps how many membership groups the manager tracks.
	MaxGroups = 32
)

var registry = struct {
	mu   sync.Mutex
	ids  map[reflect.Type]TypeID
	next TypeID
}{ids: make(map[reflect.Type]TypeID, MaxComponents)}

// TypeFor returns the TypeID for T, assigning the next free id on first use.
// The id is stable for the lifetime of the process and dense in first-call
// order starting at 0. The registry itself has no upper bound; the
// MaxComponents budget is enforced by Add when a component is attached.
func TypeFor[T Component]() TypeID {
	return typeIDFor(reflect.TypeFor[T]())
}

func typeIDFor(t reflect.Type) TypeID {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id, ok := registry.ids[t]; ok {
		return id
	}
	id := registry.next
	registry.next++
	registry.ids[t] = id
	return id
}

// ResetRegistry clears all assigned component type ids. Only for tests that
// need a fresh id space; never call it while entities are alive.
func ResetRegistry() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.ids = make(map[reflect.Type]TypeID, MaxComponents)
	registry.next = 0
}
