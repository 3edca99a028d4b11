package ecs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type posComp struct {
	Base
	X, Y    float64
	inits   int
	updates int
}

func (p *posComp) Init()   { p.inits++ }
func (p *posComp) Update() { p.updates++ }

type velComp struct {
	Base
	VX, VY float64
}

type tagComp struct {
	Base
	order *[]string
	name  string
}

func (c *tagComp) Update() { *c.order = append(*c.order, c.name) }

func TestRegistryAssignsDenseStableIDs(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	first := TypeFor[*posComp]()
	second := TypeFor[*velComp]()
	if first != 0 || second != 1 {
		t.Fatalf("expected first-call order ids 0,1, got %d,%d", first, second)
	}
	if again := TypeFor[*posComp](); again != first {
		t.Fatalf("TypeFor not stable: %d then %d", first, again)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	added, err := Add(e, &posComp{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.inits != 1 {
		t.Fatalf("Init should run exactly once, ran %d times", added.inits)
	}
	if added.Entity() != e {
		t.Fatalf("component back-reference not set to owning entity")
	}
	if !Has[*posComp](e) {
		t.Fatalf("Has should be true immediately after Add")
	}

	got, err := Get[*posComp](e)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != added {
		t.Fatalf("Get returned a different instance than Add")
	}
}

func TestGetMissingComponent(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	if Has[*velComp](e) {
		t.Fatalf("Has should be false before Add")
	}
	if _, err := Get[*velComp](e); !errors.Is(err, ErrMissingComponent) {
		t.Fatalf("expected ErrMissingComponent, got %v", err)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	if _, err := Add(e, &posComp{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	replacement, err := Add(e, &posComp{X: 2})
	if err != nil {
		t.Fatalf("Add replacement: %v", err)
	}
	got := MustGet[*posComp](e)
	if got != replacement || got.X != 2 {
		t.Fatalf("slot should hold the replacement instance")
	}
	if n := len(e.components); n != 1 {
		t.Fatalf("ordered list should replace in place, has %d entries", n)
	}
}

func TestAddComponentCapacity(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	// Burn the whole slot budget with synthetic types so the next real
	// component type lands past it.
	for i := 0; i < MaxComponents; i++ {
		typeIDFor(reflect.ArrayOf(i, reflect.TypeFor[int8]()))
	}

	m := NewManager()
	e := m.AddEntity()
	if _, err := Add(e, &posComp{}); !errors.Is(err, ErrComponentCapacity) {
		t.Fatalf("expected ErrComponentCapacity, got %v", err)
	}
	if Has[*posComp](e) {
		t.Fatalf("failed Add must not set the presence bit")
	}
}

func TestUpdateRunsInAttachmentOrder(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	var order []string
	if _, err := Add(e, &tagComp{order: &order, name: "first"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// A second type with a distinct id, attached later.
	type tagComp2 struct{ tagComp }
	second := &tagComp2{}
	second.order = &order
	second.name = "second"
	if _, err := Add(e, second); err != nil {
		t.Fatalf("Add: %v", err)
	}

	m.Update()
	want := []string{"first", "second"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("update order %v, want %v", order, want)
	}
}

type drawComp struct {
	Base
	draws int
}

func (c *drawComp) Draw(screen *ebiten.Image) { c.draws++ }

func TestManagerDrawFallsBackToInsertionOrder(t *testing.T) {
	m := NewManager()
	first, err := Add(m.AddEntity(), &drawComp{})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := Add(m.AddEntity(), &drawComp{})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	m.Draw(nil)
	if first.draws != 1 || second.draws != 1 {
		t.Fatalf("Draw should visit every entity once, got %d and %d", first.draws, second.draws)
	}
}

func TestGroupMembership(t *testing.T) {
	cases := []struct {
		name      string
		del       bool
		destroy   bool
		wantAfter int
	}{
		{"member_survives_refresh", false, false, 1},
		{"del_group_pruned", true, false, 0},
		{"destroyed_pruned", false, true, 0},
	}

	const g Group = 3
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewManager()
			e := m.AddEntity()
			if err := e.AddGroup(g); err != nil {
				t.Fatalf("AddGroup: %v", err)
			}
			if !e.HasGroup(g) {
				t.Fatalf("HasGroup should be true after AddGroup")
			}
			if len(m.Group(g)) != 1 {
				t.Fatalf("group list should contain the entity before refresh")
			}
			if c.del {
				e.DelGroup(g)
			}
			if c.destroy {
				e.Destroy()
			}
			m.Refresh()
			if got := len(m.Group(g)); got != c.wantAfter {
				t.Fatalf("group size after refresh = %d, want %d", got, c.wantAfter)
			}
		})
	}
}

func TestAddGroupOutOfRange(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	if err := e.AddGroup(MaxGroups); !errors.Is(err, ErrGroupOutOfRange) {
		t.Fatalf("expected ErrGroupOutOfRange, got %v", err)
	}
}

func TestDuplicateGroupEntriesPruned(t *testing.T) {
	const g Group = 7
	m := NewManager()
	e := m.AddEntity()
	if err := e.AddGroup(g); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	m.AddToGroup(e, g)
	if len(m.Group(g)) != 2 {
		t.Fatalf("AddToGroup should not deduplicate")
	}
	e.Destroy()
	m.Refresh()
	if len(m.Group(g)) != 0 {
		t.Fatalf("refresh should drop every stale entry")
	}
}

func TestDestroyDeferredUntilRefresh(t *testing.T) {
	const g Group = 1
	m := NewManager()
	e := m.AddEntity()
	comp, err := Add(e, &posComp{})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := e.AddGroup(g); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	e.Destroy()
	e.Destroy() // idempotent

	// Still iterable and still stepping until the next refresh.
	if len(m.Entities()) != 1 || len(m.Group(g)) != 1 {
		t.Fatalf("destroyed entity must stay iterable through the frame")
	}
	m.Update()
	if comp.updates != 1 {
		t.Fatalf("destroyed entity should still update this frame, got %d", comp.updates)
	}

	m.Refresh()
	if len(m.Entities()) != 0 {
		t.Fatalf("refresh should reclaim the entity")
	}
	if len(m.Group(g)) != 0 {
		t.Fatalf("refresh should prune the entity from every group")
	}
}

func TestRefreshKeepsInsertionOrder(t *testing.T) {
	m := NewManager()
	a := m.AddEntity()
	b := m.AddEntity()
	c := m.AddEntity()
	b.Destroy()
	m.Refresh()

	got := m.Entities()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("refresh must preserve insertion order of survivors")
	}
}
